package wallet

// Blockchain identifies a supported network.
type Blockchain string

const (
	Bitcoin           Blockchain = "Bitcoin"
	Lightning         Blockchain = "Lightning"
	Monero            Blockchain = "Monero"
	Ethereum          Blockchain = "Ethereum"
	Arbitrum          Blockchain = "Arbitrum"
	Optimism          Blockchain = "Optimism"
	Base              Blockchain = "Base"
	Polygon           Blockchain = "Polygon"
	BinanceSmartChain Blockchain = "BinanceSmartChain"
	Solana            Blockchain = "Solana"
)

func (b Blockchain) String() string {
	return string(b)
}

// IsEVM reports whether balances for the chain can be read through an
// Ethereum JSON-RPC endpoint.
func (b Blockchain) IsEVM() bool {
	switch b {
	case Ethereum, Arbitrum, Optimism, Base, Polygon, BinanceSmartChain:
		return true
	}
	return false
}

// Kind identifies a wallet integration the user can connect with.
type Kind string

const (
	Mail          Kind = "Mail"
	MetaMask      Kind = "MetaMask"
	WalletConnect Kind = "WalletConnect"
	LedgerBtc     Kind = "LedgerBtc"
	LedgerEth     Kind = "LedgerEth"
	BitBoxBtc     Kind = "BitBoxBtc"
	BitBoxEth     Kind = "BitBoxEth"
	TrezorBtc     Kind = "TrezorBtc"
	TrezorEth     Kind = "TrezorEth"
	Alby          Kind = "Alby"
	Phantom       Kind = "Phantom"
	Trust         Kind = "Trust"
	Cli           Kind = "Cli"
)

func (k Kind) String() string {
	return string(k)
}

// NeedsAddress reports whether connecting the wallet means collecting an
// on-chain address from the user. Mail logs in with an e-mail instead.
func (k Kind) NeedsAddress() bool {
	return k != Mail
}

var evmChains = []Blockchain{Ethereum, Arbitrum, Optimism, Base, Polygon, BinanceSmartChain}

// compat restricts wallet kinds to the blockchains they can serve. A kind
// without an entry supports every chain.
var compat = map[Kind][]Blockchain{
	MetaMask:      evmChains,
	WalletConnect: evmChains,
	LedgerBtc:     {Bitcoin},
	LedgerEth:     evmChains,
	BitBoxBtc:     {Bitcoin},
	BitBoxEth:     evmChains,
	TrezorBtc:     {Bitcoin},
	TrezorEth:     evmChains,
	Alby:          {Lightning},
	Phantom:       {Solana},
	Trust:         evmChains,
	Cli:           {Bitcoin, Lightning, Monero},
}

// IsSupported reports whether the wallet kind can be used on the given
// blockchain. Kinds absent from the table support all chains.
func IsSupported(k Kind, chain Blockchain) bool {
	chains, ok := compat[k]
	if !ok {
		return true
	}
	for _, c := range chains {
		if c == chain {
			return true
		}
	}
	return false
}

// SupportedChains returns the chains a kind is restricted to, or nil when
// the kind supports every chain.
func SupportedChains(k Kind) []Blockchain {
	return compat[k]
}

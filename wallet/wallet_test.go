package wallet

import "testing"

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		chain Blockchain
		want  bool
	}{
		{"alby on lightning", Alby, Lightning, true},
		{"alby on bitcoin", Alby, Bitcoin, false},
		{"ledger btc on bitcoin", LedgerBtc, Bitcoin, true},
		{"ledger btc on ethereum", LedgerBtc, Ethereum, false},
		{"ledger eth on arbitrum", LedgerEth, Arbitrum, true},
		{"metamask on polygon", MetaMask, Polygon, true},
		{"metamask on monero", MetaMask, Monero, false},
		{"phantom on solana", Phantom, Solana, true},
		{"cli on monero", Cli, Monero, true},
		{"trezor eth on base", TrezorEth, Base, true},
		{"trezor btc on lightning", TrezorBtc, Lightning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSupported(tt.kind, tt.chain); got != tt.want {
				t.Errorf("IsSupported(%s, %s) = %v, want %v", tt.kind, tt.chain, got, tt.want)
			}
		})
	}
}

func TestIsSupportedOpenWorldDefault(t *testing.T) {
	// Mail has no compat entry, so every chain must pass.
	chains := []Blockchain{Bitcoin, Lightning, Monero, Ethereum, Arbitrum, Optimism, Base, Polygon, BinanceSmartChain, Solana}
	for _, c := range chains {
		if !IsSupported(Mail, c) {
			t.Errorf("IsSupported(Mail, %s) = false, want true (no table entry)", c)
		}
	}
	if SupportedChains(Mail) != nil {
		t.Errorf("SupportedChains(Mail) = %v, want nil", SupportedChains(Mail))
	}
}

func TestIsEVM(t *testing.T) {
	if !Ethereum.IsEVM() || !Base.IsEVM() {
		t.Error("expected Ethereum and Base to be EVM chains")
	}
	if Bitcoin.IsEVM() || Lightning.IsEVM() || Solana.IsEVM() {
		t.Error("expected Bitcoin, Lightning and Solana to not be EVM chains")
	}
}

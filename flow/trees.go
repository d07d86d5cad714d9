package flow

import (
	"crypto-widget-tui/params"
	"crypto-widget-tui/wallet"
)

// Variant selects which feature tree a deployment uses.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantBitcoinOnly Variant = "bitcoin-only"
	VariantAlby        Variant = "alby"
)

// Trees returns the per-variant feature trees. The result is built fresh
// on every call; callers validate once at startup and treat their copy as
// immutable from then on.
func Trees() map[Variant]*Tree {
	return map[Variant]*Tree{
		VariantDefault:     defaultTree(),
		VariantBitcoinOnly: bitcoinOnlyTree(),
		VariantAlby:        albyTree(),
	}
}

// hwWallet derives the hardware wallet integration from the blockchain
// selected earlier on the path. Anything that is not Bitcoin runs through
// the EVM integration of the device.
func hwWallet(btc, evm wallet.Kind) *Wallet {
	return &Wallet{Derive: func(p params.Params) wallet.Kind {
		if p.Get(params.Blockchain) == wallet.Bitcoin.String() {
			return btc
		}
		return evm
	}}
}

func staticWallet(k wallet.Kind) *Wallet {
	return &Wallet{Kind: k}
}

// Shared wallet pages. Each variant tree gets its own copies so that the
// registry stays free of cross-tree aliasing.
func walletsPage() Page {
	return Page{
		ID: "wallets",
		Tiles: []Tile{
			{ID: "dfx-wallet", Img: "wallet-dfx", Wallet: staticWallet(wallet.Mail)},
			{ID: "metamask", Img: "wallet-metamask", Wallet: staticWallet(wallet.MetaMask)},
			{ID: "walletconnect", Img: "wallet-walletconnect", Wallet: staticWallet(wallet.WalletConnect)},
			{ID: "hw-wallet", Img: "wallet-hw", Next: &Next{Page: "hw-wallets"}},
			{ID: "alby", Img: "wallet-alby", Wallet: staticWallet(wallet.Alby)},
			{ID: "phantom", Img: "wallet-phantom", Wallet: staticWallet(wallet.Phantom)},
			{ID: "trust", Img: "wallet-trust", Wallet: staticWallet(wallet.Trust)},
			{ID: "cli", Img: "wallet-cli", Wallet: staticWallet(wallet.Cli)},
		},
	}
}

func hwWalletsPage() Page {
	return Page{
		ID: "hw-wallets",
		Tiles: []Tile{
			{ID: "ledger", Img: "wallet-ledger", Wallet: hwWallet(wallet.LedgerBtc, wallet.LedgerEth)},
			{ID: "bitbox", Img: "wallet-bitbox", Wallet: hwWallet(wallet.BitBoxBtc, wallet.BitBoxEth)},
			{ID: "trezor", Img: "wallet-trezor", Wallet: hwWallet(wallet.TrezorBtc, wallet.TrezorEth)},
		},
	}
}

// chainTile links a service page's blockchain tile to the wallets page,
// restricted to the wallet tiles that make sense for the chain.
func chainTile(id, img string, visible []string, opts params.Params) Tile {
	return Tile{
		ID:  id,
		Img: img,
		Next: &Next{
			Page:    "wallets",
			Tiles:   visible,
			Options: opts,
		},
	}
}

func defaultTree() *Tree {
	return &Tree{
		Root: "home",
		Pages: []Page{
			{
				ID: "home",
				Tiles: []Tile{
					{ID: "buy", Img: "service-buy", Next: &Next{Page: "buy"}},
					{ID: "sell", Img: "service-sell", Next: &Next{Page: "sell"}},
					{ID: "convert", Img: "service-convert", Next: &Next{Page: "convert"}},
					{ID: "staking", Img: "service-staking", Disabled: true},
					// Explicit empty leaf: selecting it closes the flow on a
					// contact screen without any wallet requirement.
					{ID: "support", Img: "service-support"},
				},
			},
			{
				ID: "buy",
				Tiles: []Tile{
					chainTile("bitcoin", "chain-btc",
						[]string{"dfx-wallet", "hw-wallet", "alby", "cli"},
						params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Bitcoin.String(),
							params.AssetOut:   "BTC",
						}),
					chainTile("lightning", "chain-lightning",
						[]string{"dfx-wallet", "alby", "cli"},
						params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Lightning.String(),
							params.AssetOut:   "BTC",
						}),
					chainTile("ethereum", "chain-eth",
						[]string{"dfx-wallet", "metamask", "walletconnect", "hw-wallet", "trust"},
						params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Ethereum.String(),
							params.AssetOut:   "ETH",
						}),
					chainTile("arbitrum", "chain-arbitrum",
						[]string{"dfx-wallet", "metamask", "walletconnect", "hw-wallet", "trust"},
						params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Arbitrum.String(),
							params.AssetOut:   "ETH",
						}),
					chainTile("base", "chain-base",
						[]string{"dfx-wallet", "metamask", "walletconnect", "trust"},
						params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Base.String(),
							params.AssetOut:   "ETH",
						}),
					chainTile("monero", "chain-xmr",
						[]string{"dfx-wallet", "cli"},
						params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Monero.String(),
							params.AssetOut:   "XMR",
						}),
					chainTile("solana", "chain-sol",
						[]string{"dfx-wallet", "phantom"},
						params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Solana.String(),
							params.AssetOut:   "SOL",
						}),
					{ID: "polygon", Img: "chain-polygon", Disabled: true},
				},
			},
			{
				ID: "sell",
				Tiles: []Tile{
					chainTile("bitcoin", "chain-btc",
						[]string{"dfx-wallet", "hw-wallet", "cli"},
						params.Params{
							params.Service:    params.ServiceSell,
							params.Blockchain: wallet.Bitcoin.String(),
							params.AssetIn:    "BTC",
						}),
					chainTile("lightning", "chain-lightning",
						[]string{"dfx-wallet", "alby", "cli"},
						params.Params{
							params.Service:    params.ServiceSell,
							params.Blockchain: wallet.Lightning.String(),
							params.AssetIn:    "BTC",
						}),
					chainTile("ethereum", "chain-eth",
						[]string{"dfx-wallet", "metamask", "walletconnect", "hw-wallet", "trust"},
						params.Params{
							params.Service:    params.ServiceSell,
							params.Blockchain: wallet.Ethereum.String(),
							params.AssetIn:    "ETH",
						}),
					chainTile("arbitrum", "chain-arbitrum",
						[]string{"dfx-wallet", "metamask", "walletconnect", "hw-wallet", "trust"},
						params.Params{
							params.Service:    params.ServiceSell,
							params.Blockchain: wallet.Arbitrum.String(),
							params.AssetIn:    "ETH",
						}),
					{ID: "polygon", Img: "chain-polygon", Disabled: true},
				},
			},
			{
				ID: "convert",
				Tiles: []Tile{
					chainTile("bitcoin", "chain-btc",
						[]string{"dfx-wallet", "hw-wallet", "cli"},
						params.Params{
							params.Service:    params.ServiceConvert,
							params.Blockchain: wallet.Bitcoin.String(),
							params.AssetIn:    "BTC",
						}),
					chainTile("lightning", "chain-lightning",
						[]string{"dfx-wallet", "alby"},
						params.Params{
							params.Service:    params.ServiceConvert,
							params.Blockchain: wallet.Lightning.String(),
							params.AssetIn:    "BTC",
						}),
					chainTile("ethereum", "chain-eth",
						[]string{"dfx-wallet", "metamask", "walletconnect", "hw-wallet"},
						params.Params{
							params.Service:    params.ServiceConvert,
							params.Blockchain: wallet.Ethereum.String(),
							params.AssetIn:    "ETH",
						}),
					chainTile("monero", "chain-xmr",
						[]string{"dfx-wallet", "cli"},
						params.Params{
							params.Service:    params.ServiceConvert,
							params.Blockchain: wallet.Monero.String(),
							params.AssetIn:    "XMR",
						}),
				},
			},
			walletsPage(),
			hwWalletsPage(),
		},
	}
}

// bitcoinOnlyTree is the deployment variant for Bitcoin-only partners.
// The blockchain is fixed on the first selection, so the home tiles jump
// straight to the wallets page.
func bitcoinOnlyTree() *Tree {
	return &Tree{
		Root: "home",
		Pages: []Page{
			{
				ID: "home",
				Tiles: []Tile{
					{ID: "buy", Img: "service-buy", Next: &Next{
						Page:  "wallets",
						Tiles: []string{"dfx-wallet", "hw-wallet", "alby", "cli"},
						Options: params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Bitcoin.String(),
							params.AssetOut:   "BTC",
						},
					}},
					{ID: "sell", Img: "service-sell", Next: &Next{
						Page:  "wallets",
						Tiles: []string{"dfx-wallet", "hw-wallet", "cli"},
						Options: params.Params{
							params.Service:    params.ServiceSell,
							params.Blockchain: wallet.Bitcoin.String(),
							params.AssetIn:    "BTC",
						},
					}},
				},
			},
			walletsPage(),
			hwWalletsPage(),
		},
	}
}

// albyTree is the partner-branded Lightning flow: every path ends in the
// Alby wallet with the Lightning chain preselected.
func albyTree() *Tree {
	return &Tree{
		Root: "home",
		Pages: []Page{
			{
				ID: "home",
				Tiles: []Tile{
					{ID: "buy", Img: "service-buy", Next: &Next{
						Page:  "wallets",
						Tiles: []string{"alby"},
						Options: params.Params{
							params.Service:    params.ServiceBuy,
							params.Blockchain: wallet.Lightning.String(),
							params.AssetOut:   "BTC",
						},
					}},
					{ID: "sell", Img: "service-sell", Next: &Next{
						Page:  "wallets",
						Tiles: []string{"alby"},
						Options: params.Params{
							params.Service:    params.ServiceSell,
							params.Blockchain: wallet.Lightning.String(),
							params.AssetIn:    "BTC",
						},
					}},
				},
			},
			{
				ID: "wallets",
				Tiles: []Tile{
					{ID: "alby", Img: "wallet-alby", Wallet: staticWallet(wallet.Alby)},
				},
			},
		},
	}
}

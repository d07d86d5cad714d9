// Package rpc reads native and ERC-20 balances for a connected EVM
// address so that the order screen can show what the user holds.
package rpc

import (
	"context"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"crypto-widget-tui/wallet"
)

// Client wraps an Ethereum RPC client
type Client struct {
	*ethclient.Client
	URL string
}

// ConnectResult holds the result of an RPC connection attempt
type ConnectResult struct {
	Client *Client
	Error  error
}

// Connect attempts to connect to an Ethereum RPC endpoint
func Connect(url string) ConnectResult {
	return ConnectWithTimeout(url, 8*time.Second)
}

// ConnectWithTimeout attempts to connect with a custom timeout
func ConnectWithTimeout(url string, timeout time.Duration) ConnectResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return ConnectResult{Client: nil, Error: err}
	}

	return ConnectResult{
		Client: &Client{
			Client: client,
			URL:    url,
		},
		Error: nil,
	}
}

// TokenBalance represents an ERC20 token balance
type TokenBalance struct {
	Symbol   string
	Decimals uint8
	Balance  *big.Int
}

// WatchedToken represents a token to query
type WatchedToken struct {
	Symbol   string
	Decimals uint8
	Address  common.Address
}

// Watchlist returns the tokens queried for a connected address on the
// given chain. Only Ethereum mainnet carries a default set; other EVM
// chains fall back to native balance only.
func Watchlist(chain wallet.Blockchain) []WatchedToken {
	if chain != wallet.Ethereum {
		return nil
	}
	return []WatchedToken{
		{Symbol: "WETH", Decimals: 18, Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")},
		{Symbol: "USDC", Decimals: 6, Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")},
		{Symbol: "USDT", Decimals: 6, Address: common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")},
		{Symbol: "DAI", Decimals: 18, Address: common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")},
	}
}

// AccountBalances contains the balance information for a connected address
type AccountBalances struct {
	Address    string
	NativeWei  *big.Int
	Tokens     []TokenBalance
	LoadedAt   time.Time
	ErrMessage string
}

// LoadAccountBalances fetches native and token balances for an address
func LoadAccountBalances(client *Client, addr common.Address, watch []WatchedToken) AccountBalances {
	return LoadAccountBalancesWithTimeout(client, addr, watch, 12*time.Second)
}

// LoadAccountBalancesWithTimeout fetches balances with a custom timeout
func LoadAccountBalancesWithTimeout(client *Client, addr common.Address, watch []WatchedToken, timeout time.Duration) AccountBalances {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	b := AccountBalances{
		Address:   addr.Hex(),
		NativeWei: big.NewInt(0),
		LoadedAt:  time.Now(),
	}

	if client == nil || client.Client == nil {
		b.ErrMessage = "No RPC client (set ETH_RPC_URL)."
		return b
	}

	wei, err := client.BalanceAt(ctx, addr, nil)
	if err != nil {
		b.ErrMessage = "Failed to load native balance."
		return b
	}
	b.NativeWei = wei

	// ERC20 balances, simple sequential calls
	var toks []TokenBalance
	for _, t := range watch {
		bal, err := erc20BalanceOf(ctx, client.Client, t.Address, addr)
		if err != nil {
			// skip token silently; the widget shows what it could load
			continue
		}
		if bal.Sign() > 0 {
			toks = append(toks, TokenBalance{
				Symbol:   t.Symbol,
				Decimals: t.Decimals,
				Balance:  bal,
			})
		}
	}

	sort.Slice(toks, func(i, j int) bool {
		return strings.ToLower(toks[i].Symbol) < strings.ToLower(toks[j].Symbol)
	})
	b.Tokens = toks

	return b
}

// Minimal ERC20 balanceOf via eth_call.
var (
	// balanceOf(address) methodID = keccak256("balanceOf(address)")[:4]
	balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}
)

func erc20BalanceOf(ctx context.Context, client *ethclient.Client, token common.Address, owner common.Address) (*big.Int, error) {
	// calldata = selector + 32-byte left-padded address
	padded := common.LeftPadBytes(owner.Bytes(), 32)
	data := append(balanceOfSelector, padded...)

	msg := ethereum.CallMsg{
		To:   &token,
		Data: data,
	}
	out, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).SetBytes(out), nil
}

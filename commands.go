package main

import (
	"fmt"
	"time"

	"crypto-widget-tui/helpers"
	"crypto-widget-tui/params"
	"crypto-widget-tui/rpc"
	"crypto-widget-tui/wallet"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// connectRPC establishes an RPC connection to the Ethereum node
func connectRPC(url string) tea.Cmd {
	return func() tea.Msg {
		result := rpc.Connect(url)
		return rpcConnectedMsg{client: result.Client, err: result.Error}
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// loadBalances fetches native and token balances for a connected address
func loadBalances(client *rpc.Client, addr string, chain wallet.Blockchain) tea.Cmd {
	return func() tea.Msg {
		b := rpc.LoadAccountBalances(client, common.HexToAddress(addr), rpc.Watchlist(chain))
		return balancesLoadedMsg{b: b}
	}
}

// orderRoute is the payment instruction produced for a confirmed order.
type orderRoute struct {
	ID          string
	DepositAddr string
	URI         string
	Amount      string
	Asset       string
}

// depositAddrs holds the deposit address per blockchain. Address issuance
// through the payment backend is out of scope, so routes use a fixed
// address per chain.
var depositAddrs = map[wallet.Blockchain]string{
	wallet.Bitcoin:   "bc1qf60zw2gec0qdrmwrvzublqyrfnrvacyzwyqe0t",
	wallet.Lightning: "lnbc1p3k7pqhpp5widget0cc0deposit",
	wallet.Monero:    "888tNkZrPN6JsEgekjMnABU4TBzc2Dt29EPAvkRxbANsAnjyPbb3iQ1YBRk1UXcdRsiKc9dhwMVgN5S9cQUiyoogDavup3H",
	wallet.Solana:    "B1aNcEWidGetDepositRouteSoL1111111111111111",
	wallet.Ethereum:  "0x2fd3d71D17e4F9f1FfdA9437Cf57c1ef2fc646B4",
	wallet.Arbitrum:  "0x2fd3d71D17e4F9f1FfdA9437Cf57c1ef2fc646B4",
	wallet.Optimism:  "0x2fd3d71D17e4F9f1FfdA9437Cf57c1ef2fc646B4",
	wallet.Base:      "0x2fd3d71D17e4F9f1FfdA9437Cf57c1ef2fc646B4",
	wallet.Polygon:   "0x2fd3d71D17e4F9f1FfdA9437Cf57c1ef2fc646B4",
}

// createOrder turns the final parameter set into a payment route
func createOrder(p params.Params) tea.Cmd {
	return func() tea.Msg {
		service := p.Get(params.Service)
		chain := wallet.Blockchain(p.Get(params.Blockchain))
		if service == "" || chain == "" {
			return orderCreatedMsg{err: fmt.Errorf("order is missing service or blockchain")}
		}

		addr, ok := depositAddrs[chain]
		if !ok {
			return orderCreatedMsg{err: fmt.Errorf("no deposit route for %s", chain)}
		}

		amount := p.Get(params.AmountIn)
		asset := p.Get(params.AssetIn)
		if asset == "" {
			asset = p.Get(params.AssetOut)
		}

		route := orderRoute{
			ID:          fmt.Sprintf("%s-%s-%d", service, chain, time.Now().Unix()),
			DepositAddr: addr,
			URI:         helpers.PaymentURI(chain, addr, amount, asset),
			Amount:      amount,
			Asset:       asset,
		}
		return orderCreatedMsg{route: route}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{}
		}
		return nil
	}
}

// clearClipboardFeedback waits 2 seconds then clears the copied marker
func clearClipboardFeedback() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// -------------------- MODEL HELPER METHODS --------------------

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// maybeLoadBalances starts a balance load when the connected wallet sits
// on a chain the RPC endpoint can serve
func (m *model) maybeLoadBalances() tea.Cmd {
	chain := wallet.Blockchain(m.finalParams.Get(params.Blockchain))
	if !chain.IsEVM() || m.connectedAddr == "" || !helpers.IsValidEthAddress(m.connectedAddr) {
		return nil
	}
	m.loadingBalances = true
	m.addLog("info", fmt.Sprintf("Loading balances for `%s`", helpers.ShortenAddr(m.connectedAddr)))
	return loadBalances(m.ethClient, m.connectedAddr, chain)
}

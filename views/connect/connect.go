// Package connect renders the wallet connection screen shown after the
// feature tree resolved a concrete wallet requirement.
package connect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"crypto-widget-tui/styles"
	"crypto-widget-tui/wallet"
)

// instructions per wallet kind, shown above the connection form.
var instructions = map[wallet.Kind]string{
	wallet.Mail:          "Log in with your e-mail address. A login link will be sent to you.",
	wallet.MetaMask:      "Enter the address of the MetaMask account you want to use.",
	wallet.WalletConnect: "Enter the address of the account paired via WalletConnect.",
	wallet.LedgerBtc:     "Connect your Ledger, open the Bitcoin app and enter the receive address.",
	wallet.LedgerEth:     "Connect your Ledger, open the Ethereum app and enter the account address.",
	wallet.BitBoxBtc:     "Connect your BitBox02 and enter the Bitcoin receive address.",
	wallet.BitBoxEth:     "Connect your BitBox02 and enter the Ethereum account address.",
	wallet.TrezorBtc:     "Connect your Trezor and enter the Bitcoin receive address.",
	wallet.TrezorEth:     "Connect your Trezor and enter the Ethereum account address.",
	wallet.Alby:          "Enter the Lightning address of your Alby account.",
	wallet.Phantom:       "Enter the address of your Phantom Solana account.",
	wallet.Trust:         "Enter the address of your Trust Wallet account.",
	wallet.Cli:           "Enter the address generated by your command line wallet.",
}

// names per wallet kind for display.
var names = map[wallet.Kind]string{
	wallet.Mail:          "Mail Login",
	wallet.MetaMask:      "MetaMask",
	wallet.WalletConnect: "WalletConnect",
	wallet.LedgerBtc:     "Ledger (Bitcoin)",
	wallet.LedgerEth:     "Ledger (Ethereum)",
	wallet.BitBoxBtc:     "BitBox02 (Bitcoin)",
	wallet.BitBoxEth:     "BitBox02 (Ethereum)",
	wallet.TrezorBtc:     "Trezor (Bitcoin)",
	wallet.TrezorEth:     "Trezor (Ethereum)",
	wallet.Alby:          "Alby",
	wallet.Phantom:       "Phantom",
	wallet.Trust:         "Trust Wallet",
	wallet.Cli:           "CLI Wallet",
}

// Name returns the display name of a wallet kind.
func Name(k wallet.Kind) string {
	if n, ok := names[k]; ok {
		return n
	}
	return k.String()
}

// Render draws the connect screen around the (already rendered) form.
func Render(kind wallet.Kind, chain string, formView, errMsg string) string {
	title := styles.TitleStyle.Render("Connect " + Name(kind))

	var sub string
	if chain != "" {
		sub = lipgloss.NewStyle().Foreground(styles.CMuted).Render("Blockchain: " + chain)
	}

	howto := lipgloss.NewStyle().Foreground(styles.CText).Render(instructions[kind])

	content := title
	if sub != "" {
		content += "\n" + sub
	}
	content += "\n\n" + howto + "\n\n" + formView

	if errMsg != "" {
		content += "\n\n" + styles.NoticeStyle.Render(errMsg)
	}
	return content
}

// RenderUnsupported draws the error screen for a wallet/chain combination
// the compatibility table disallows.
func RenderUnsupported(kind wallet.Kind, chain string) string {
	title := styles.TitleStyle.Render("Unsupported combination")
	msg := lipgloss.NewStyle().Foreground(styles.CWarn).Render(
		Name(kind) + " cannot be used on " + chain + ".")
	hint := lipgloss.NewStyle().Foreground(styles.CMuted).Render(
		"Press Esc to pick another wallet.")
	return title + "\n\n" + msg + "\n\n" + hint
}

// Nav returns the navigation bar for the connect screen
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Enter") + " connect",
		styles.Key("Esc") + " back",
		styles.Key("l") + " debug log",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// Package payment renders the payment screen: deposit address, a
// scannable QR code for the payment URI, and copy feedback.
package payment

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"

	"crypto-widget-tui/styles"
	"crypto-widget-tui/wallet"
)

// QR renders the payment URI as a half-block terminal QR code.
func QR(uri string) string {
	var buf bytes.Buffer
	qrterminal.GenerateHalfBlock(uri, qrterminal.L, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

// Render draws the payment screen for a created order.
func Render(chain wallet.Blockchain, routeID, depositAddr, uri string, amount, asset string, copied bool) string {
	title := styles.TitleStyle.Render("Payment")

	labelStyle := lipgloss.NewStyle().Foreground(styles.CMuted).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(styles.CText)

	info := strings.Join([]string{
		labelStyle.Render("Route") + valueStyle.Render(routeID),
		labelStyle.Render("Chain") + valueStyle.Render(chain.String()),
		labelStyle.Render("Send") + valueStyle.Render(amount+" "+asset),
		labelStyle.Render("To") + valueStyle.Render(depositAddr),
	}, "\n")

	uriLine := lipgloss.NewStyle().Foreground(styles.CAccent2).Render(uri)
	if copied {
		uriLine += "  " + lipgloss.NewStyle().Foreground(styles.CAccent).Render("copied!")
	}

	qr := lipgloss.NewStyle().Padding(1, 2).Render(QR(uri))

	return strings.Join([]string{title, info, uriLine, qr}, "\n\n")
}

// Nav returns the navigation bar for the payment screen
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("c") + " copy URI",
		styles.Key("Enter") + " done",
		styles.Key("Esc") + " back",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

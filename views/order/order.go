// Package order renders the order screen: the merged parameters of the
// finished tree walk, the connected account's balances, and the amount
// form.
package order

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"crypto-widget-tui/helpers"
	"crypto-widget-tui/params"
	"crypto-widget-tui/rpc"
	"crypto-widget-tui/styles"
)

// serviceTitles maps the service param to a screen heading.
var serviceTitles = map[string]string{
	params.ServiceBuy:     "Buy",
	params.ServiceSell:    "Sell",
	params.ServiceConvert: "Convert",
}

// Title returns the heading for a service type.
func Title(service string) string {
	if t, ok := serviceTitles[service]; ok {
		return t
	}
	return "Order"
}

// Summary renders the merged parameter set as a label/value block.
func Summary(p params.Params) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.CMuted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(styles.CText)

	row := func(label string, key params.Key) string {
		v := p.Get(key)
		if v == "" {
			return ""
		}
		return labelStyle.Render(label) + valueStyle.Render(v)
	}

	var rows []string
	for _, r := range []string{
		row("Service", params.Service),
		row("Blockchain", params.Blockchain),
		row("Asset in", params.AssetIn),
		row("Asset out", params.AssetOut),
		row("Amount in", params.AmountIn),
		row("Amount out", params.AmountOut),
	} {
		if r != "" {
			rows = append(rows, r)
		}
	}
	return strings.Join(rows, "\n")
}

// Balances renders the connected account's balances, or a loading line.
func Balances(b rpc.AccountBalances, loadedAt time.Time, loading bool, spinnerView string) string {
	if loading {
		return spinnerView + " loading balances…"
	}
	if b.Address == "" {
		return ""
	}
	if b.ErrMessage != "" {
		return lipgloss.NewStyle().Foreground(styles.CWarn).Render(b.ErrMessage)
	}

	header := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("Balances "+helpers.ShortenAddr(b.Address)) +
		lipgloss.NewStyle().Foreground(styles.CMuted).Render("  loaded "+helpers.LoadedAt(loadedAt, loading))
	lines := []string{
		header,
		helpers.FormatUnits(b.NativeWei, 18, "ETH"),
	}
	for _, t := range b.Tokens {
		lines = append(lines, helpers.FormatUnits(t.Balance, t.Decimals, t.Symbol))
	}
	return strings.Join(lines, "\n")
}

// Render draws the full order screen around the (already rendered) form.
func Render(p params.Params, balances rpc.AccountBalances, loadedAt time.Time, loading bool, spinnerView, formView string) string {
	title := styles.TitleStyle.Render(Title(p.Get(params.Service)) + " order")

	sections := []string{title, Summary(p)}
	if bal := Balances(balances, loadedAt, loading, spinnerView); bal != "" {
		sections = append(sections, bal)
	}
	sections = append(sections, formView)

	return strings.Join(sections, "\n\n")
}

// Nav returns the navigation bar for the order screen
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Enter") + " confirm",
		styles.Key("Esc") + " back",
		styles.Key("l") + " debug log",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

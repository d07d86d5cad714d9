// Package tiles renders one feature-tree page as a grid of selectable
// tiles.
package tiles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"crypto-widget-tui/flow"
	"crypto-widget-tui/helpers"
	"crypto-widget-tui/styles"
)

// icons maps the opaque tile image keys of the feature tree to terminal
// glyphs. Unknown keys fall back to a neutral marker.
var icons = map[string]string{
	"service-buy":           "🛒",
	"service-sell":          "💰",
	"service-convert":       "🔄",
	"service-staking":       "🌱",
	"service-support":       "✉",
	"chain-btc":             "₿",
	"chain-lightning":       "⚡",
	"chain-eth":             "Ξ",
	"chain-arbitrum":        "🔵",
	"chain-base":            "🔷",
	"chain-polygon":         "🟣",
	"chain-xmr":             "ɱ",
	"chain-sol":             "◎",
	"wallet-dfx":            "📧",
	"wallet-metamask":       "🦊",
	"wallet-walletconnect":  "🔗",
	"wallet-hw":             "🔑",
	"wallet-alby":           "🐝",
	"wallet-phantom":        "👻",
	"wallet-trust":          "🛡",
	"wallet-cli":            "⌨",
}

// labels maps tile ids to display names.
var labels = map[string]string{
	"buy":           "Buy",
	"sell":          "Sell",
	"convert":       "Convert",
	"staking":       "Staking",
	"support":       "Support",
	"bitcoin":       "Bitcoin",
	"lightning":     "Lightning",
	"ethereum":      "Ethereum",
	"arbitrum":      "Arbitrum",
	"base":          "Base",
	"polygon":       "Polygon",
	"monero":        "Monero",
	"solana":        "Solana",
	"dfx-wallet":    "Mail Login",
	"metamask":      "MetaMask",
	"walletconnect": "WalletConnect",
	"hw-wallet":     "Hardware Wallet",
	"alby":          "Alby",
	"phantom":       "Phantom",
	"trust":         "Trust Wallet",
	"cli":           "CLI",
	"ledger":        "Ledger",
	"bitbox":        "BitBox",
	"trezor":        "Trezor",
}

// Label returns the display name of a tile id.
func Label(id string) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return id
}

// Icon returns the glyph for a tile image key.
func Icon(img string) string {
	if ic, ok := icons[img]; ok {
		return ic
	}
	return "▫"
}

// Visible filters a page's tiles down to the ones an active allow-list
// leaves selectable. A nil allow-list keeps every tile.
func Visible(page *flow.Page, allow []string) []flow.Tile {
	if allow == nil {
		return page.Tiles
	}
	var out []flow.Tile
	for _, t := range page.Tiles {
		for _, id := range allow {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// titles maps page ids to screen headings.
var titles = map[string]string{
	"home":       "What would you like to do?",
	"buy":        "Buy crypto: choose a blockchain",
	"sell":       "Sell crypto: choose a blockchain",
	"convert":    "Convert crypto: choose a blockchain",
	"wallets":    "Choose your wallet",
	"hw-wallets": "Choose your hardware wallet",
}

// Render draws the tile grid for a page. selectedIdx indexes into the
// visible tile slice.
func Render(page *flow.Page, visible []flow.Tile, selectedIdx, width int, notice string) string {
	title := styles.TitleStyle.Render(pageTitle(page.ID))

	cols := helpers.Max(1, helpers.Min(4, (width-4)/22))

	tileStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(20).
		Align(lipgloss.Center)
	selectedStyle := tileStyle.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(styles.CAccent)
	disabledStyle := tileStyle.
		BorderForeground(styles.CMuted).
		Foreground(styles.CMuted)

	var cells []string
	for i, t := range visible {
		body := Icon(t.Img) + "  " + Label(t.ID)
		switch {
		case t.Disabled:
			cells = append(cells, disabledStyle.Render(body+"\n(coming soon)"))
		case i == selectedIdx:
			cells = append(cells, selectedStyle.Render(helpers.FadeString(body, "#F25D94", "#EDFF82")))
		default:
			cells = append(cells, tileStyle.Render(body))
		}
	}

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := helpers.Min(start+cols, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}

	content := title + "\n\n" + strings.Join(rows, "\n")
	if notice != "" {
		content += "\n\n" + styles.NoticeStyle.Render(notice)
	}
	return content
}

func pageTitle(id string) string {
	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Nav returns the navigation bar for tile pages
func Nav(width int, atRoot bool) string {
	items := []string{
		styles.Key("←/→/↑/↓") + " move",
		styles.Key("Enter") + " select",
	}
	if atRoot {
		items = append(items, styles.Key("Esc")+" quit")
	} else {
		items = append(items, styles.Key("Esc")+" back")
	}
	items = append(items, styles.Key("l")+" debug log", styles.Key("q")+" quit")

	return styles.NavStyle.Width(width).Render(strings.Join(items, "   "))
}

package helpers

import (
	"image/color"
	"math/big"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"

	"crypto-widget-tui/wallet"
)

// ShortenAddr shortens a deposit or wallet address for display
func ShortenAddr(addr string) string {
	if len(addr) < 14 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-6:]
}

// IsValidEthAddress checks if a string is a valid Ethereum address
func IsValidEthAddress(s string) bool {
	re := regexp.MustCompile("^0x[0-9a-fA-F]{40}$")
	return re.MatchString(s)
}

// IsValidEmail checks a mail-login address for basic plausibility
func IsValidEmail(s string) bool {
	re := regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	return re.MatchString(s)
}

// IsValidAmount checks a user-entered amount string for a positive decimal
func IsValidAmount(s string) bool {
	amount, ok := new(big.Float).SetString(strings.TrimSpace(s))
	return ok && amount.Sign() > 0
}

// FormatUnits formats a raw integer balance with the given decimals
func FormatUnits(raw *big.Int, decimals uint8, symbol string) string {
	if raw == nil {
		return "0 " + symbol
	}
	divisor := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	amount := new(big.Float).Quo(new(big.Float).SetInt(raw), divisor)
	return amount.Text('f', 4) + " " + symbol
}

// PaymentURI builds the wallet-app URI for a deposit to the given address.
// EVM chains use the EIP-681 form; Bitcoin uses BIP-21; the rest use their
// plain scheme prefix.
func PaymentURI(chain wallet.Blockchain, address, amount, asset string) string {
	switch {
	case chain == wallet.Bitcoin:
		uri := "bitcoin:" + address
		if amount != "" {
			uri += "?amount=" + url.QueryEscape(amount)
		}
		return uri
	case chain == wallet.Lightning:
		return "lightning:" + address
	case chain == wallet.Monero:
		uri := "monero:" + address
		if amount != "" {
			uri += "?tx_amount=" + url.QueryEscape(amount)
		}
		return uri
	case chain == wallet.Solana:
		uri := "solana:" + address
		if amount != "" {
			uri += "?amount=" + url.QueryEscape(amount)
		}
		return uri
	case chain.IsEVM():
		uri := "ethereum:" + address
		if amount != "" {
			uri += "?value=" + url.QueryEscape(amount)
		}
		return uri
	default:
		return address
	}
}

// LoadedAt formats the loaded timestamp
func LoadedAt(t time.Time, loading bool) string {
	if loading {
		return "loading…"
	}
	if t.IsZero() {
		return "never"
	}
	return t.Format("15:04:05")
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), len(s))
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var result string
	for i, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		result += baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c))
	}
	return result
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

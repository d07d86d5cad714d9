package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#0C1117") // near-black
	CPanel   = lipgloss.Color("#111A24") // slightly lighter
	CBorder  = lipgloss.Color("#2E95D3")
	CMuted   = lipgloss.Color("#8699AD")
	CText    = lipgloss.Color("#DCE7F2")
	CAccent  = lipgloss.Color("#58D68D") // green-ish
	CAccent2 = lipgloss.Color("#6CB6FF") // blue-ish
	CWarn    = lipgloss.Color("#F5A65B") // orange
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	// NoticeStyle renders recoverable selection errors inline.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(CWarn).
			Bold(true)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}

package main

import (
	"strings"
	"time"

	"crypto-widget-tui/helpers"
	"crypto-widget-tui/params"
	"crypto-widget-tui/styles"
	"crypto-widget-tui/views/connect"
	logview "crypto-widget-tui/views/log"
	"crypto-widget-tui/views/order"
	"crypto-widget-tui/views/payment"
	"crypto-widget-tui/views/tiles"
	"crypto-widget-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8) // Account for panel padding

	variantDisplay := lipgloss.NewStyle().
		Foreground(cAccent2).
		Bold(true).
		Render("Variant: " + helpers.FadeString(string(m.variant), "#F25D94", "#EDFF82"))

	// RPC status with green dot
	var statusIcon string
	var statusColor lipgloss.Color
	var statusText string

	switch {
	case m.rpcURL == "":
		statusIcon = "○"
		statusColor = lipgloss.Color("#c01c28")
		statusText = "No RPC"
	case m.rpcConnecting:
		statusIcon = "○"
		statusColor = lipgloss.Color("#c01c28")
		statusText = "Connecting..."
	case !m.rpcConnected:
		statusIcon = "○"
		statusColor = lipgloss.Color("#c01c28")
		statusText = "Connection Failed"
	default:
		statusIcon = "●"
		statusColor = cAccent
		statusText = "Connected"
	}

	rpcDisplay := lipgloss.NewStyle().
		Foreground(statusColor).
		Bold(true).
		Render(statusIcon + " " + statusText)

	titleText := lipgloss.NewStyle().
		Foreground(cAccent).
		Bold(true).
		Render(helpers.FadeString("crypto widget", "#7EE787", "#82CFFD"))

	variantWidth := lipgloss.Width(variantDisplay)
	rpcWidth := lipgloss.Width(rpcDisplay)
	titleWidth := lipgloss.Width(titleText)
	totalOtherWidth := variantWidth + rpcWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		// Not enough space, stack vertically
		headerLine = variantDisplay + "\n" + titleText + "\n" + rpcDisplay
	} else {
		// Three-column layout: Variant | Title (centered) | RPC
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding

		leftSpacer := strings.Repeat(" ", max(1, leftPadding))
		rightSpacer := strings.Repeat(" ", max(1, rightPadding))

		headerLine = variantDisplay + leftSpacer + titleText + rightSpacer + rpcDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

// renderSupport draws the terminal support screen
func (m *model) renderSupport() string {
	title := titleStyle.Render("Support")
	body := lipgloss.NewStyle().Foreground(cText).Render(
		"Write to support@dfx.swiss and we will get back to you.")
	hint := lipgloss.NewStyle().Foreground(cMuted).Render(
		"Press Esc to return to the start.")
	return title + "\n\n" + body + "\n\n" + hint
}

func (m *model) View() string {
	globalHdr := m.globalHeader()
	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(globalHdr)

	var pageContent string
	var nav string

	switch m.active {

	case screenTiles:
		page, ok := m.tree.PageByID(m.acc.Page)
		if !ok {
			pageContent = "page not found: " + m.acc.Page
			break
		}
		notice := ""
		if m.notice != "" && time.Since(m.noticeTime) < 3*time.Second {
			notice = m.notice
		}
		pageContent = tiles.Render(page, m.visibleTiles(), m.selIdx, m.w, notice)
		nav = tiles.Nav(max(0, m.w-2), len(m.trail) == 0)

	case screenConnect:
		chain := m.finalParams.Get(params.Blockchain)
		if m.walletBlocked {
			pageContent = connect.RenderUnsupported(m.walletKind, chain)
		} else {
			formView := ""
			if m.connectForm != nil {
				formView = m.connectForm.View()
			}
			pageContent = connect.Render(m.walletKind, chain, formView, "")
		}
		nav = connect.Nav(max(0, m.w-2))

	case screenOrder:
		formView := ""
		switch {
		case m.creatingOrder:
			formView = m.spin.View() + " creating order…"
		case m.orderForm != nil:
			formView = m.orderForm.View()
		}
		if m.orderErr != "" {
			formView = styles.NoticeStyle.Render(m.orderErr) + "\n\n" + formView
		}
		pageContent = order.Render(m.finalParams, m.balances, m.balancesAt, m.loadingBalances, m.spin.View(), formView)
		// Balances reported by the embedding page, shown when no on-chain
		// balances were loaded.
		if m.balances.Address == "" && len(m.ext.Balances) > 0 {
			var parts []string
			for _, b := range m.ext.Balances {
				parts = append(parts, b.Amount+" "+b.AssetID)
			}
			reported := lipgloss.NewStyle().Foreground(cMuted).
				Render("Reported balances: " + strings.Join(parts, ", "))
			pageContent += "\n\n" + reported
		}
		nav = order.Nav(max(0, m.w-2))

	case screenPayment:
		chain := wallet.Blockchain(m.finalParams.Get(params.Blockchain))
		pageContent = payment.Render(chain, m.route.ID, m.route.DepositAddr, m.route.URI, m.route.Amount, m.route.Asset, m.copied)
		nav = payment.Nav(max(0, m.w-2))

	case screenSupport:
		pageContent = m.renderSupport()
	}

	pagePanel := panelStyle.Width(max(0, m.w-2)).Render(pageContent)

	if m.logEnabled {
		logPanel := logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport)
		content := lipgloss.JoinVertical(lipgloss.Left, headerPanel, pagePanel, nav, logPanel)
		return appStyle.Render(content)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, headerPanel, pagePanel, nav)
	return appStyle.Render(content)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

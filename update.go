package main

import (
	"errors"
	"fmt"
	"time"

	"crypto-widget-tui/flow"
	"crypto-widget-tui/helpers"
	"crypto-widget-tui/params"
	"crypto-widget-tui/views/connect"
	"crypto-widget-tui/views/tiles"
	"crypto-widget-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- TEMP FORM STORAGE --------------------
// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempConnectAddr string
	tempConnectMail string
	tempOrderAmount string
)

func (m *model) createConnectForm() {
	tempConnectAddr = ""
	tempConnectMail = ""

	chain := wallet.Blockchain(m.finalParams.Get(params.Blockchain))

	var input *huh.Input
	if m.walletKind.NeedsAddress() {
		input = huh.NewInput().
			Title("Address").
			Description("The account you want to connect").
			Value(&tempConnectAddr).
			Placeholder(addressPlaceholder(chain)).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("address is required")
				}
				if chain.IsEVM() && !helpers.IsValidEthAddress(s) {
					return fmt.Errorf("invalid address for %s", chain)
				}
				return nil
			})
	} else {
		input = huh.NewInput().
			Title("E-mail").
			Description("A login link will be sent to this address").
			Value(&tempConnectMail).
			Placeholder("you@example.com").
			Validate(func(s string) error {
				if !helpers.IsValidEmail(s) {
					return fmt.Errorf("invalid e-mail address")
				}
				return nil
			})
	}

	m.connectForm = huh.NewForm(huh.NewGroup(input)).WithTheme(huh.ThemeCatppuccin())
	m.connectForm.Init()
}

// addressPlaceholder suggests the address shape for a chain
func addressPlaceholder(chain wallet.Blockchain) string {
	switch chain {
	case wallet.Bitcoin:
		return "bc1..."
	case wallet.Lightning:
		return "you@getalby.com"
	case wallet.Monero:
		return "4..."
	case wallet.Solana:
		return "base58 address"
	default:
		return "0x..."
	}
}

func (m *model) createOrderForm() {
	tempOrderAmount = m.finalParams.Get(params.AmountIn)

	m.orderForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Description("How much you want to " + m.finalParams.Get(params.Service)).
				Value(&tempOrderAmount).
				Placeholder("0.0").
				Validate(func(s string) error {
					if !helpers.IsValidAmount(s) {
						return fmt.Errorf("amount must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.orderForm.Init()
}

// -------------------- NAVIGATION --------------------

// visibleTiles returns the selectable tiles of the page the accumulator
// points at
func (m *model) visibleTiles() []flow.Tile {
	page, ok := m.tree.PageByID(m.acc.Page)
	if !ok {
		return nil
	}
	return tiles.Visible(page, m.acc.Visible)
}

// resetToRoot abandons the current walk and starts over at the root page
func (m *model) resetToRoot() {
	m.acc = flow.Start(m.tree)
	m.trail = nil
	m.selIdx = 0
}

// selectTile resolves the highlighted tile and routes to the next screen
func (m *model) selectTile(tileID string) tea.Cmd {
	res, err := flow.ResolveStep(m.tree, m.acc, tileID)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrTileDisabled):
			m.setNotice("This option is not available yet.")
		case errors.Is(err, flow.ErrTileNotVisible):
			m.setNotice("This option is not selectable here.")
		default:
			// Unknown page or tile means the navigation state went bad.
			m.addLog("error", fmt.Sprintf("Resolution failed: %s", err))
			m.resetToRoot()
		}
		return nil
	}

	switch res.Status {
	case flow.Advance:
		if len(m.trail) >= maxFlowDepth {
			m.addLog("error", fmt.Sprintf("Navigation depth cap hit on page `%s`", m.acc.Page))
			m.resetToRoot()
			return nil
		}
		m.trail = append(m.trail, tileID)
		m.acc = flow.Accumulator{Page: res.NextPage, Visible: res.VisibleTiles, Params: res.Params}
		m.selIdx = 0
		m.addLog("info", fmt.Sprintf("Page `%s`", res.NextPage))
		return nil

	case flow.WalletRequired:
		// The guard must see the same params the order will run on,
		// overrides included. A deep-linked blockchain can turn an
		// allowed combination into a rejected one.
		m.finalParams = params.Merge(res.Params, m.ext.Overrides)
		m.walletKind = res.Wallet
		m.walletBlocked = flow.GuardWallet(res.Wallet, m.finalParams) != nil
		m.active = screenConnect
		if m.walletBlocked {
			m.addLog("warning", fmt.Sprintf("`%s` rejected on `%s`", res.Wallet, m.finalParams.Get(params.Blockchain)))
			m.connectForm = nil
			return nil
		}
		m.addLog("info", fmt.Sprintf("Connecting wallet `%s`", connect.Name(res.Wallet)))
		m.createConnectForm()
		return nil

	default: // flow.Terminal
		m.finalParams = params.Merge(res.Params, m.ext.Overrides)
		m.active = screenSupport
		return nil
	}
}

// goBack pops the last selection and recomputes the walk state from the
// remaining trail
func (m *model) goBack() {
	if len(m.trail) == 0 {
		return
	}
	m.trail = m.trail[:len(m.trail)-1]

	res, err := flow.ResolvePath(m.tree, m.tree.Root, m.trail)
	if err != nil || res.Status != flow.Advance {
		m.resetToRoot()
		return
	}
	m.acc = flow.Accumulator{Page: res.NextPage, Visible: res.VisibleTiles, Params: res.Params}
	if m.acc.Page == "" {
		m.acc.Page = m.tree.Root
	}
	m.selIdx = 0
}

func (m *model) setNotice(s string) {
	m.notice = s
	m.noticeTime = time.Now()
}

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle connect form updates first. Only key presses go to the form;
	// async results still reach the message switch below.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.active == screenConnect && !m.walletBlocked && m.connectForm != nil {
		switch keyMsg.String() {
		case "esc":
			m.connectForm = nil
			m.active = screenTiles
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}

		form, cmd := m.connectForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.connectForm = f

			if m.connectForm.State == huh.StateCompleted {
				if m.walletKind.NeedsAddress() {
					m.connectedAddr = tempConnectAddr
					m.addLog("success", fmt.Sprintf("Connected `%s` (%s)", connect.Name(m.walletKind), helpers.ShortenAddr(m.connectedAddr)))
				} else {
					m.connectedMail = tempConnectMail
					m.addLog("success", fmt.Sprintf("Login link sent to `%s`", m.connectedMail))
				}
				m.connectForm = nil
				m.active = screenOrder
				m.createOrderForm()
				return m, m.maybeLoadBalances()
			}

			if m.connectForm.State == huh.StateAborted {
				m.connectForm = nil
				m.active = screenTiles
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle order form updates
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.active == screenOrder && m.orderForm != nil && !m.creatingOrder {
		switch keyMsg.String() {
		case "esc":
			m.orderForm = nil
			m.active = screenConnect
			m.createConnectForm()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}

		form, cmd := m.orderForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.orderForm = f

			if m.orderForm.State == huh.StateCompleted {
				m.finalParams[params.AmountIn] = tempOrderAmount
				m.orderForm = nil
				m.orderErr = ""
				m.creatingOrder = true
				m.addLog("info", fmt.Sprintf("Creating %s order for %s", m.finalParams.Get(params.Service), tempOrderAmount))
				return m, createOrder(m.finalParams)
			}

			if m.orderForm.State == huh.StateAborted {
				m.orderForm = nil
				m.active = screenConnect
				m.createConnectForm()
				return m, nil
			}
		}
		return m, cmd
	}

	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Create logger that writes to our buffer
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "",
		})
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", fmt.Sprintf("Logger enabled (variant `%s`)", m.variant))
		return m, nil

	case rpcConnectedMsg:
		m.rpcConnecting = false
		if msg.err != nil {
			m.ethClient = nil
			m.rpcConnected = false
			m.addLog("error", fmt.Sprintf("RPC connection failed: `%s`", msg.err.Error()))
		} else {
			m.ethClient = msg.client
			m.rpcConnected = true
			m.addLog("success", fmt.Sprintf("RPC connected to `%s`", msg.client.URL))
			// Balances may have been skipped while disconnected
			if m.active == screenOrder && m.balances.Address == "" {
				return m, m.maybeLoadBalances()
			}
		}
		return m, nil

	case balancesLoadedMsg:
		m.loadingBalances = false
		m.balances = msg.b
		m.balancesAt = time.Now()
		if msg.b.ErrMessage != "" {
			m.addLog("error", fmt.Sprintf("Balance load for `%s`: %s", helpers.ShortenAddr(msg.b.Address), msg.b.ErrMessage))
		} else {
			m.addLog("success", fmt.Sprintf("Loaded balances for `%s`", helpers.ShortenAddr(msg.b.Address)))
		}
		return m, nil

	case orderCreatedMsg:
		m.creatingOrder = false
		if m.active != screenOrder {
			// The user backed out while the order was in flight.
			return m, nil
		}
		if msg.err != nil {
			m.orderErr = msg.err.Error()
			m.addLog("error", "Order creation failed: "+msg.err.Error())
			m.createOrderForm()
			return m, nil
		}
		m.route = msg.route
		m.active = screenPayment
		m.addLog("success", fmt.Sprintf("Order `%s` created", msg.route.ID))
		return m, nil

	case clipboardCopiedMsg:
		m.copied = true
		return m, clearClipboardFeedback()

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		if m.logEnabled {
			m.logViewport.Width = max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches key presses per screen
func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "l":
		m.logEnabled = !m.logEnabled
		if m.logEnabled && !m.logReady {
			return m, tea.Batch(initLogViewport(), m.logSpinner.Tick)
		}
		return m, nil
	}

	switch m.active {

	case screenTiles:
		visible := m.visibleTiles()
		cols := helpers.Max(1, helpers.Min(4, (m.w-4)/22))
		switch key {
		case "left", "h":
			if m.selIdx > 0 {
				m.selIdx--
			}
		case "right", "tab":
			if m.selIdx < len(visible)-1 {
				m.selIdx++
			}
		case "up", "k":
			if m.selIdx-cols >= 0 {
				m.selIdx -= cols
			}
		case "down", "j":
			if m.selIdx+cols < len(visible) {
				m.selIdx += cols
			}
		case "enter":
			if m.selIdx >= 0 && m.selIdx < len(visible) {
				m.notice = ""
				return m, m.selectTile(visible[m.selIdx].ID)
			}
		case "esc":
			if len(m.trail) == 0 {
				return m, tea.Quit
			}
			m.goBack()
		}
		return m, nil

	case screenConnect:
		// Only reachable with a blocked wallet; the form intercepts keys
		// otherwise.
		switch key {
		case "esc", "enter":
			m.walletBlocked = false
			m.active = screenTiles
		}
		return m, nil

	case screenOrder:
		if key == "esc" {
			m.orderForm = nil
			m.active = screenConnect
			m.createConnectForm()
		}
		return m, nil

	case screenPayment:
		switch key {
		case "c":
			m.addLog("info", "Copied payment URI to clipboard")
			return m, copyToClipboard(m.route.URI)
		case "enter":
			if s := m.finalParams.Get(params.Service); s != "" {
				m.closeReason = s
			}
			return m, tea.Quit
		case "esc":
			m.active = screenOrder
			m.createOrderForm()
		}
		return m, nil

	case screenSupport:
		switch key {
		case "esc", "enter":
			m.resetToRoot()
			m.active = screenTiles
		}
		return m, nil
	}

	return m, nil
}

package main

import (
	"strings"
	"time"

	"crypto-widget-tui/config"
	"crypto-widget-tui/flow"
	"crypto-widget-tui/params"
	"crypto-widget-tui/rpc"
	"crypto-widget-tui/styles"
	"crypto-widget-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// screen identifies the active widget screen.
type screen int

const (
	screenTiles screen = iota
	screenConnect
	screenOrder
	screenPayment
	screenSupport
)

// closeReasonCancel is emitted when the user leaves without completing an
// order; a completed order emits the service type instead.
const closeReasonCancel = "cancel"

// maxFlowDepth caps how many tile selections one walk may chain. Trees
// are acyclic by construction today, but a misconfigured tree must not
// trap the user in an endless walk.
const maxFlowDepth = 32

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	active screen

	// feature tree navigation
	tree    *flow.Tree
	variant flow.Variant
	acc     flow.Accumulator
	trail   []string // tile ids selected so far
	selIdx  int      // selected tile within the visible slice

	// inline notice for recoverable selection errors
	notice     string
	noticeTime time.Time

	// deep-link overrides and boundary fields from the opening query
	ext params.External

	// wallet connection
	walletKind    wallet.Kind
	walletBlocked bool // compatibility table rejected kind+chain
	connectForm   *huh.Form
	connectedAddr string
	connectedMail string
	finalParams   params.Params

	// order state
	orderForm       *huh.Form
	route           orderRoute
	orderErr        string
	creatingOrder   bool
	loadingBalances bool
	balances        rpc.AccountBalances
	balancesAt      time.Time

	// rpc connection for EVM balance lookups
	rpcURL        string
	ethClient     *rpc.Client
	rpcConnected  bool
	rpcConnecting bool

	// clipboard feedback on the payment screen
	copied bool

	// close/redirect event, emitted by main after the program exits
	closeReason string
	redirectURI string

	spin spinner.Model

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// -------------------- INIT --------------------

// newModel creates the initial model for one widget session
func newModel(cfg config.Config, tree *flow.Tree, variant flow.Variant, ext params.External) model {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20) // resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	redirect := ext.Redirect
	if redirect == "" {
		redirect = cfg.RedirectURI
	}

	return model{
		active:        screenTiles,
		tree:          tree,
		variant:       variant,
		acc:           flow.Start(tree),
		ext:           ext,
		rpcURL:        cfg.ActiveRPC(),
		rpcConnecting: cfg.ActiveRPC() != "",
		closeReason:   closeReasonCancel,
		redirectURI:   redirect,
		spin:          sp,
		logEnabled:    cfg.Logger,
		logViewport:   vp,
		logBuffer:     &strings.Builder{},
		logSpinner:    logSpin,
	}
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	if m.rpcURL != "" {
		cmds = append(cmds, connectRPC(m.rpcURL))
	}
	return tea.Batch(cmds...)
}

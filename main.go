package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"crypto-widget-tui/config"
	"crypto-widget-tui/flow"
	"crypto-widget-tui/params"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// -------------------- MAIN --------------------

// closeEvent is printed on exit so an embedding page can react to the
// outcome of the session.
type closeEvent struct {
	Reason   string `json:"reason"`
	RouteID  string `json:"routeId,omitempty"`
	Redirect string `json:"redirectUri,omitempty"`
}

func main() {
	variantFlag := flag.String("variant", "", "feature tree variant (default, bitcoin-only, alby)")
	queryFlag := flag.String("query", "", "deep-link query string, e.g. 'service=buy&blockchain=Bitcoin'")
	flag.Parse()

	homeDir, _ := os.UserHomeDir()
	configPath := filepath.Join(homeDir, ".crypto-widget-config.json")
	cfg := config.LoadOrCreate(configPath)

	// RPC URL from environment overrides the config
	if env := strings.TrimSpace(os.Getenv("ETH_RPC_URL")); env != "" {
		cfg.RPCURLs = []config.RPCUrl{{Name: "Env", URL: env, Active: true}}
	}

	variant := resolveVariant(cfg.Variant, *variantFlag)

	rawQuery := cfg.Query
	if env := os.Getenv("WIDGET_QUERY"); env != "" {
		rawQuery = env
	}
	if *queryFlag != "" {
		rawQuery = *queryFlag
	}

	ext, err := params.ParseQuery(rawQuery)
	if err != nil {
		log.Fatal("invalid query string", "query", rawQuery, "err", err)
	}

	trees := flow.Trees()
	if err := flow.ValidateAll(trees); err != nil {
		log.Fatal("invalid feature tree", "err", err)
	}

	tree, ok := trees[variant]
	if !ok {
		log.Fatal("unknown variant", "variant", variant)
	}

	m := newModel(cfg, tree, variant, ext)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	// Emit the close/redirect event for the embedding side.
	fm, ok := final.(*model)
	if !ok {
		return
	}
	event := closeEvent{Reason: fm.closeReason, Redirect: redirectWithParams(fm.redirectURI, fm.closeReason, fm.finalParams)}
	if fm.closeReason != closeReasonCancel {
		event.RouteID = fm.route.ID
	}
	out, _ := json.Marshal(event)
	fmt.Println(string(out))
}

// resolveVariant picks the feature tree variant. The flag wins over the
// config file; an old or hand-edited config without a variant falls back
// to the default tree instead of failing at startup.
func resolveVariant(fromConfig, fromFlag string) flow.Variant {
	if fromFlag != "" {
		return flow.Variant(fromFlag)
	}
	if fromConfig == "" {
		return flow.VariantDefault
	}
	return flow.Variant(fromConfig)
}

// redirectWithParams appends the close reason and the final parameter set
// to a configured redirect URI.
func redirectWithParams(redirect, reason string, p params.Params) string {
	if redirect == "" {
		return ""
	}
	u, err := url.Parse(redirect)
	if err != nil {
		return redirect
	}
	q := u.Query()
	q.Set("reason", reason)
	for k, v := range p {
		q.Set(string(k), v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

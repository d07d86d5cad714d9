package main

import (
	"strings"
	"testing"

	"crypto-widget-tui/config"
	"crypto-widget-tui/flow"
	"crypto-widget-tui/params"
	"crypto-widget-tui/wallet"
)

func testModel(t *testing.T, variant flow.Variant, ext params.External) *model {
	t.Helper()
	trees := flow.Trees()
	tree, ok := trees[variant]
	if !ok {
		t.Fatalf("variant %q not shipped", variant)
	}
	cfg := config.DefaultConfig()
	cfg.RPCURLs = nil // keep Init side effects out of navigation tests
	m := newModel(cfg, tree, variant, ext)
	return &m
}

func TestSelectTileWalksToWallet(t *testing.T) {
	m := testModel(t, flow.VariantDefault, params.External{})

	m.selectTile("buy")
	if m.acc.Page != "buy" {
		t.Fatalf("page = %q, want buy", m.acc.Page)
	}

	m.selectTile("bitcoin")
	if m.acc.Page != "wallets" {
		t.Fatalf("page = %q, want wallets", m.acc.Page)
	}
	if got := m.acc.Params.Get(params.Blockchain); got != "Bitcoin" {
		t.Fatalf("blockchain = %q, want Bitcoin", got)
	}

	m.selectTile("cli")
	if m.active != screenConnect {
		t.Fatalf("active = %v, want connect screen", m.active)
	}
	if m.walletKind != wallet.Cli {
		t.Fatalf("wallet = %v, want Cli", m.walletKind)
	}
	if m.walletBlocked {
		t.Fatal("cli wallet should pass the compatibility check on Bitcoin")
	}
	if got := m.finalParams.Get(params.Service); got != params.ServiceBuy {
		t.Fatalf("service = %q, want buy", got)
	}
}

func TestSelectTileBlocksIncompatibleWallet(t *testing.T) {
	m := testModel(t, flow.VariantDefault, params.External{})
	m.selectTile("buy")
	m.selectTile("bitcoin")

	// Alby is on the allow-list here but only serves Lightning.
	m.selectTile("alby")
	if m.active != screenConnect || !m.walletBlocked {
		t.Fatalf("active = %v blocked = %v, want blocked connect screen", m.active, m.walletBlocked)
	}
	if m.connectForm != nil {
		t.Fatal("blocked wallet must not get a connection form")
	}
}

func TestBlockchainOverrideBlocksWallet(t *testing.T) {
	// Alby passes on the path's Lightning, but the deep link moves the
	// order to Bitcoin, which Alby does not serve.
	ext, err := params.ParseQuery("blockchain=Bitcoin")
	if err != nil {
		t.Fatal(err)
	}
	m := testModel(t, flow.VariantDefault, ext)
	m.selectTile("buy")
	m.selectTile("lightning")

	m.selectTile("alby")
	if m.active != screenConnect || !m.walletBlocked {
		t.Fatalf("active = %v blocked = %v, want blocked connect screen", m.active, m.walletBlocked)
	}
	if m.connectForm != nil {
		t.Fatal("blocked wallet must not get a connection form")
	}
	if got := m.finalParams.Get(params.Blockchain); got != "Bitcoin" {
		t.Fatalf("blockchain = %q, want override Bitcoin", got)
	}
}

func TestSelectTileDisabledSetsNotice(t *testing.T) {
	m := testModel(t, flow.VariantDefault, params.External{})
	m.selectTile("buy")

	m.selectTile("polygon")
	if m.acc.Page != "buy" {
		t.Fatalf("disabled tile advanced to %q", m.acc.Page)
	}
	if m.notice == "" {
		t.Fatal("expected an inline notice for a disabled tile")
	}
}

func TestGoBackRecomputesState(t *testing.T) {
	m := testModel(t, flow.VariantDefault, params.External{})
	m.selectTile("buy")
	m.selectTile("bitcoin")

	m.goBack()
	if m.acc.Page != "buy" {
		t.Fatalf("page after back = %q, want buy", m.acc.Page)
	}
	if got := m.acc.Params.Get(params.Blockchain); got != "" {
		t.Fatalf("blockchain should be dropped after back, got %q", got)
	}

	m.goBack()
	if m.acc.Page != m.tree.Root {
		t.Fatalf("page after back = %q, want root %q", m.acc.Page, m.tree.Root)
	}
	m.goBack() // at root, must be a no-op
	if m.acc.Page != m.tree.Root {
		t.Fatalf("back at root moved to %q", m.acc.Page)
	}
}

func TestURLOverridesWinInFinalParams(t *testing.T) {
	ext, err := params.ParseQuery("asset-out=ETH&amount-in=0.5")
	if err != nil {
		t.Fatal(err)
	}
	m := testModel(t, flow.VariantDefault, ext)
	m.selectTile("buy")
	m.selectTile("bitcoin") // tree preselects asset-out=BTC
	m.selectTile("cli")

	if got := m.finalParams.Get(params.AssetOut); got != "ETH" {
		t.Fatalf("asset-out = %q, want override ETH", got)
	}
	if got := m.finalParams.Get(params.AmountIn); got != "0.5" {
		t.Fatalf("amount-in = %q, want 0.5", got)
	}
}

func TestResolveVariant(t *testing.T) {
	if got := resolveVariant("", ""); got != flow.VariantDefault {
		t.Fatalf("empty config variant = %q, want default", got)
	}
	if got := resolveVariant("alby", ""); got != flow.Variant("alby") {
		t.Fatalf("config variant = %q, want alby", got)
	}
	if got := resolveVariant("alby", "bitcoin-only"); got != flow.Variant("bitcoin-only") {
		t.Fatalf("flag should win, got %q", got)
	}
}

func TestRedirectWithParams(t *testing.T) {
	got := redirectWithParams("https://example.com/done", "buy", params.Params{
		params.Blockchain: "Bitcoin",
	})
	if !strings.Contains(got, "reason=buy") || !strings.Contains(got, "blockchain=Bitcoin") {
		t.Fatalf("redirect = %q", got)
	}

	if got := redirectWithParams("", "buy", nil); got != "" {
		t.Fatalf("empty redirect produced %q", got)
	}
}

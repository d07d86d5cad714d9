package flow

import (
	"testing"

	"crypto-widget-tui/params"
	"crypto-widget-tui/wallet"
)

func TestAllVariantsValidate(t *testing.T) {
	trees := Trees()
	if len(trees) == 0 {
		t.Fatal("no tree variants registered")
	}
	if err := ValidateAll(trees); err != nil {
		t.Fatalf("ValidateAll failed: %v", err)
	}
	for _, variant := range []Variant{VariantDefault, VariantBitcoinOnly, VariantAlby} {
		if trees[variant] == nil {
			t.Errorf("variant %q missing from registry", variant)
		}
	}
}

func TestValidateRejectsDanglingPageRef(t *testing.T) {
	tree := &Tree{
		Root: "home",
		Pages: []Page{
			{ID: "home", Tiles: []Tile{
				{ID: "buy", Next: &Next{Page: "missing"}},
			}},
		},
	}
	if err := tree.Validate(); err == nil {
		t.Error("expected validation error for dangling page reference")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	dupPages := &Tree{
		Root: "home",
		Pages: []Page{
			{ID: "home"},
			{ID: "home"},
		},
	}
	if err := dupPages.Validate(); err == nil {
		t.Error("expected validation error for duplicate page ids")
	}

	dupTiles := &Tree{
		Root: "home",
		Pages: []Page{
			{ID: "home", Tiles: []Tile{{ID: "buy"}, {ID: "buy"}}},
		},
	}
	if err := dupTiles.Validate(); err == nil {
		t.Error("expected validation error for duplicate tile ids")
	}
}

func TestValidateRejectsMissingRoot(t *testing.T) {
	tree := &Tree{Root: "home", Pages: []Page{{ID: "other"}}}
	if err := tree.Validate(); err == nil {
		t.Error("expected validation error for missing root page")
	}
}

func TestValidateRejectsConflictingTileBehavior(t *testing.T) {
	tree := &Tree{
		Root: "home",
		Pages: []Page{
			{ID: "home", Tiles: []Tile{
				{
					ID:     "broken",
					Next:   &Next{Page: "home"},
					Wallet: staticWallet(wallet.Mail),
				},
			}},
		},
	}
	if err := tree.Validate(); err == nil {
		t.Error("expected validation error for tile with both next and wallet")
	}
}

func TestValidateRejectsUnknownAllowListEntry(t *testing.T) {
	tree := &Tree{
		Root: "home",
		Pages: []Page{
			{ID: "home", Tiles: []Tile{
				{ID: "buy", Next: &Next{Page: "wallets", Tiles: []string{"nope"}}},
			}},
			{ID: "wallets", Tiles: []Tile{{ID: "cli", Wallet: staticWallet(wallet.Cli)}}},
		},
	}
	if err := tree.Validate(); err == nil {
		t.Error("expected validation error for allow-list naming a missing tile")
	}
}

// Every selectable tile reachable through the shipped trees must resolve
// cleanly, and the selection graph of each variant must bottom out within
// a few hops. Hardware wallet tiles must derive to a kind that passes the
// compatibility guard for the blockchain their path selected; other
// mismatches (e.g. alby offered on a Bitcoin path) are expected and left
// to the presentation-layer filter.
func TestShippedTreesResolveCleanly(t *testing.T) {
	for variant, tree := range Trees() {
		walkTiles(t, tree, variant, "", Accumulator{Page: tree.Root, Params: params.Params{}}, 0)
	}
}

func walkTiles(t *testing.T, tree *Tree, variant Variant, fromPage string, acc Accumulator, depth int) {
	t.Helper()
	if depth > 8 {
		t.Fatalf("variant %q: selection graph deeper than expected at page %q", variant, acc.Page)
	}

	page, ok := tree.page(acc.Page)
	if !ok {
		t.Fatalf("variant %q: page %q missing", variant, acc.Page)
	}

	for _, tile := range page.Tiles {
		if tile.Disabled {
			continue
		}
		if acc.Visible != nil && !contains(acc.Visible, tile.ID) {
			continue
		}
		res, err := ResolveStep(tree, acc, tile.ID)
		if err != nil {
			t.Errorf("variant %q: page %q tile %q: %v", variant, acc.Page, tile.ID, err)
			continue
		}
		switch res.Status {
		case WalletRequired:
			if res.Wallet == "" {
				t.Errorf("variant %q: page %q tile %q resolved to empty wallet kind", variant, acc.Page, tile.ID)
			}
			if fromPage == "hw-wallets" || acc.Page == "hw-wallets" {
				if err := GuardWallet(res.Wallet, res.Params); err != nil {
					t.Errorf("variant %q: page %q tile %q: %v", variant, acc.Page, tile.ID, err)
				}
			}
		case Advance:
			walkTiles(t, tree, variant, acc.Page, Accumulator{
				Page:    res.NextPage,
				Visible: res.VisibleTiles,
				Params:  res.Params,
			}, depth+1)
		}
	}
}

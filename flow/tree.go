// Package flow declares the navigable feature tree of the widget and the
// resolver that turns a sequence of tile selections into a target screen,
// preselected query parameters and an optional wallet requirement.
package flow

import (
	"fmt"

	"crypto-widget-tui/params"
	"crypto-widget-tui/wallet"
)

// Tree is the full selection graph for one deployment variant. Trees are
// built once at startup, validated, and never mutated afterwards.
type Tree struct {
	Root  string
	Pages []Page
}

// Page is one selection screen, identified by a unique id.
type Page struct {
	ID    string
	Tiles []Tile
}

// Next links a tile to another page. Tiles optionally narrows which of the
// target page's tiles stay selectable; Options are query defaults merged
// into the accumulated params on advance.
type Next struct {
	Page    string
	Tiles   []string
	Options params.Params
}

// Wallet is a wallet requirement, either a fixed kind or one derived from
// the params accumulated so far (e.g. "ledger" resolving to the BTC or the
// EVM integration depending on the chosen blockchain).
type Wallet struct {
	Kind   wallet.Kind
	Derive func(params.Params) wallet.Kind
}

// Resolve produces the concrete wallet kind for the given params.
func (w *Wallet) Resolve(p params.Params) wallet.Kind {
	if w.Derive != nil {
		return w.Derive(p)
	}
	return w.Kind
}

// Tile is a single selectable option on a page. At selection time exactly
// one of Disabled, Next or Wallet determines its behavior; a tile with
// none of them is an explicit terminal leaf.
type Tile struct {
	ID       string
	Img      string
	Disabled bool
	Next     *Next
	Wallet   *Wallet
}

// PageByID looks up a page by id. The UI uses it to fetch the page the
// accumulator currently points at.
func (t *Tree) PageByID(id string) (*Page, bool) {
	return t.page(id)
}

// page looks up a page by id.
func (t *Tree) page(id string) (*Page, bool) {
	for i := range t.Pages {
		if t.Pages[i].ID == id {
			return &t.Pages[i], true
		}
	}
	return nil, false
}

// tile looks up a tile on a page.
func (p *Page) tile(id string) (*Tile, bool) {
	for i := range p.Tiles {
		if p.Tiles[i].ID == id {
			return &p.Tiles[i], true
		}
	}
	return nil, false
}

// Validate checks the structural invariants of the tree: the root page
// exists, page ids are unique, tile ids are unique within their page, a
// tile carries at most one behavior, and every next reference resolves to
// an existing page. A failure rejects the whole tree; it indicates a
// configuration bug, not a runtime condition.
func (t *Tree) Validate() error {
	if _, ok := t.page(t.Root); !ok {
		return fmt.Errorf("root page %q not found", t.Root)
	}

	seenPages := make(map[string]bool, len(t.Pages))
	for _, p := range t.Pages {
		if seenPages[p.ID] {
			return fmt.Errorf("duplicate page id %q", p.ID)
		}
		seenPages[p.ID] = true

		seenTiles := make(map[string]bool, len(p.Tiles))
		for _, tile := range p.Tiles {
			if seenTiles[tile.ID] {
				return fmt.Errorf("page %q: duplicate tile id %q", p.ID, tile.ID)
			}
			seenTiles[tile.ID] = true

			behaviors := 0
			if tile.Disabled {
				behaviors++
			}
			if tile.Next != nil {
				behaviors++
			}
			if tile.Wallet != nil {
				behaviors++
			}
			if behaviors > 1 {
				return fmt.Errorf("page %q: tile %q has conflicting behaviors", p.ID, tile.ID)
			}

			if tile.Next == nil {
				continue
			}
			target, ok := t.page(tile.Next.Page)
			if !ok {
				return fmt.Errorf("page %q: tile %q links to unknown page %q", p.ID, tile.ID, tile.Next.Page)
			}
			for _, allowed := range tile.Next.Tiles {
				if _, ok := target.tile(allowed); !ok {
					return fmt.Errorf("page %q: tile %q allow-list names unknown tile %q on page %q", p.ID, tile.ID, allowed, target.ID)
				}
			}
		}
	}
	return nil
}

// ValidateAll validates every tree in a variant registry.
func ValidateAll(trees map[Variant]*Tree) error {
	for variant, tree := range trees {
		if err := tree.Validate(); err != nil {
			return fmt.Errorf("tree %q: %w", variant, err)
		}
	}
	return nil
}

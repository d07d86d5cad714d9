package flow

import (
	"errors"
	"fmt"

	"crypto-widget-tui/params"
	"crypto-widget-tui/wallet"
)

// Resolution errors. All of them are recoverable by the caller; the widget
// treats them as "this navigation state is invalid" and resets to the root
// page instead of crashing.
var (
	ErrUnknownPage    = errors.New("unknown page")
	ErrUnknownTile    = errors.New("unknown tile")
	ErrTileDisabled   = errors.New("tile disabled")
	ErrTileNotVisible = errors.New("tile not visible")

	// ErrUnsupportedWalletForChain is returned by GuardWallet, not by the
	// resolver itself; callers check it before starting a connection.
	ErrUnsupportedWalletForChain = errors.New("wallet not supported on blockchain")
)

// Status tags the outcome of one resolution step.
type Status int

const (
	// Advance moves the user to another page of tiles.
	Advance Status = iota
	// WalletRequired ends the walk with a concrete wallet to connect.
	WalletRequired
	// Terminal ends the walk with no wallet requirement.
	Terminal
)

// StepResult is the outcome of resolving one tile selection.
type StepResult struct {
	Status Status

	// NextPage and VisibleTiles are set on Advance. A nil VisibleTiles
	// leaves every tile of the next page selectable.
	NextPage     string
	VisibleTiles []string

	// Wallet is set on WalletRequired.
	Wallet wallet.Kind

	// Params are the query options merged along the path so far.
	Params params.Params
}

// Accumulator is the transient state carried along one navigation
// sequence: the page the user is on, the allow-list a previous step may
// have imposed, and the query options merged so far. It is created fresh
// per sequence and discarded at the terminal result.
type Accumulator struct {
	Page    string
	Visible []string
	Params  params.Params
}

// Start returns a fresh accumulator at the tree's root page.
func Start(t *Tree) Accumulator {
	return Accumulator{Page: t.Root, Params: params.Params{}}
}

// ResolveStep resolves the selection of tileID on the accumulator's page.
// It is a pure function: no shared state is read or written, and identical
// inputs yield identical results.
func ResolveStep(t *Tree, acc Accumulator, tileID string) (StepResult, error) {
	page, ok := t.page(acc.Page)
	if !ok {
		return StepResult{}, fmt.Errorf("%w: %q", ErrUnknownPage, acc.Page)
	}

	// The allow-list is checked before tile lookup so that a tile hidden
	// by a previous step reports not-visible rather than unknown.
	if acc.Visible != nil && !contains(acc.Visible, tileID) {
		return StepResult{}, fmt.Errorf("%w: %q on page %q", ErrTileNotVisible, tileID, page.ID)
	}

	tile, ok := page.tile(tileID)
	if !ok {
		return StepResult{}, fmt.Errorf("%w: %q on page %q", ErrUnknownTile, tileID, page.ID)
	}
	if tile.Disabled {
		return StepResult{}, fmt.Errorf("%w: %q on page %q", ErrTileDisabled, tileID, page.ID)
	}

	switch {
	case tile.Next != nil:
		merged := acc.Params.Clone().Apply(tile.Next.Options)
		return StepResult{
			Status:       Advance,
			NextPage:     tile.Next.Page,
			VisibleTiles: tile.Next.Tiles,
			Params:       merged,
		}, nil

	case tile.Wallet != nil:
		return StepResult{
			Status: WalletRequired,
			Wallet: tile.Wallet.Resolve(acc.Params),
			Params: acc.Params.Clone(),
		}, nil

	default:
		return StepResult{Status: Terminal, Params: acc.Params.Clone()}, nil
	}
}

// ResolvePath folds ResolveStep over a selection sequence starting at
// rootPage, short-circuiting on the first error or the first non-advance
// result. Trailing tile ids after a terminal result are ignored.
func ResolvePath(t *Tree, rootPage string, tileIDs []string) (StepResult, error) {
	acc := Accumulator{Page: rootPage, Params: params.Params{}}
	res := StepResult{Status: Advance, NextPage: rootPage, Params: params.Params{}}

	for _, id := range tileIDs {
		var err error
		res, err = ResolveStep(t, acc, id)
		if err != nil {
			return StepResult{}, err
		}
		if res.Status != Advance {
			return res, nil
		}
		acc = Accumulator{Page: res.NextPage, Visible: res.VisibleTiles, Params: res.Params}
	}
	return res, nil
}

// GuardWallet rejects a resolved wallet requirement whose kind cannot
// serve the blockchain accumulated on the path. The resolver never runs
// this check itself; the caller performs it on a WalletRequired result
// before acting on it.
func GuardWallet(kind wallet.Kind, p params.Params) error {
	chain := p.Get(params.Blockchain)
	if chain == "" {
		return nil
	}
	if !wallet.IsSupported(kind, wallet.Blockchain(chain)) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedWalletForChain, kind, chain)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

package main

import (
	"crypto-widget-tui/rpc"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// rpcConnectedMsg contains result of RPC connection attempt
type rpcConnectedMsg struct {
	client *rpc.Client
	err    error
}

// balancesLoadedMsg contains the connected account's balances
type balancesLoadedMsg struct {
	b rpc.AccountBalances
}

// orderCreatedMsg contains the payment route for a confirmed order
type orderCreatedMsg struct {
	route orderRoute
	err   error
}

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{}

// clearCopiedMsg clears the clipboard feedback after a delay
type clearCopiedMsg struct{}

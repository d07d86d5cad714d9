package main

import (
	"crypto-widget-tui/styles"
)

// -------------------- THEME (Lip Gloss) --------------------
// Short aliases for the shared styles package

var (
	cBorder  = styles.CBorder
	cMuted   = styles.CMuted
	cText    = styles.CText
	cAccent  = styles.CAccent
	cAccent2 = styles.CAccent2
	cWarn    = styles.CWarn

	appStyle   = styles.AppStyle
	titleStyle = styles.TitleStyle
	panelStyle = styles.PanelStyle
)

// Package web holds the browser page that renders the board.
package web

import _ "embed"

//go:embed index.html
var Index []byte

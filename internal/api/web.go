package api

import _ "embed"

// Landing page served at the root path.
//
//go:embed index.html
var indexHTML []byte

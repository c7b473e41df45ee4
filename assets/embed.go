package assets

import "embed"

// AssetsFS holds static files served under /assets/.
//
//go:embed css img
var AssetsFS embed.FS

package site

import (
	"embed"
	"io/fs"
)

//go:embed assets
var embeddedAssets embed.FS

// assetFiles exposes the embedded static files rooted at the assets dir.
func assetFiles() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Unreachable: the directory is embedded at compile time.
		panic(err)
	}
	return sub
}

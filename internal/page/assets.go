package page

import (
	"embed"
	"io/fs"
)

//go:embed assets/*
var assets embed.FS

// Assets is the stylesheet and script the shell links under /assets/.
func Assets() (fs.FS, error) {
	return fs.Sub(assets, "assets")
}

package theme

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets holds the theme's static files, rooted so that paths match their
// location in the output directory (e.g. "css/site.css").
var Assets fs.FS = mustSub(static, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

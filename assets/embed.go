// assets/embed.go
//
// Embeds the browser client served at "/".

package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static returns the client files rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// the directory is embedded at build time; this cannot fail
		panic(err)
	}
	return sub
}

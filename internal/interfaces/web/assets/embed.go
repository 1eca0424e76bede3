package assets

import "embed"

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded stylesheet tree rooted at "static".
func StaticFS() embed.FS {
	return staticFS
}

package domain

import "strings"

// IconSourceExt is the extension of text-encoded icon files in the icon pack.
const IconSourceExt = ".b64"

// IconResult reports what happened to one icon source.
type IconResult struct {
	Source  string // relative to the icon pack
	Target  string // relative to the workspace root
	Changed bool
}

// IconTarget maps a pack-relative source ("ios/AppIcon.png.b64") to the
// root-relative binary it materializes ("ios/AppIcon.png").
func IconTarget(source string) string {
	return strings.TrimSuffix(source, IconSourceExt)
}

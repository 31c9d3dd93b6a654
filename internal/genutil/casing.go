package genutil

import "strings"

// Hyphenate rewrites a call's public, underscore-separated name into the
// shell-facing form, e.g. "blockdev_getsize64" -> "blockdev-getsize64".
func Hyphenate(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

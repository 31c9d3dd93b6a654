package genutil

import "regexp"

var guestfsRef = regexp.MustCompile(`C<guestfs_([A-Za-z0-9_]+)>`)

// RewriteShellRefs rewrites cross-references to the client API, written in
// the long description as C<guestfs_NAME>, into shell-facing
// cross-references C<NAME>, for the shell manual page and per-command help
// text. Every other occurrence of the lightweight markup is left alone.
func RewriteShellRefs(longDesc string) string {
	return guestfsRef.ReplaceAllString(longDesc, "C<$1>")
}

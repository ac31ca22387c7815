// Package file wraps the file system for testability.
package file

import (
	"bytes"

	"github.com/spf13/afero"

	"github.com/hikarikumo/cloudflare-acme-hook/internal/pp"
)

// FS is the file system accessed by [ReadString].
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// ReadString reads the content of the file at path and trims the space around it.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	body, err := afero.ReadFile(FS, path)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	return string(bytes.TrimSpace(body)), true
}

// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package termcfg

import (
	"os"
	"path/filepath"
	"strings"
)

func envOr(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}

func joinPath(elem ...string) string {
	return filepath.Join(elem...)
}

func splitPathList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, string(os.PathListSeparator))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// joinXDG resolves an XDG_CONFIG_HOME-style base: the override if set and
// absolute, otherwise home/.config, joined with name.
func joinXDG(override, home, name string) string {
	base := override
	if base == "" || !filepath.IsAbs(base) {
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, name)
}

package watcher

import (
	"path/filepath"
)

// matchesPath reports whether an event path names the watched file,
// either directly or through a symlink.
func matchesPath(target, name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if abs == target {
		return true
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return false
	}
	if resolved == target {
		return true
	}
	if realTarget, err := filepath.EvalSymlinks(target); err == nil {
		return resolved == realTarget
	}
	return false
}

// Package config resolves nf settings from viper and expands file paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and then $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// EnvKeyReplacer maps nested keys such as "storage.backend" onto environment
// names like NF_STORAGE_BACKEND.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

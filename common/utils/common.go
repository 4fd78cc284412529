package utils

import (
	"os"
	"os/user"
	"path"
	"strings"
)

func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	return path.Join(HomeDir(), strings.TrimPrefix(p[1:], "/"))
}

// FileExists reports whether p names an existing regular file
func FileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

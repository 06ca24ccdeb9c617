//go:build !windows

package locale

import "os"

func systemLanguages() []string {
	var langs []string
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			langs = append(langs, v)
		}
	}
	return langs
}

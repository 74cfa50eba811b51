package utils

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

// CheckFileExt returns the extension of fileName without the dot and whether
// it is one of valid. The comparison ignores case.
func CheckFileExt(fileName string, valid []string) (string, bool) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return "", false
	}
	ext = ext[1:]
	return ext, slices.Contains(valid, strings.ToLower(ext))
}

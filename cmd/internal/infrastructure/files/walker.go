// Package files finds input documents and writes the report file.
package files

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const documentExt = ".xml"

// FindDocuments returns every non-directory entry under root whose name ends
// in ".xml", in lexical walk order. The suffix match is case-sensitive.
func FindDocuments(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), documentExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// CheckReadableDir fails fast when root cannot be listed.
func CheckReadableDir(root string) error {
	f, err := os.Open(root)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.ReadDir(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

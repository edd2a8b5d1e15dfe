package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

// loadDocument checks path and decodes the site definition it names.
func loadDocument(operation, path string) (*site.Definition, error) {
	if strings.TrimSpace(path) == "" {
		return nil, newCommandError(operation, "reading site definition", fmt.Errorf("file path is required"), "Pass the path of a .json, .yaml or .yml document.")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newCommandError(operation, "resolving "+path, err, "")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, newCommandError(operation, "reading "+path, err, "Check that the file exists.")
	}
	if info.IsDir() {
		return nil, newCommandError(operation, "reading "+path, fmt.Errorf("%s is a directory", abs), "Pass a document file, not a directory.")
	}

	def, err := site.Load(path)
	if err != nil {
		return nil, newCommandError(operation, "parsing "+path, err, "Fix the syntax error reported above.")
	}
	return def, nil
}

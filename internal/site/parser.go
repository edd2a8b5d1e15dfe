package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	siteerrors "github.com/alexisbeaulieu97/siterender/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath picks the format from a file extension. Unrecognised
// extensions fall back to sniffing the content.
func FormatForPath(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return DetectFormat(data)
}

// DetectFormat treats anything starting with '{' as JSON and everything else as YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// IsDocumentPath reports whether the file extension is one Load understands.
func IsDocumentPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads and decodes a site definition from disk.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, siteerrors.NewParseError(path, 0, err)
	}
	return ParseNamed(path, data, FormatForPath(path, data))
}

// Parse decodes a site definition. Section content that cannot be typed does
// not fail decoding; it is kept as UnknownContent.
func Parse(data []byte, format Format) (*Definition, error) {
	return ParseNamed("<input>", data, format)
}

// ParseNamed is Parse with a source name used in error messages.
func ParseNamed(name string, data []byte, format Format) (*Definition, error) {
	var def Definition

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, siteerrors.NewParseError(name, jsonLine(data, err), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, siteerrors.NewParseError(name, extractLine(err), err)
		}
	default:
		return nil, siteerrors.NewParseError(name, 0, fmt.Errorf("unsupported format %q", format))
	}

	return &def, nil
}

// Encode writes a definition in the requested format.
func Encode(def *Definition, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(def, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(def); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func jsonLine(data []byte, err error) int {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return 0
	}
	offset := int(syntaxErr.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

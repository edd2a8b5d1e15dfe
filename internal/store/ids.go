package store

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	siteIDMaxLength      = 64
	randomIDSuffixLength = 8
	randomIDFallback     = "abcdefgh"
)

var (
	siteIDPattern       = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	nonAlphanumericExpr = regexp.MustCompile(`[^a-z0-9]+`)
)

// IDFromPath derives a site id from a document file name.
func IDFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	id := Sanitize(base)
	if id == "" {
		id = "site-" + randomSuffix(randomIDSuffixLength)
	}
	return id
}

// ValidateID ensures id is usable as a record key and a file name.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("site id cannot be empty")
	}
	if len(id) > siteIDMaxLength {
		return fmt.Errorf("site id %q is too long: maximum length is %d characters", id, siteIDMaxLength)
	}
	if !siteIDPattern.MatchString(id) {
		return fmt.Errorf("invalid site id %q: must match %s", id, siteIDPattern.String())
	}
	return nil
}

// Sanitize lowercases name and collapses everything else into dashes.
func Sanitize(name string) string {
	sanitized := nonAlphanumericExpr.ReplaceAllString(strings.ToLower(name), "-")
	sanitized = strings.Trim(sanitized, "-")
	if len(sanitized) > siteIDMaxLength {
		sanitized = strings.Trim(sanitized[:siteIDMaxLength], "-")
	}
	return sanitized
}

func randomSuffix(length int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return randomIDFallback
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf)
}

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Slug prefixes per entity type.
const (
	OrderSlugPrefix    = "ORD"
	ProductSlugPrefix  = "PROD"
	SupplierSlugPrefix = "SUP"
)

// FormatSlug renders a sequence number as a slug, zero-padded to three
// digits. Numbers beyond 999 render at their natural width.
func FormatSlug(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// ParseSlug extracts the sequence number from a slug. A missing prefix or a
// non-numeric suffix is an error; creation calls treat it as fatal.
func ParseSlug(prefix, slug string) (int64, error) {
	if !strings.HasPrefix(slug, prefix) {
		return 0, fmt.Errorf("slug %q does not have prefix %q", slug, prefix)
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(slug, prefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed slug %q: %w", slug, err)
	}
	return n, nil
}

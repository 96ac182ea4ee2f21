package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// fallbackSlug is used when a title normalizes to nothing at all.
const fallbackSlug = "project"

var hyphenRuns = regexp.MustCompile(`-{2,}`)

// NormalizeSlug turns free text into a URL-safe slug: lowercase ASCII with
// diacritics stripped, non-alphanumeric runs collapsed to single hyphens,
// no leading or trailing hyphen.
func NormalizeSlug(input string) string {
	s := slug.Make(input)
	// slug.Make keeps underscores; the slug column only ever holds
	// [a-z0-9] tokens joined by hyphens.
	s = strings.ReplaceAll(s, "_", "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugStore is the uniqueness probe the allocator needs: which project, if
// any, currently holds a candidate slug.
type SlugStore interface {
	FindIDBySlug(slug string) (*uuid.UUID, error)
}

// SlugAllocator derives unique project slugs. The probe loop is a
// best-effort pre-check; the database unique index on slug is the real
// invariant, and callers retry allocation on a duplicate-key insert.
type SlugAllocator struct {
	store SlugStore
}

func NewSlugAllocator(store SlugStore) SlugAllocator {
	return SlugAllocator{store: store}
}

// Allocate normalizes base and suffixes it with -2, -3, ... until no other
// project holds the candidate. A collision with excludeID is not a
// collision, so re-saving a project under its own title keeps its slug.
func (a SlugAllocator) Allocate(base string, excludeID *uuid.UUID) (string, error) {
	clean := NormalizeSlug(base)
	if clean == "" {
		clean = fallbackSlug
	}

	candidate := clean
	for n := 1; ; n++ {
		if n > 1 {
			candidate = fmt.Sprintf("%s-%d", clean, n)
		}

		holder, err := a.store.FindIDBySlug(candidate)
		if err != nil {
			return "", err
		}
		if holder == nil {
			return candidate, nil
		}
		if excludeID != nil && *holder == *excludeID {
			return candidate, nil
		}
	}
}

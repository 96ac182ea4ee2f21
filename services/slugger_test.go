package services

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Café — My App!", "cafe-my-app"},
		{"My App", "my-app"},
		{"  Spaced   Out  ", "spaced-out"},
		{"UPPER case", "upper-case"},
		{"already-a-slug", "already-a-slug"},
		{"under_score", "under-score"},
		{"v2.0 release", "v2-0-release"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := NormalizeSlug(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Regexp(t, slugShape, got)
		})
	}
}

func TestNormalizeSlugShapeHolds(t *testing.T) {
	inputs := []string{
		"!!!weird???", "multiple---hyphens", "tab\tand\nnewline",
		"mixed 123 Digits", "Ünïcödé Ëverywhere", "trailing dash-",
	}
	for _, input := range inputs {
		got := NormalizeSlug(input)
		if got == "" {
			continue
		}
		assert.Regexp(t, slugShape, got, "input %q", input)
	}
}

type memorySlugStore map[string]uuid.UUID

func (m memorySlugStore) FindIDBySlug(slug string) (*uuid.UUID, error) {
	if id, ok := m[slug]; ok {
		return &id, nil
	}
	return nil, nil
}

func TestAllocateReturnsBaseWhenFree(t *testing.T) {
	allocator := NewSlugAllocator(memorySlugStore{})

	got, err := allocator.Allocate("My App", nil)
	require.NoError(t, err)
	assert.Equal(t, "my-app", got)
}

func TestAllocateSuffixesOnCollision(t *testing.T) {
	store := memorySlugStore{
		"my-app":   uuid.New(),
		"my-app-2": uuid.New(),
	}
	allocator := NewSlugAllocator(store)

	got, err := allocator.Allocate("My App", nil)
	require.NoError(t, err)
	assert.Equal(t, "my-app-3", got)
}

func TestAllocateIgnoresOwnRecord(t *testing.T) {
	ownID := uuid.New()
	store := memorySlugStore{"my-app": ownID}
	allocator := NewSlugAllocator(store)

	got, err := allocator.Allocate("My App", &ownID)
	require.NoError(t, err)
	assert.Equal(t, "my-app", got, "re-saving the same title keeps the slug")
}

func TestAllocateSuffixesPastAnotherOwner(t *testing.T) {
	ownID := uuid.New()
	store := memorySlugStore{"my-app": uuid.New()}
	allocator := NewSlugAllocator(store)

	got, err := allocator.Allocate("My App", &ownID)
	require.NoError(t, err)
	assert.Equal(t, "my-app-2", got)
}

func TestAllocateFallsBackWhenEmpty(t *testing.T) {
	allocator := NewSlugAllocator(memorySlugStore{})

	for _, input := range []string{"", "!!!", "——"} {
		got, err := allocator.Allocate(input, nil)
		require.NoError(t, err)
		assert.Equal(t, "project", got, "input %q", input)
	}
}

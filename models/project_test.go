package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProjectType(t *testing.T) {
	cases := []struct {
		input string
		want  ProjectType
	}{
		{"web", TypeWeb},
		{"mobile", TypeMobile},
		{"desktop", TypeDesktop},
		{"backend", TypeBackend},
		{"uiux", TypeUIUX},
		{"other", TypeOther},
		{" mobile ", TypeMobile},
		{"", TypeWeb},
		{"hologram", TypeWeb},
		{"WEB", TypeWeb}, // matching is exact, unknown casing falls back
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseProjectType(tc.input), "input %q", tc.input)
	}
}

func TestParseProjectStatus(t *testing.T) {
	cases := []struct {
		input string
		want  ProjectStatus
	}{
		{"draft", StatusDraft},
		{"published", StatusPublished},
		{" draft ", StatusDraft},
		{"", StatusPublished},
		{"archived", StatusPublished},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseProjectStatus(tc.input), "input %q", tc.input)
	}
}

func TestParseStringList(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain array", `["go","chi"]`, []string{"go", "chi"}},
		{"entries trimmed", `[" go ","  "]`, []string{"go"}},
		{"order and duplicates kept", `["b","a","b"]`, []string{"b", "a", "b"}},
		{"numbers stringified", `["go", 2]`, []string{"go", "2"}},
		{"empty string", ``, []string{}},
		{"malformed json", `["unterminated`, []string{}},
		{"not an array", `{"a":1}`, []string{}},
		{"bare string", `"go"`, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseStringList(tc.input))
		})
	}
}

func TestStackLabel(t *testing.T) {
	assert.Equal(t, "Next.js", StackLabel("nextjs"))
	assert.Equal(t, "React Native", StackLabel("react-native"))
	assert.Equal(t, "somethingelse", StackLabel("somethingelse"))
}

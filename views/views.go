// Package views implements the list-view refinements (search, filters,
// sorting, facets) as pure functions over an immutable snapshot of project
// summaries. Handlers apply them to query parameters; they never touch the
// store.
package views

import (
	"sort"
	"strings"

	"github.com/adith-pr/portfolio-backend/models"
)

// Sort keys accepted by admin list views. Anything else sorts newest first.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortTitleAsc  = "title_asc"
	SortTitleDesc = "title_desc"
)

// PublicQuery refines the public project grid. Zero values (or "all")
// leave the snapshot untouched.
type PublicQuery struct {
	Query string // free text over title, description, slug, tags
	Type  string // exact project type
	Stack string // stack key membership
}

// AdminQuery refines the admin dashboard list.
type AdminQuery struct {
	Query  string // free text over title, description, slug, tags, type
	Status string // draft | published
	Sort   string // SortNewest, SortOldest, SortTitleAsc, SortTitleDesc
}

func isAll(filter string) bool {
	return filter == "" || strings.EqualFold(filter, "all")
}

func matchesText(p models.ProjectSummary, query string, includeType bool) bool {
	title := strings.ToLower(p.Title)
	slug := strings.ToLower(p.Slug)
	desc := ""
	if p.Description != nil {
		desc = strings.ToLower(*p.Description)
	}
	tags := strings.ToLower(strings.Join(p.Tags, " "))

	if strings.Contains(title, query) ||
		strings.Contains(desc, query) ||
		strings.Contains(slug, query) ||
		strings.Contains(tags, query) {
		return true
	}
	return includeType && strings.Contains(strings.ToLower(string(p.Type)), query)
}

// FilterPublic returns the subset of a snapshot matching a public query,
// preserving the snapshot's order.
func FilterPublic(snapshot []models.ProjectSummary, q PublicQuery) []models.ProjectSummary {
	query := strings.ToLower(strings.TrimSpace(q.Query))

	out := make([]models.ProjectSummary, 0, len(snapshot))
	for _, p := range snapshot {
		if query != "" && !matchesText(p, query, false) {
			continue
		}
		if !isAll(q.Type) && !strings.EqualFold(string(p.Type), q.Type) {
			continue
		}
		if !isAll(q.Stack) && !contains(p.Stack, q.Stack) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterAdmin returns a filtered and sorted copy of a snapshot for the
// admin dashboard.
func FilterAdmin(snapshot []models.ProjectSummary, q AdminQuery) []models.ProjectSummary {
	query := strings.ToLower(strings.TrimSpace(q.Query))

	out := make([]models.ProjectSummary, 0, len(snapshot))
	for _, p := range snapshot {
		if !isAll(q.Status) && !strings.EqualFold(string(p.Status), q.Status) {
			continue
		}
		if query != "" && !matchesText(p, query, true) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch q.Sort {
		case SortOldest:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case SortTitleAsc:
			return strings.Compare(out[i].Title, out[j].Title) < 0
		case SortTitleDesc:
			return strings.Compare(out[i].Title, out[j].Title) > 0
		default: // SortNewest
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	return out
}

// Types returns the distinct project types in a snapshot, sorted. Useful
// for building filter facets.
func Types(snapshot []models.ProjectSummary) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range snapshot {
		t := string(p.Type)
		if t == "" {
			t = string(models.TypeWeb)
		}
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Stacks returns the distinct stack keys in a snapshot, sorted.
func Stacks(snapshot []models.ProjectSummary) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range snapshot {
		for _, s := range p.Stack {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

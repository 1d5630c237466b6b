package projects

import (
	"cmp"
	"slices"
	"strings"
)

// Sort orders the gallery.
type Sort string

const (
	SortUpdated Sort = "updated"
	SortCreated Sort = "created"
	SortStars   Sort = "stars"
	SortForks   Sort = "forks"
	SortName    Sort = "name"
)

// LanguageAll disables the language filter.
const LanguageAll = "all"

// ParseSort returns the Sort named s, or SortUpdated for anything unknown.
func ParseSort(s string) Sort {
	switch v := Sort(strings.ToLower(strings.TrimSpace(s))); v {
	case SortCreated, SortStars, SortForks, SortName:
		return v
	default:
		return SortUpdated
	}
}

// Query filters and orders a repository list.
type Query struct {
	Search   string `json:"q" form:"q"`
	Language string `json:"language" form:"language"`
	Sort     Sort   `json:"sort" form:"sort"`
}

// Apply returns a new slice with the matching repos in order. The input
// is left untouched.
func (q Query) Apply(repos []Repo) []Repo {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	lang := strings.TrimSpace(q.Language)
	if strings.EqualFold(lang, LanguageAll) {
		lang = ""
	}

	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		if lang != "" && r.Language != lang {
			continue
		}
		if search != "" && !r.matches(search) {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, comparator(ParseSort(string(q.Sort))))
	return out
}

func (r Repo) matches(term string) bool {
	if strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	return slices.ContainsFunc(r.Topics, func(t string) bool {
		return strings.Contains(strings.ToLower(t), term)
	})
}

func comparator(s Sort) func(a, b Repo) int {
	switch s {
	case SortStars:
		return func(a, b Repo) int { return cmp.Compare(b.Stars, a.Stars) }
	case SortForks:
		return func(a, b Repo) int { return cmp.Compare(b.Forks, a.Forks) }
	case SortName:
		return func(a, b Repo) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortCreated:
		return func(a, b Repo) int { return b.CreatedAt.Compare(a.CreatedAt) }
	default:
		return func(a, b Repo) int { return b.UpdatedAt.Compare(a.UpdatedAt) }
	}
}

// Languages returns the distinct non-empty languages, sorted.
func Languages(repos []Repo) []string {
	seen := make(map[string]struct{}, len(repos))
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if _, ok := seen[r.Language]; ok {
			continue
		}
		seen[r.Language] = struct{}{}
		out = append(out, r.Language)
	}
	slices.Sort(out)
	return out
}

// TotalStars sums stars across repos.
func TotalStars(repos []Repo) int {
	total := 0
	for _, r := range repos {
		total += r.Stars
	}
	return total
}

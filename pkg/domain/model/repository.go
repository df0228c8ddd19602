package model

import (
	"sort"
	"time"
)

// MaxProjectCards is the upper bound of cards rendered in the project grid
const MaxProjectCards = 6

// RepositorySummary represents a public repository returned by the source hosting provider
type RepositorySummary struct {
	Name        string
	Description *string
	URL         string
	Topics      []string
	Homepage    string
	CreatedAt   time.Time
	IsFork      bool
}

// SelectRecentRepositories drops forks, orders the rest by CreatedAt descending and
// truncates the result to limit entries. Entries created at the same time keep their
// original order. The input slice is not modified.
func SelectRecentRepositories(repos []*RepositorySummary, limit int) []*RepositorySummary {
	selected := make([]*RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		if repo == nil || repo.IsFork {
			continue
		}
		selected = append(selected, repo)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].CreatedAt.After(selected[j].CreatedAt)
	})

	if limit >= 0 && len(selected) > limit {
		selected = selected[:limit]
	}

	return selected
}

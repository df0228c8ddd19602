package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
)

func repo(name string, created time.Time, fork bool) *model.RepositorySummary {
	return &model.RepositorySummary{Name: name, CreatedAt: created, IsFork: fork}
}

func names(repos []*model.RepositorySummary) []string {
	out := make([]string, len(repos))
	for i, r := range repos {
		out[i] = r.Name
	}
	return out
}

func TestSelectRecentRepositories(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	t.Run("excludes every fork", func(t *testing.T) {
		repos := []*model.RepositorySummary{
			repo("fork-a", day(9), true),
			repo("own", day(1), false),
			repo("fork-b", day(8), true),
		}
		gt.V(t, names(model.SelectRecentRepositories(repos, model.MaxProjectCards))).Equal([]string{"own"})
	})

	t.Run("orders by creation time descending", func(t *testing.T) {
		repos := []*model.RepositorySummary{
			repo("old", day(1), false),
			repo("newest", day(5), false),
			repo("mid", day(3), false),
		}
		gt.V(t, names(model.SelectRecentRepositories(repos, model.MaxProjectCards))).Equal([]string{"newest", "mid", "old"})
	})

	t.Run("ties keep response order", func(t *testing.T) {
		repos := []*model.RepositorySummary{
			repo("first", day(2), false),
			repo("second", day(2), false),
			repo("older", day(1), false),
			repo("third", day(2), false),
		}
		gt.V(t, names(model.SelectRecentRepositories(repos, model.MaxProjectCards))).Equal([]string{"first", "second", "third", "older"})
	})

	t.Run("truncates to the limit as a prefix of the sorted list", func(t *testing.T) {
		var repos []*model.RepositorySummary
		for i := 0; i < 10; i++ {
			repos = append(repos, repo(string(rune('a'+i)), day(i), false))
		}
		selected := model.SelectRecentRepositories(repos, model.MaxProjectCards)
		gt.V(t, names(selected)).Equal([]string{"j", "i", "h", "g", "f", "e"})
	})

	t.Run("does not modify the input", func(t *testing.T) {
		repos := []*model.RepositorySummary{
			repo("old", day(1), false),
			repo("new", day(2), false),
		}
		_ = model.SelectRecentRepositories(repos, model.MaxProjectCards)
		gt.V(t, names(repos)).Equal([]string{"old", "new"})
	})

	t.Run("nil and empty input", func(t *testing.T) {
		gt.A(t, model.SelectRecentRepositories(nil, model.MaxProjectCards)).Length(0)
		gt.A(t, model.SelectRecentRepositories([]*model.RepositorySummary{nil}, model.MaxProjectCards)).Length(0)
	})
}

package dashboard

import (
	"sort"
	"time"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// Resolve merges a workspace definition with a user's preference into a
// ResolvedDashboard. pref may be nil (user never customized anything).
//
// Resolve is a pure function of its inputs and now: identical inputs always
// produce an identical result, which is what makes the facade's caching
// safe. It performs no permission or badge lookups; those need collaborators
// and happen in LoadDashboard.
func Resolve(
	ws domain.Workspace,
	widgets []domain.Widget,
	stats []domain.Statistic,
	actions []domain.QuickAction,
	pref *domain.UserPreference,
	now time.Time,
) domain.ResolvedDashboard {
	resolved := domain.ResolvedDashboard{
		Workspace:          ws,
		Widgets:            resolveWidgets(widgets, pref),
		Statistics:         resolveStatistics(stats, now),
		QuickActions:       resolveQuickActions(actions),
		ShowWelcomeMessage: true,
		CompactMode:        false,
		ResolvedAt:         now,
	}

	if pref != nil {
		resolved.ShowWelcomeMessage = pref.ShowWelcomeMessage
		resolved.CompactMode = pref.CompactMode
	}

	return resolved
}

// resolveWidgets filters and orders the widget list. A widget is included
// iff it is visible at the workspace level AND (it is required OR the user
// did not hide it). Hides of required widgets are silently ignored.
//
// The sort key is the user's custom position when present, the workspace
// position otherwise; ties break by widget ID string so the output never
// depends on input ordering.
func resolveWidgets(widgets []domain.Widget, pref *domain.UserPreference) []domain.Widget {
	included := make([]domain.Widget, 0, len(widgets))
	for _, w := range widgets {
		if !w.IsVisible {
			continue
		}
		if !w.IsRequired && pref != nil && pref.IsHidden(w.ID) {
			continue
		}
		included = append(included, w)
	}

	orderKey := func(w domain.Widget) int {
		if pref != nil {
			if pos, ok := pref.CustomOrder[w.ID]; ok {
				return pos
			}
		}
		return w.Position
	}

	sort.SliceStable(included, func(i, j int) bool {
		ki, kj := orderKey(included[i]), orderKey(included[j])
		if ki != kj {
			return ki < kj
		}
		return included[i].ID.String() < included[j].ID.String()
	})

	return included
}

// resolveStatistics annotates every statistic with its freshness.
// Statistics are never hidden by preference; the list is ordered by key
// for deterministic output.
func resolveStatistics(stats []domain.Statistic, now time.Time) []domain.ResolvedStatistic {
	resolved := make([]domain.ResolvedStatistic, 0, len(stats))
	for _, s := range stats {
		resolved = append(resolved, domain.ResolvedStatistic{
			Statistic: s,
			Stale:     s.IsStale(now),
		})
	}

	sort.Slice(resolved, func(i, j int) bool {
		if resolved[i].Key != resolved[j].Key {
			return resolved[i].Key < resolved[j].Key
		}
		return resolved[i].ID.String() < resolved[j].ID.String()
	})

	return resolved
}

// resolveQuickActions keeps visible actions in position order. Permission
// filtering is the caller's job: it needs the authorizer collaborator and
// the acting user, neither of which belongs in a pure resolver.
func resolveQuickActions(actions []domain.QuickAction) []domain.ResolvedQuickAction {
	resolved := make([]domain.ResolvedQuickAction, 0, len(actions))
	for _, a := range actions {
		if !a.IsVisible {
			continue
		}
		resolved = append(resolved, domain.ResolvedQuickAction{QuickAction: a})
	}

	sort.Slice(resolved, func(i, j int) bool {
		if resolved[i].Position != resolved[j].Position {
			return resolved[i].Position < resolved[j].Position
		}
		return resolved[i].ID.String() < resolved[j].ID.String()
	})

	return resolved
}

package domain

import "time"

// ResolvedStatistic is a statistic annotated with its freshness at
// resolution time.
type ResolvedStatistic struct {
	Statistic
	Stale bool
}

// ResolvedQuickAction is a quick action that survived visibility and
// permission filtering. BadgeCount is nil unless the action shows a badge
// and the count provider returned a value; it is never defaulted to zero.
type ResolvedQuickAction struct {
	QuickAction
	BadgeCount *int
}

// ResolvedDashboard is the ephemeral output of merging a workspace
// definition with a user's preference. It is never persisted; identical
// inputs always produce an identical value.
type ResolvedDashboard struct {
	Workspace          Workspace
	Widgets            []Widget
	Statistics         []ResolvedStatistic
	QuickActions       []ResolvedQuickAction
	ShowWelcomeMessage bool
	CompactMode        bool
	ResolvedAt         time.Time
}

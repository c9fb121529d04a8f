package domain

// WorkspaceRole identifies which user role a workspace is built for.
type WorkspaceRole string

const (
	WorkspaceRoleAdmin      WorkspaceRole = "ADMIN"
	WorkspaceRoleManager    WorkspaceRole = "MANAGER"
	WorkspaceRoleAccountant WorkspaceRole = "ACCOUNTANT"
	WorkspaceRoleController WorkspaceRole = "CONTROLLER"
	WorkspaceRoleViewer     WorkspaceRole = "VIEWER"
)

func (r WorkspaceRole) String() string { return string(r) }

func (r WorkspaceRole) IsValid() bool {
	switch r {
	case WorkspaceRoleAdmin, WorkspaceRoleManager, WorkspaceRoleAccountant,
		WorkspaceRoleController, WorkspaceRoleViewer:
		return true
	}
	return false
}

// WidgetType classifies a widget for the renderer.
type WidgetType string

const (
	WidgetTypeStat         WidgetType = "STAT"
	WidgetTypeChart        WidgetType = "CHART"
	WidgetTypeList         WidgetType = "LIST"
	WidgetTypeAction       WidgetType = "ACTION"
	WidgetTypeLink         WidgetType = "LINK"
	WidgetTypeNotification WidgetType = "NOTIFICATION"
)

func (t WidgetType) String() string { return string(t) }

func (t WidgetType) IsValid() bool {
	switch t {
	case WidgetTypeStat, WidgetTypeChart, WidgetTypeList,
		WidgetTypeAction, WidgetTypeLink, WidgetTypeNotification:
		return true
	}
	return false
}

// StatisticType dictates display formatting of a statistic value.
// It never affects resolution or freshness.
type StatisticType string

const (
	StatisticTypeNumber     StatisticType = "NUMBER"
	StatisticTypeCurrency   StatisticType = "CURRENCY"
	StatisticTypePercentage StatisticType = "PERCENTAGE"
	StatisticTypeText       StatisticType = "TEXT"
)

func (t StatisticType) String() string { return string(t) }

func (t StatisticType) IsValid() bool {
	switch t {
	case StatisticTypeNumber, StatisticTypeCurrency, StatisticTypePercentage, StatisticTypeText:
		return true
	}
	return false
}

// TrendDirection is the qualitative direction of a statistic's trend delta.
type TrendDirection string

const (
	TrendUp     TrendDirection = "UP"
	TrendDown   TrendDirection = "DOWN"
	TrendStable TrendDirection = "STABLE"
)

func (d TrendDirection) String() string { return string(d) }

func (d TrendDirection) IsValid() bool {
	switch d {
	case TrendUp, TrendDown, TrendStable:
		return true
	}
	return false
}

// ActionType determines how a quick action's target is interpreted.
type ActionType string

const (
	ActionTypeNavigate ActionType = "NAVIGATE"
	ActionTypeModal    ActionType = "MODAL"
	ActionTypeAPICall  ActionType = "API_CALL"
	ActionTypeExternal ActionType = "EXTERNAL"
)

func (t ActionType) String() string { return string(t) }

func (t ActionType) IsValid() bool {
	switch t {
	case ActionTypeNavigate, ActionTypeModal, ActionTypeAPICall, ActionTypeExternal:
		return true
	}
	return false
}

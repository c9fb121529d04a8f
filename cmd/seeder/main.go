// Command seeder provisions the built-in role dashboards: one workspace per
// role with its widgets, statistics, and quick actions. It is idempotent in
// the weak sense that rerunning it adds nothing when the workspaces already
// exist.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/adapter/postgres"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/quickaction"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/statistic"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/widget"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/workspace"
	"github.com/workboardhq/workboard-backend/internal/app"
	"github.com/workboardhq/workboard-backend/internal/config"
	"github.com/workboardhq/workboard-backend/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder{
		log:        logger,
		workspaces: workspace.New(pool),
		widgets:    widget.New(pool),
		stats:      statistic.New(pool),
		actions:    quickaction.New(pool),
	}

	created := 0
	for _, def := range builtinWorkspaces() {
		ok, err := s.seedWorkspace(ctx, def)
		if err != nil {
			logger.Error("seed workspace failed",
				slog.String("role", def.role.String()),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		if ok {
			created++
		}
	}

	logger.Info("seeding completed", slog.Int("workspaces_created", created))
}

type seeder struct {
	log        *slog.Logger
	workspaces *workspace.Repo
	widgets    *widget.Repo
	stats      *statistic.Repo
	actions    *quickaction.Repo
}

type workspaceDef struct {
	role    domain.WorkspaceRole
	name    string
	desc    string
	icon    string
	color   string
	widgets []widgetDef
	stats   []statDef
	actions []actionDef
}

type widgetDef struct {
	typ      domain.WidgetType
	title    string
	required bool
}

type statDef struct {
	key      string
	label    string
	typ      domain.StatisticType
	cacheSec int
}

type actionDef struct {
	label      string
	target     string
	permission string
	badge      string
}

// seedWorkspace creates the workspace and its children. It reports false
// without error when an active workspace for the role already exists.
func (s *seeder) seedWorkspace(ctx context.Context, def workspaceDef) (bool, error) {
	if _, err := s.workspaces.GetActiveByRole(ctx, def.role); err == nil {
		s.log.Info("workspace already exists, skipping", slog.String("role", def.role.String()))
		return false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	now := time.Now().UTC()
	ws, err := s.workspaces.Create(ctx, domain.Workspace{
		ID:          uuid.New(),
		Role:        def.role,
		Name:        def.name,
		Description: def.desc,
		Icon:        def.icon,
		Color:       def.color,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return false, err
	}

	for i, wd := range def.widgets {
		if _, err := s.widgets.Create(ctx, domain.Widget{
			ID:          uuid.New(),
			WorkspaceID: ws.ID,
			Type:        wd.typ,
			Title:       wd.title,
			Config:      map[string]any{},
			Position:    i,
			Width:       2,
			Height:      1,
			IsVisible:   true,
			IsRequired:  wd.required,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return false, err
		}
	}

	for _, sd := range def.stats {
		if _, err := s.stats.Create(ctx, domain.Statistic{
			ID:               uuid.New(),
			WorkspaceID:      ws.ID,
			Key:              sd.key,
			Label:            sd.label,
			Value:            "0",
			Type:             sd.typ,
			CacheDurationSec: sd.cacheSec,
			LastCalculatedAt: now,
			CreatedAt:        now,
			UpdatedAt:        now,
		}); err != nil {
			return false, err
		}
	}

	for i, ad := range def.actions {
		action := domain.QuickAction{
			ID:           uuid.New(),
			WorkspaceID:  ws.ID,
			Label:        ad.label,
			ActionType:   domain.ActionTypeNavigate,
			ActionTarget: ad.target,
			Position:     i,
			IsVisible:    true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if ad.permission != "" {
			action.RequiredPermission = &ad.permission
		}
		if ad.badge != "" {
			action.ShowBadge = true
			action.BadgeSource = &ad.badge
		}
		if _, err := s.actions.Create(ctx, action); err != nil {
			return false, err
		}
	}

	s.log.Info("workspace seeded",
		slog.String("role", def.role.String()),
		slog.String("workspace_id", ws.ID.String()),
	)
	return true, nil
}

func builtinWorkspaces() []workspaceDef {
	return []workspaceDef{
		{
			role:  domain.WorkspaceRoleAccountant,
			name:  "Accounting",
			desc:  "Daily bookkeeping and invoicing overview",
			icon:  "calculator",
			color: "#2563eb",
			widgets: []widgetDef{
				{domain.WidgetTypeStat, "Cash position", true},
				{domain.WidgetTypeList, "Pending invoices", false},
				{domain.WidgetTypeChart, "Revenue by month", false},
				{domain.WidgetTypeNotification, "Filing deadlines", true},
			},
			stats: []statDef{
				{"cash_balance", "Cash balance", domain.StatisticTypeCurrency, 300},
				{"pending_invoices", "Pending invoices", domain.StatisticTypeNumber, 60},
				{"overdue_invoices", "Overdue invoices", domain.StatisticTypeNumber, 60},
				{"monthly_revenue", "Monthly revenue", domain.StatisticTypeCurrency, 3600},
			},
			actions: []actionDef{
				{"New invoice", "/invoices/new", "", ""},
				{"Approve invoices", "/invoices/pending", "invoices.approve", "pending_invoices"},
				{"Record payment", "/payments/new", "", ""},
			},
		},
		{
			role:  domain.WorkspaceRoleManager,
			name:  "Management",
			desc:  "Team workload and approval queue",
			icon:  "users",
			color: "#7c3aed",
			widgets: []widgetDef{
				{domain.WidgetTypeStat, "Open approvals", true},
				{domain.WidgetTypeChart, "Team throughput", false},
				{domain.WidgetTypeList, "Recent activity", false},
			},
			stats: []statDef{
				{"open_approvals", "Open approvals", domain.StatisticTypeNumber, 60},
				{"team_throughput", "Team throughput", domain.StatisticTypePercentage, 3600},
			},
			actions: []actionDef{
				{"Review approvals", "/approvals", "approvals.review", "open_approvals"},
				{"Monthly report", "/reports/monthly", "reports.view", ""},
			},
		},
		{
			role:  domain.WorkspaceRoleController,
			name:  "Controlling",
			desc:  "Budget tracking and variance analysis",
			icon:  "trending-up",
			color: "#059669",
			widgets: []widgetDef{
				{domain.WidgetTypeStat, "Budget utilization", true},
				{domain.WidgetTypeChart, "Variance by cost center", false},
			},
			stats: []statDef{
				{"budget_utilization", "Budget utilization", domain.StatisticTypePercentage, 3600},
				{"open_variances", "Open variances", domain.StatisticTypeNumber, 300},
			},
			actions: []actionDef{
				{"Variance report", "/controlling/variances", "controlling.view", "open_variances"},
			},
		},
		{
			role:  domain.WorkspaceRoleAdmin,
			name:  "Administration",
			desc:  "System health and user management",
			icon:  "settings",
			color: "#dc2626",
			widgets: []widgetDef{
				{domain.WidgetTypeStat, "Active users", true},
				{domain.WidgetTypeList, "Audit trail", true},
			},
			stats: []statDef{
				{"active_users", "Active users", domain.StatisticTypeNumber, 300},
			},
			actions: []actionDef{
				{"Manage users", "/admin/users", "admin.users", ""},
				{"System settings", "/admin/settings", "admin.settings", ""},
			},
		},
		{
			role:  domain.WorkspaceRoleViewer,
			name:  "Overview",
			desc:  "Read-only company overview",
			icon:  "eye",
			color: "#64748b",
			widgets: []widgetDef{
				{domain.WidgetTypeStat, "Company snapshot", true},
			},
			stats: []statDef{
				{"company_snapshot", "Company snapshot", domain.StatisticTypeText, 3600},
			},
			actions: nil,
		},
	}
}

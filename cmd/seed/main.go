// Package main seeds a demo workspace for local development.
//
// The dataset is described by a YAML fixture. The embedded fixture.yaml is
// used by default; pass a path as the first argument to seed a custom one.
// Seeding is intended for fresh databases: rows that collide with existing
// unique keys are skipped, not updated.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/config"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/infrastructure"
	"stageline.io/stageline/internal/pkg/logger"
)

//go:embed fixture.yaml
var defaultFixture []byte

type fixture struct {
	TenantAccountID string        `yaml:"tenant_account_id"`
	Users           []userSpec    `yaml:"users"`
	ClientOrgs      []orgSpec     `yaml:"client_orgs"`
	Projects        []projectSpec `yaml:"projects"`
	Invoices        []invoiceSpec `yaml:"invoices"`
}

type userSpec struct {
	Email       string   `yaml:"email"`
	DisplayName string   `yaml:"display_name"`
	Password    string   `yaml:"password"`
	Role        string   `yaml:"role"`
	ClientOrgs  []string `yaml:"client_orgs"`
}

type orgSpec struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Archived bool   `yaml:"archived"`
}

type projectSpec struct {
	Key       string      `yaml:"key"`
	Name      string      `yaml:"name"`
	ClientOrg string      `yaml:"client_org"`
	Status    string      `yaml:"status"`
	DueInDays *int        `yaml:"due_in_days"`
	Archived  bool        `yaml:"archived"`
	History   []stageSpec `yaml:"history"`
}

type stageSpec struct {
	To      string `yaml:"to"`
	DaysAgo int    `yaml:"days_ago"`
}

type invoiceSpec struct {
	Project       string  `yaml:"project"`
	Status        string  `yaml:"status"`
	Amount        float64 `yaml:"amount"`
	IssuedDaysAgo *int    `yaml:"issued_days_ago"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	raw := defaultFixture
	if len(os.Args) > 1 {
		raw, err = os.ReadFile(os.Args[1])
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", os.Args[1], err)
		}
	}

	fix, err := parseFixture(raw)
	if err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	logger.Info("Starting data seeding...", zap.String("tenant", fix.TenantAccountID))

	if err := seed(ctx, db.EntClient, fix); err != nil {
		return err
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func parseFixture(raw []byte) (*fixture, error) {
	var fix fixture
	if err := yaml.Unmarshal(raw, &fix); err != nil {
		return nil, err
	}
	if fix.TenantAccountID == "" {
		return nil, fmt.Errorf("tenant_account_id must not be empty")
	}
	for _, p := range fix.Projects {
		if _, err := domain.ParseStatus(p.Status); err != nil {
			return nil, fmt.Errorf("project %s: %w", p.Key, err)
		}
		for _, h := range p.History {
			if _, err := domain.ParseStatus(h.To); err != nil {
				return nil, fmt.Errorf("project %s history: %w", p.Key, err)
			}
		}
	}
	return &fix, nil
}

func seed(ctx context.Context, client *ent.Client, fix *fixture) error {
	now := time.Now().UTC()

	orgIDs := make(map[string]string, len(fix.ClientOrgs))
	for _, o := range fix.ClientOrgs {
		id := domain.NewID()
		_, err := client.ClientOrg.Create().
			SetID(id).
			SetTenantAccountID(fix.TenantAccountID).
			SetName(o.Name).
			SetArchived(o.Archived).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create client org %s: %w", o.Key, err)
		}
		orgIDs[o.Key] = id
		logger.Info("Seeded client org", zap.String("name", o.Name))
	}

	for _, u := range fix.Users {
		if err := seedUser(ctx, client, fix.TenantAccountID, u, orgIDs); err != nil {
			return err
		}
	}

	projectIDs := make(map[string]string, len(fix.Projects))
	for _, p := range fix.Projects {
		orgID, ok := orgIDs[p.ClientOrg]
		if !ok {
			return fmt.Errorf("project %s references unknown client org %q", p.Key, p.ClientOrg)
		}
		status, _ := domain.ParseStatus(p.Status)

		create := client.Project.Create().
			SetID(domain.NewID()).
			SetName(p.Name).
			SetClientID(orgID).
			SetTenantAccountID(fix.TenantAccountID).
			SetStatus(status).
			SetArchived(p.Archived)
		if p.DueInDays != nil {
			create.SetDueDate(now.AddDate(0, 0, *p.DueInDays))
		}
		proj, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create project %s: %w", p.Key, err)
		}
		projectIDs[p.Key] = proj.ID

		if err := seedHistory(ctx, client, proj.ID, p.History, now); err != nil {
			return fmt.Errorf("project %s history: %w", p.Key, err)
		}
		logger.Info("Seeded project", zap.String("name", p.Name), zap.String("status", p.Status))
	}

	for _, inv := range fix.Invoices {
		projID, ok := projectIDs[inv.Project]
		if !ok {
			return fmt.Errorf("invoice references unknown project %q", inv.Project)
		}
		create := client.Invoice.Create().
			SetID(domain.NewID()).
			SetProjectID(projID).
			SetStatus(domain.InvoiceStatus(inv.Status)).
			SetAmount(inv.Amount)
		if inv.IssuedDaysAgo != nil {
			create.SetIssuedAt(now.AddDate(0, 0, -*inv.IssuedDaysAgo))
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create invoice for %s: %w", inv.Project, err)
		}
	}

	return nil
}

func seedUser(ctx context.Context, client *ent.Client, tenantAccountID string, u userSpec, orgIDs map[string]string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", u.Email, err)
	}

	create := client.User.Create().
		SetID(domain.NewID()).
		SetEmail(u.Email).
		SetDisplayName(u.DisplayName).
		SetPasswordHash(string(hash)).
		SetRole(domain.Role(u.Role)).
		SetTenantAccountID(tenantAccountID).
		SetActive(true)
	for _, key := range u.ClientOrgs {
		orgID, ok := orgIDs[key]
		if !ok {
			return fmt.Errorf("user %s references unknown client org %q", u.Email, key)
		}
		create.AddClientOrgIDs(orgID)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("User already exists, skipping", zap.String("email", u.Email))
			return nil
		}
		return fmt.Errorf("create user %s: %w", u.Email, err)
	}
	logger.Info("Seeded user", zap.String("email", u.Email), zap.String("role", u.Role))
	return nil
}

// seedHistory writes the stage audit trail backing the velocity report.
func seedHistory(ctx context.Context, client *ent.Client, projectID string, history []stageSpec, now time.Time) error {
	var prev *domain.Status
	for _, h := range history {
		to, _ := domain.ParseStatus(h.To)

		create := client.StageEvent.Create().
			SetID(domain.NewID()).
			SetProjectID(projectID).
			SetToStatus(to).
			SetChangedBy("seed").
			SetCreatedAt(now.AddDate(0, 0, -h.DaysAgo))
		if prev != nil {
			create.SetFromStatus(*prev)
		}
		if _, err := create.Save(ctx); err != nil {
			return err
		}
		prev = &to
	}
	return nil
}

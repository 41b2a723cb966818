package main

import (
	"testing"

	"stageline.io/stageline/internal/domain"
)

func TestEmbeddedFixtureParses(t *testing.T) {
	t.Parallel()

	fix, err := parseFixture(defaultFixture)
	if err != nil {
		t.Fatalf("parseFixture: %v", err)
	}
	if fix.TenantAccountID == "" {
		t.Fatal("fixture tenant_account_id is empty")
	}
	if len(fix.ClientOrgs) == 0 || len(fix.Projects) == 0 || len(fix.Users) == 0 {
		t.Fatal("fixture must seed client orgs, projects and users")
	}
}

func TestEmbeddedFixtureReferencesResolve(t *testing.T) {
	t.Parallel()

	fix, err := parseFixture(defaultFixture)
	if err != nil {
		t.Fatalf("parseFixture: %v", err)
	}

	orgKeys := make(map[string]bool, len(fix.ClientOrgs))
	for _, o := range fix.ClientOrgs {
		if orgKeys[o.Key] {
			t.Fatalf("duplicate client org key %q", o.Key)
		}
		orgKeys[o.Key] = true
	}

	projectKeys := make(map[string]bool, len(fix.Projects))
	for _, p := range fix.Projects {
		if !orgKeys[p.ClientOrg] {
			t.Fatalf("project %s references unknown client org %q", p.Key, p.ClientOrg)
		}
		if projectKeys[p.Key] {
			t.Fatalf("duplicate project key %q", p.Key)
		}
		projectKeys[p.Key] = true
	}

	for _, u := range fix.Users {
		for _, key := range u.ClientOrgs {
			if !orgKeys[key] {
				t.Fatalf("user %s references unknown client org %q", u.Email, key)
			}
		}
	}

	for _, inv := range fix.Invoices {
		if !projectKeys[inv.Project] {
			t.Fatalf("invoice references unknown project %q", inv.Project)
		}
	}
}

func TestEmbeddedFixtureEnumsAreValid(t *testing.T) {
	t.Parallel()

	fix, err := parseFixture(defaultFixture)
	if err != nil {
		t.Fatalf("parseFixture: %v", err)
	}

	validInvoice := make(map[string]bool)
	for _, s := range domain.InvoiceStatus("").Values() {
		validInvoice[s] = true
	}
	for _, inv := range fix.Invoices {
		if !validInvoice[inv.Status] {
			t.Fatalf("invoice for %s has unknown status %q", inv.Project, inv.Status)
		}
	}

	validRole := make(map[string]bool)
	for _, r := range domain.Role("").Values() {
		validRole[r] = true
	}
	for _, u := range fix.Users {
		if !validRole[u.Role] {
			t.Fatalf("user %s has unknown role %q", u.Email, u.Role)
		}
		if u.Role == string(domain.RoleClient) && len(u.ClientOrgs) == 0 {
			t.Fatalf("client user %s has no client org memberships", u.Email)
		}
	}
}

func TestEmbeddedFixtureHistoryIsOrdered(t *testing.T) {
	t.Parallel()

	fix, err := parseFixture(defaultFixture)
	if err != nil {
		t.Fatalf("parseFixture: %v", err)
	}

	for _, p := range fix.Projects {
		last := int(^uint(0) >> 1)
		for _, h := range p.History {
			if h.DaysAgo > last {
				t.Fatalf("project %s history is not oldest-first", p.Key)
			}
			last = h.DaysAgo
		}
	}
}

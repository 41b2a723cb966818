package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/testutil"
)

const testTenant = "acct_studio"

func seedOrg(t *testing.T, client *ent.Client, name string) *ent.ClientOrg {
	t.Helper()
	return client.ClientOrg.Create().
		SetID(domain.NewID()).
		SetTenantAccountID(testTenant).
		SetName(name).
		SaveX(context.Background())
}

func seedUser(t *testing.T, client *ent.Client, role domain.Role, orgs ...*ent.ClientOrg) *ent.User {
	t.Helper()
	create := client.User.Create().
		SetID(domain.NewID()).
		SetEmail(domain.NewID() + "@test.local").
		SetDisplayName("Test User").
		SetPasswordHash("x").
		SetRole(role).
		SetActive(true)
	if role == domain.RoleMember {
		create.SetTenantAccountID(testTenant)
	}
	for _, org := range orgs {
		create.AddClientOrgs(org)
	}
	return create.SaveX(context.Background())
}

func TestResolveMemberGetsTenantScope(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "access_member")
	r := NewResolver(client, nil, nil)

	usr := seedUser(t, client, domain.RoleMember)

	scope, err := r.Resolve(context.Background(), usr.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleMember, scope.Role)
	require.Equal(t, testTenant, scope.TenantAccountID)
	require.Empty(t, scope.ClientIDs)
	require.False(t, scope.Restricted())
	require.False(t, scope.AllowsNothing())
}

func TestResolveClientGetsMembershipScope(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "access_client")
	r := NewResolver(client, nil, nil)

	orgA := seedOrg(t, client, "Vertex Labs")
	orgB := seedOrg(t, client, "Northwind")
	usr := seedUser(t, client, domain.RoleClient, orgA, orgB)

	scope, err := r.Resolve(context.Background(), usr.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, scope.Role)
	require.ElementsMatch(t, []string{orgA.ID, orgB.ID}, scope.ClientIDs)
	require.True(t, scope.Restricted())
	require.False(t, scope.AllowsNothing())
}

func TestResolveClientWithoutOrgsAllowsNothing(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "access_empty")
	r := NewResolver(client, nil, nil)

	usr := seedUser(t, client, domain.RoleClient)

	scope, err := r.Resolve(context.Background(), usr.ID)
	require.NoError(t, err)
	require.True(t, scope.AllowsNothing())
}

func TestResolveUnknownUserFallsBackToEmptyClientScope(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "access_unknown")
	r := NewResolver(client, nil, nil)

	scope, err := r.Resolve(context.Background(), domain.NewID())
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, scope.Role)
	require.True(t, scope.AllowsNothing())
}

func TestResolveInactiveUserFallsBackToEmptyClientScope(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "access_inactive")
	r := NewResolver(client, nil, nil)

	usr := seedUser(t, client, domain.RoleMember)
	client.User.UpdateOneID(usr.ID).SetActive(false).SaveX(context.Background())

	scope, err := r.Resolve(context.Background(), usr.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, scope.Role)
	require.True(t, scope.AllowsNothing())
}

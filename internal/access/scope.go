// Package access resolves authenticated users to a data visibility scope.
//
// Every read and write against projects goes through a Scope so that
// tenant members see their whole pipeline and client users see only the
// projects of organizations they belong to.
package access

import (
	"stageline.io/stageline/ent/predicate"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/internal/domain"
)

// Scope is the resolved visibility of one authenticated user.
// It is computed per request and never cached across requests.
type Scope struct {
	// UserID is the authenticated user, empty when resolution fell back
	// to an anonymous client scope.
	UserID string

	// Role determines the filtering strategy below.
	Role domain.Role

	// TenantAccountID is set for members and scopes them to their tenant's
	// entire pipeline.
	TenantAccountID string

	// ClientIDs lists the client organizations a client user belongs to.
	// Empty for members.
	ClientIDs []string
}

// Restricted reports whether the scope filters by client membership
// rather than seeing the whole tenant.
func (s Scope) Restricted() bool {
	return s.Role != domain.RoleMember
}

// AllowsNothing reports whether no project can possibly match the scope.
// A client user with no organization memberships sees an empty, valid
// dashboard instead of an error.
func (s Scope) AllowsNothing() bool {
	return s.Restricted() && len(s.ClientIDs) == 0
}

// ProjectPredicates returns the Ent predicates every project query must
// apply for this scope. Callers append their own filters on top.
func (s Scope) ProjectPredicates() []predicate.Project {
	if !s.Restricted() {
		return []predicate.Project{project.TenantAccountIDEQ(s.TenantAccountID)}
	}
	if len(s.ClientIDs) == 0 {
		// Matches no rows; keeps queries uniform for empty memberships.
		return []predicate.Project{project.IDEQ("")}
	}
	return []predicate.Project{project.ClientIDIn(s.ClientIDs...)}
}

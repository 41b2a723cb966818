package domain

// Role is the stored tenant role of a principal. Access scope is derived
// from it exactly once per request by the access resolver; downstream code
// consumes the resolved scope, never the raw role.
type Role string

const (
	// RoleMember is a workspace member of the owning tenant account.
	RoleMember Role = "member"

	// RoleClient is a restricted-visibility principal of one or more
	// client organizations.
	RoleClient Role = "client"
)

// Values implements field.EnumValues for ent codegen.
func (Role) Values() []string {
	return []string{string(RoleMember), string(RoleClient)}
}

// String returns the raw enum value.
func (r Role) String() string { return string(r) }

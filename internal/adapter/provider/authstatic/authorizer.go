// Package authstatic implements permission checks against a static grant
// table. It stands in for the organization's identity service in local and
// single-tenant deployments.
package authstatic

import (
	"context"

	"github.com/google/uuid"
)

// AllowAll grants every permission to every user.
type AllowAll struct{}

// NewAllowAll creates an authorizer that grants everything.
func NewAllowAll() *AllowAll { return &AllowAll{} }

// HasPermission always reports true.
func (a *AllowAll) HasPermission(ctx context.Context, userID uuid.UUID, permission string) (bool, error) {
	return true, nil
}

// Static answers permission checks from a fixed per-user grant table.
type Static struct {
	grants map[uuid.UUID]map[string]struct{}
}

// NewStatic creates an authorizer backed by the given grants. Users absent
// from the table hold no permissions.
func NewStatic(grants map[uuid.UUID][]string) *Static {
	indexed := make(map[uuid.UUID]map[string]struct{}, len(grants))
	for userID, perms := range grants {
		set := make(map[string]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		indexed[userID] = set
	}
	return &Static{grants: indexed}
}

// HasPermission reports whether the user was granted the permission.
func (s *Static) HasPermission(ctx context.Context, userID uuid.UUID, permission string) (bool, error) {
	_, ok := s.grants[userID][permission]
	return ok, nil
}

package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal roles
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Principal is the authenticated tenant identity of a request
type Principal struct {
	UserID       string
	BusinessID   string
	BusinessType BusinessType
	Role         string
}

type principalKey struct{}

// WithPrincipal stores the principal in the context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal of the request, if any
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// AuthorizeBusiness checks that the request may manage the given business.
// Admins manage every business.
func AuthorizeBusiness(ctx context.Context, businessID primitive.ObjectID) error {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if p.Role == RoleAdmin || p.BusinessID == businessID.Hex() {
		return nil
	}
	return ErrForbidden
}

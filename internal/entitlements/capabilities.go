// Package entitlements resolves what a caller's plan allows.
// Consumers only see boolean capabilities, never plan names.
package entitlements

import (
	"context"
	"strings"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
)

// Identity is the authenticated caller as established by the auth middleware
type Identity struct {
	UserID string
	Email  string
	Plans  []string // Plan names asserted by the identity source, may be empty
}

// Capabilities are the entitlement flags of one caller
type Capabilities struct {
	IsStudent bool
	IsPro     bool
}

// IsPaid reports whether any paid plan is active
func (c Capabilities) IsPaid() bool {
	return c.IsStudent || c.IsPro
}

// Resolver turns an identity into capabilities
type Resolver interface {
	Resolve(ctx context.Context, identity Identity) (Capabilities, error)
}

// FromPlans derives capabilities from plan names (case-insensitive)
func FromPlans(plans []string) Capabilities {
	var caps Capabilities
	for _, plan := range plans {
		switch strings.ToLower(strings.TrimSpace(plan)) {
		case models.PlanStudent:
			caps.IsStudent = true
		case models.PlanPro:
			caps.IsPro = true
		}
	}
	return caps
}

// ClaimsResolver trusts the plan names carried on the identity itself
// (gateway headers or JWT claims).
type ClaimsResolver struct{}

// NewClaimsResolver creates a claims resolver
func NewClaimsResolver() *ClaimsResolver {
	return &ClaimsResolver{}
}

// Resolve implements Resolver
func (r *ClaimsResolver) Resolve(_ context.Context, identity Identity) (Capabilities, error) {
	return FromPlans(identity.Plans), nil
}

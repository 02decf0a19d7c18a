package entitlements

import (
	"context"
	"fmt"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
	"gorm.io/gorm"
)

// DBResolver looks up active subscriptions in the database
type DBResolver struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDBResolver creates a database-backed resolver
func NewDBResolver(db *gorm.DB) *DBResolver {
	return &DBResolver{db: db, now: time.Now}
}

// Resolve implements Resolver. Plans asserted by the identity are ignored;
// the subscriptions table is authoritative.
func (r *DBResolver) Resolve(ctx context.Context, identity Identity) (Capabilities, error) {
	var plans []string
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("user_id = ? AND status = ?", identity.UserID, models.SubscriptionActive).
		Where("expires_at IS NULL OR expires_at > ?", r.now()).
		Pluck("plan", &plans).Error
	if err != nil {
		return Capabilities{}, fmt.Errorf("failed to load subscriptions for user %s: %w", identity.UserID, err)
	}
	return FromPlans(plans), nil
}

package entitlements

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/database"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBResolver(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("Skipping database test: TEST_DATABASE_URL not set")
	}

	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userID := uuid.New().String()
	past := time.Now().Add(-time.Hour)
	rows := []models.Subscription{
		{UserID: userID, Plan: models.PlanStudent, Status: models.SubscriptionActive},
		{UserID: userID, Plan: models.PlanPro, Status: models.SubscriptionCanceled},
		{UserID: userID, Plan: models.PlanPro, Status: models.SubscriptionActive, ExpiresAt: &past},
	}
	require.NoError(t, db.Create(&rows).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("user_id = ?", userID).Delete(&models.Subscription{})
	})

	resolver := NewDBResolver(db)
	caps, err := resolver.Resolve(context.Background(), Identity{UserID: userID, Plans: []string{"pro"}})
	require.NoError(t, err)
	assert.True(t, caps.IsStudent)
	assert.False(t, caps.IsPro, "canceled and expired subscriptions must not grant pro")

	caps, err = resolver.Resolve(context.Background(), Identity{UserID: uuid.New().String()})
	require.NoError(t, err)
	assert.False(t, caps.IsPaid())
}

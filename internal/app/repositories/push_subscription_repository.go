package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archiva/campusconnect/internal/app/models"
)

// PushSubscriptionRepository handles database operations for browser push subscriptions.
type PushSubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewPushSubscriptionRepository creates a new PushSubscriptionRepository
func NewPushSubscriptionRepository(db *pgxpool.Pool) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// pushSubscriptionUpsert keeps one row per browser endpoint, refreshing the
// stored subscription payload on re-registration.
func pushSubscriptionUpsert(endpoint, subscription string) squirrel.InsertBuilder {
	return squirrel.Insert("push_subscriptions").
		Columns("endpoint", "subscription").
		Values(endpoint, subscription).
		Suffix("ON CONFLICT (endpoint) DO UPDATE SET subscription = EXCLUDED.subscription").
		PlaceholderFormat(squirrel.Dollar)
}

// Upsert stores a subscription keyed by its endpoint.
func (r *PushSubscriptionRepository) Upsert(ctx context.Context, endpoint, subscription string) error {
	sql, args, err := pushSubscriptionUpsert(endpoint, subscription).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// ListAll returns every stored subscription.
func (r *PushSubscriptionRepository) ListAll(ctx context.Context) ([]models.PushSubscription, error) {
	rows, err := r.db.Query(ctx, "SELECT id, endpoint, subscription FROM push_subscriptions")
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	subs := []models.PushSubscription{}
	for rows.Next() {
		var s models.PushSubscription
		if err := rows.Scan(&s.ID, &s.Endpoint, &s.Subscription); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// DeleteByEndpoint prunes a subscription whose endpoint is gone.
func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM push_subscriptions WHERE endpoint = $1", endpoint); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain password behind every user CreateTestUser inserts.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT DO NOTHING",
		userID, email, strings.Split(email, "@")[0], testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

type EventFixture struct {
	Title         string
	Date          time.Time
	MaxCapacity   int
	Status        string
	AllowWaitlist bool
}

func DefaultEvent() EventFixture {
	return EventFixture{
		Title:         "Supper Club",
		Date:          time.Now().Add(7 * 24 * time.Hour),
		MaxCapacity:   10,
		Status:        "OPEN",
		AllowWaitlist: true,
	}
}

func CreateTestEvent(t *testing.T, db DBLike, chefID uuid.UUID, f EventFixture) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO events (id, chef_id, title, event_date, max_capacity, status, allow_waitlist) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		eventID, chefID, f.Title, f.Date, f.MaxCapacity, f.Status, f.AllowWaitlist)
	require.NoError(t, err)

	return eventID
}

func CreateTestReservation(t *testing.T, db DBLike, eventID, userID uuid.UUID, guests int, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, event_id, user_id, guest_count, status) VALUES ($1, $2, $3, $4, $5)",
		reservationID, eventID, userID, guests, status)
	require.NoError(t, err)

	return reservationID
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// SeedReferenceData is a hook for rows every test expects; the schema has none yet.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

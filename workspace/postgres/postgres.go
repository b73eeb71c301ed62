// Package postgres implements workspace.Store over a Postgres pool.
// Rows are scoped by user id; row-level security on the hosted
// backend is the real guard, the WHERE clauses here are the local one.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stubio/stubio-web/workspace"
)

const queryTimeout = 5 * time.Second

// Store reads workspace records from Postgres.
type Store struct {
	pool *pgxpool.Pool
}

var _ workspace.Store = (*Store)(nil)

// New connects a pool to databaseURL.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("[postgres.New] create pool: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// classify translates driver errors: an undefined relation becomes the
// soft workspace.MissingTableError, everything else is wrapped as-is.
func classify(err error, relation string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && workspace.IsMissingTableCode(pgErr.Code) {
		return &workspace.MissingTableError{Relation: relation, Code: pgErr.Code}
	}
	return fmt.Errorf("query %s: %w", relation, err)
}

func (s *Store) ProfileByUser(ctx context.Context, userID string) (*workspace.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p workspace.Profile
	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(full_name, ''), COALESCE(company_name, ''), COALESCE(timezone, '')
		FROM client_profiles
		WHERE user_id = $1`,
		userID,
	).Scan(&p.FullName, &p.CompanyName, &p.Timezone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "client_profiles")
	}
	return &p, nil
}

func (s *Store) OverviewByUser(ctx context.Context, userID string) (*workspace.Overview, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		o             workspace.Overview
		milestoneDate *time.Time
		updatedAt     *time.Time
	)
	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(project_status, ''), COALESCE(next_milestone, ''),
			next_milestone_date, COALESCE(last_update, ''), updated_at
		FROM client_overview
		WHERE user_id = $1`,
		userID,
	).Scan(&o.ProjectStatus, &o.NextMilestone, &milestoneDate, &o.LastUpdate, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "client_overview")
	}
	if milestoneDate != nil {
		o.NextMilestoneDate = *milestoneDate
	}
	if updatedAt != nil {
		o.UpdatedAt = *updatedAt
	}
	return &o, nil
}

func (s *Store) ResourcesByUser(ctx context.Context, userID string) ([]workspace.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, COALESCE(description, ''), COALESCE(category, ''), doc_url, created_at
		FROM workspace_resources
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, classify(err, "workspace_resources")
	}
	defer rows.Close()

	var resources []workspace.Resource
	for rows.Next() {
		var (
			r         workspace.Resource
			createdAt *time.Time
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.DocURL, &createdAt); err != nil {
			return nil, classify(err, "workspace_resources")
		}
		if createdAt != nil {
			r.CreatedAt = *createdAt
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "workspace_resources")
	}
	return resources, nil
}

func (s *Store) ReceiptsByUser(ctx context.Context, userID string, limit int) ([]workspace.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, COALESCE(description, ''), receipt_url, issued_at,
			COALESCE(amount, 0), COALESCE(currency, '')
		FROM payment_receipts
		WHERE user_id = $1
		ORDER BY issued_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, classify(err, "payment_receipts")
	}
	defer rows.Close()

	var receipts []workspace.Receipt
	for rows.Next() {
		var (
			r        workspace.Receipt
			issuedAt *time.Time
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.ReceiptURL, &issuedAt, &r.Amount, &r.Currency); err != nil {
			return nil, classify(err, "payment_receipts")
		}
		if issuedAt != nil {
			r.IssuedAt = *issuedAt
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "payment_receipts")
	}
	return receipts, nil
}

func (s *Store) UpcomingByUser(ctx context.Context, userID string) ([]workspace.UpcomingPayment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT id, description, amount, currency, due_date, status
		FROM upcoming_payments
		WHERE user_id = $1
		ORDER BY due_date ASC`,
		userID,
	)
	if err != nil {
		return nil, classify(err, "upcoming_payments")
	}
	defer rows.Close()

	var payments []workspace.UpcomingPayment
	for rows.Next() {
		var (
			p       workspace.UpcomingPayment
			dueDate *time.Time
		)
		if err := rows.Scan(&p.ID, &p.Description, &p.Amount, &p.Currency, &dueDate, &p.Status); err != nil {
			return nil, classify(err, "upcoming_payments")
		}
		if dueDate != nil {
			p.DueDate = *dueDate
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "upcoming_payments")
	}
	return payments, nil
}

func (s *Store) ResourceByID(ctx context.Context, userID, id string) (*workspace.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var r workspace.Resource
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, COALESCE(description, ''), COALESCE(category, ''), doc_url
		FROM workspace_resources
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.DocURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "workspace_resources")
	}
	return &r, nil
}

func (s *Store) ReceiptByID(ctx context.Context, userID, id string) (*workspace.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var r workspace.Receipt
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, COALESCE(description, ''), receipt_url
		FROM payment_receipts
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&r.ID, &r.Title, &r.Description, &r.ReceiptURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "payment_receipts")
	}
	return &r, nil
}

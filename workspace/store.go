package workspace

import (
	"context"
	"errors"
	"fmt"
)

// ReceiptsLimit caps how many receipts the workspace fetches.
const ReceiptsLimit = 6

// Store reads the five per-user collections. Implementations return
// (nil, nil) for single-row lookups with no row, and a
// *MissingTableError when the underlying relation is not provisioned.
type Store interface {
	ProfileByUser(ctx context.Context, userID string) (*Profile, error)
	OverviewByUser(ctx context.Context, userID string) (*Overview, error)
	ResourcesByUser(ctx context.Context, userID string) ([]Resource, error)
	ReceiptsByUser(ctx context.Context, userID string, limit int) ([]Receipt, error)
	UpcomingByUser(ctx context.Context, userID string) ([]UpcomingPayment, error)

	ResourceByID(ctx context.Context, userID, id string) (*Resource, error)
	ReceiptByID(ctx context.Context, userID, id string) (*Receipt, error)
}

// MissingTableError marks a query that failed because the relation is
// not provisioned yet. It is a soft condition: pages render with a
// setup banner instead of failing.
type MissingTableError struct {
	Relation string
	Code     string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("relation %q does not exist (%s)", e.Relation, e.Code)
}

// IsMissingTable reports whether err is the missing-relation condition.
// This predicate is the only place page logic learns about backend
// error signatures.
func IsMissingTable(err error) bool {
	var mte *MissingTableError
	return errors.As(err, &mte)
}

// IsMissingTableCode reports whether a raw backend error code is the
// missing-relation signature. Postgres reports SQLSTATE 42P01; hosted
// REST gateways report PGRST205 for the same condition.
func IsMissingTableCode(code string) bool {
	return code == "42P01" || code == "PGRST205"
}

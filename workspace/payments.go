package workspace

import (
	"sort"
	"time"
)

// PaymentKind tags where a past payment row came from.
type PaymentKind string

const (
	KindUpcoming PaymentKind = "upcoming"
	KindReceipt  PaymentKind = "receipt"
)

// PastPayment is a settled or lapsed payment row for the "past" table.
// Receipt-backed rows link to the document viewer; lapsed upcoming
// payments have no document.
type PastPayment struct {
	Kind     PaymentKind
	ID       string
	Title    string
	Amount   float64
	Currency string
	Date     time.Time
	Status   string
}

// LedgerEntry is one row of the unified, time-ordered payments view:
// future payments first (due ascending), then past payments (date
// descending).
type LedgerEntry struct {
	Key      string
	Kind     PaymentKind
	ID       string
	Title    string
	Amount   float64
	Currency string
	Date     time.Time
	Status   string
	Future   bool
}

// SplitPayments classifies upcoming payments against the start of
// now's day and folds receipts into the past list. Payments due today
// or later are future; everything else, including rows without a
// parseable due date, is past. Both orderings are stable: equal dates
// keep the input order of the upcoming-then-receipts concatenation,
// so re-running the split on unchanged input yields an identical
// result.
func SplitPayments(upcoming []UpcomingPayment, receipts []Receipt, now time.Time) (future []UpcomingPayment, past []PastPayment) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, item := range upcoming {
		if !item.DueDate.IsZero() && !item.DueDate.Before(today) {
			future = append(future, item)
			continue
		}
		past = append(past, PastPayment{
			Kind:     KindUpcoming,
			ID:       item.ID,
			Title:    item.Description,
			Amount:   item.Amount,
			Currency: item.Currency,
			Date:     item.DueDate,
			Status:   item.Status,
		})
	}

	for _, receipt := range receipts {
		past = append(past, PastPayment{
			Kind:     KindReceipt,
			ID:       receipt.ID,
			Title:    receipt.Title,
			Amount:   receipt.Amount,
			Currency: receipt.Currency,
			Date:     receipt.IssuedAt,
			Status:   "paid",
		})
	}

	sort.SliceStable(future, func(i, j int) bool {
		return future[i].DueDate.Before(future[j].DueDate)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date.After(past[j].Date)
	})

	return future, past
}

// BuildLedger concatenates future and past rows into the unified view.
func BuildLedger(future []UpcomingPayment, past []PastPayment) []LedgerEntry {
	ledger := make([]LedgerEntry, 0, len(future)+len(past))

	for _, item := range future {
		ledger = append(ledger, LedgerEntry{
			Key:      "future-" + item.ID,
			Kind:     KindUpcoming,
			ID:       item.ID,
			Title:    item.Description,
			Amount:   item.Amount,
			Currency: item.Currency,
			Date:     item.DueDate,
			Status:   item.Status,
			Future:   true,
		})
	}

	for _, item := range past {
		ledger = append(ledger, LedgerEntry{
			Key:      string(item.Kind) + "-" + item.ID,
			Kind:     item.Kind,
			ID:       item.ID,
			Title:    item.Title,
			Amount:   item.Amount,
			Currency: item.Currency,
			Date:     item.Date,
			Status:   item.Status,
		})
	}

	return ledger
}

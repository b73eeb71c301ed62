package workspace

import (
	"context"
	"sync"
	"time"
)

// Data is everything a workspace page render needs. SetupWarnings
// lists the missing-table conditions collected while loading; a
// non-empty list renders as a single setup banner.
type Data struct {
	Profile       *Profile
	Overview      *Overview
	Resources     []Resource
	Receipts      []Receipt
	Upcoming      []UpcomingPayment
	SetupWarnings []string
}

// Loader fetches the five collections for one user.
type Loader struct {
	store   Store
	nowTime func() time.Time
}

// LoaderOption modifies a Loader.
type LoaderOption func(*Loader)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) LoaderOption {
	return func(l *Loader) {
		l.nowTime = nowFunc
	}
}

// NewLoader creates a Loader over store.
func NewLoader(store Store, options ...LoaderOption) *Loader {
	l := &Loader{store: store, nowTime: time.Now}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Now returns the loader's clock reading.
func (l *Loader) Now() time.Time {
	return l.nowTime()
}

// Load runs the five queries concurrently; they have no ordering
// dependency on each other. Missing-table errors are downgraded to
// setup warnings; the first other error (in fixed query order) aborts
// the load.
func (l *Loader) Load(ctx context.Context, userID string) (*Data, error) {
	data := &Data{}
	errs := make([]error, 5)

	var wg sync.WaitGroup
	run := func(slot int, query func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[slot] = query()
		}()
	}

	run(0, func() (err error) {
		data.Profile, err = l.store.ProfileByUser(ctx, userID)
		return err
	})
	run(1, func() (err error) {
		data.Overview, err = l.store.OverviewByUser(ctx, userID)
		return err
	})
	run(2, func() (err error) {
		data.Resources, err = l.store.ResourcesByUser(ctx, userID)
		return err
	})
	run(3, func() (err error) {
		data.Receipts, err = l.store.ReceiptsByUser(ctx, userID, ReceiptsLimit)
		return err
	})
	run(4, func() (err error) {
		data.Upcoming, err = l.store.UpcomingByUser(ctx, userID)
		return err
	})
	wg.Wait()

	for _, err := range errs {
		if err == nil {
			continue
		}
		if IsMissingTable(err) {
			data.SetupWarnings = append(data.SetupWarnings, err.Error())
			continue
		}
		return nil, err
	}

	return data, nil
}

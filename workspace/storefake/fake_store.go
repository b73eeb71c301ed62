// Package storefake is an in-memory workspace.Store with per-query
// error injection for loader and handler tests, and doubles as the
// empty store when no database is configured.
package storefake

import (
	"context"
	"sync"

	"github.com/stubio/stubio-web/workspace"
)

var _ workspace.Store = (*FakeStore)(nil)

// FakeStore serves fixed records for a single user. Set the *Err
// fields to make individual queries fail.
type FakeStore struct {
	lock sync.RWMutex

	UserID    string
	Profile   *workspace.Profile
	Overview  *workspace.Overview
	Resources []workspace.Resource
	Receipts  []workspace.Receipt
	Upcoming  []workspace.UpcomingPayment

	ProfileErr   error
	OverviewErr  error
	ResourcesErr error
	ReceiptsErr  error
	UpcomingErr  error
}

// New returns an empty store.
func New() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) owns(userID string) bool {
	return f.UserID == "" || f.UserID == userID
}

func (f *FakeStore) ProfileByUser(_ context.Context, userID string) (*workspace.Profile, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	if !f.owns(userID) {
		return nil, nil
	}
	return f.Profile, nil
}

func (f *FakeStore) OverviewByUser(_ context.Context, userID string) (*workspace.Overview, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.OverviewErr != nil {
		return nil, f.OverviewErr
	}
	if !f.owns(userID) {
		return nil, nil
	}
	return f.Overview, nil
}

func (f *FakeStore) ResourcesByUser(_ context.Context, userID string) ([]workspace.Resource, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.ResourcesErr != nil {
		return nil, f.ResourcesErr
	}
	if !f.owns(userID) {
		return nil, nil
	}
	return f.Resources, nil
}

func (f *FakeStore) ReceiptsByUser(_ context.Context, userID string, limit int) ([]workspace.Receipt, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.ReceiptsErr != nil {
		return nil, f.ReceiptsErr
	}
	if !f.owns(userID) {
		return nil, nil
	}
	if limit > 0 && len(f.Receipts) > limit {
		return f.Receipts[:limit], nil
	}
	return f.Receipts, nil
}

func (f *FakeStore) UpcomingByUser(_ context.Context, userID string) ([]workspace.UpcomingPayment, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.UpcomingErr != nil {
		return nil, f.UpcomingErr
	}
	if !f.owns(userID) {
		return nil, nil
	}
	return f.Upcoming, nil
}

func (f *FakeStore) ResourceByID(_ context.Context, userID, id string) (*workspace.Resource, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.ResourcesErr != nil {
		return nil, f.ResourcesErr
	}
	if !f.owns(userID) {
		return nil, nil
	}
	for i := range f.Resources {
		if f.Resources[i].ID == id {
			return &f.Resources[i], nil
		}
	}
	return nil, nil
}

func (f *FakeStore) ReceiptByID(_ context.Context, userID, id string) (*workspace.Receipt, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.ReceiptsErr != nil {
		return nil, f.ReceiptsErr
	}
	if !f.owns(userID) {
		return nil, nil
	}
	for i := range f.Receipts {
		if f.Receipts[i].ID == id {
			return &f.Receipts[i], nil
		}
	}
	return nil, nil
}

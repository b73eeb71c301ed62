// Package workspace holds the per-client portal domain: the five
// read-only record collections owned by the hosted backend and the
// pure view transforms built on top of them.
package workspace

import "time"

// Profile is the client's contact card.
type Profile struct {
	FullName    string
	CompanyName string
	Timezone    string
}

// Overview is the current project status card.
type Overview struct {
	ProjectStatus     string
	NextMilestone     string
	NextMilestoneDate time.Time
	LastUpdate        string
	UpdatedAt         time.Time
}

// Resource is a shared project document.
type Resource struct {
	ID          string
	Title       string
	Description string
	Category    string
	DocURL      string
	CreatedAt   time.Time
}

// Receipt is a settled payment with a hosted receipt document.
type Receipt struct {
	ID          string
	Title       string
	Description string
	ReceiptURL  string
	IssuedAt    time.Time
	Amount      float64
	Currency    string
}

// UpcomingPayment is a scheduled payment. A zero DueDate means the
// backend row carried no parseable date.
type UpcomingPayment struct {
	ID          string
	Description string
	Amount      float64
	Currency    string
	DueDate     time.Time
	Status      string
}

package i18n

// SiteCopy is the full localized dictionary for one language.
type SiteCopy struct {
	Metadata   MetadataCopy
	Nav        NavCopy
	Hero       HeroCopy
	Services   ServicesCopy
	Comparison ComparisonCopy
	Process    ProcessCopy
	Stack      StackCopy
	FAQ        FAQCopy
	Booking    BookingCopy
	Footer     FooterCopy
	Login      LoginCopy
	Privacy    LegalCopy
	Terms      LegalCopy
	Workspace  WorkspaceCopy
	Document   DocumentCopy
}

type MetadataCopy struct {
	Title       string
	Description string
}

type NavCopy struct {
	HowWeWork string
	Projects  string
	FAQ       string
	Login     string
	Book      string
	Language  string
}

type HeroCopy struct {
	Badge        string
	Title        string
	Description  string
	PrimaryCTA   string
	SecondaryCTA string
	TrustLine    string
}

type ServiceItem struct {
	Title       string
	Description string
	Points      []string
}

type ServicesCopy struct {
	Title       string
	Description string
	Items       []ServiceItem
}

type ComparisonCopy struct {
	Title       string
	Description string
	BadTitle    string
	BadPoints   []string
	GoodTitle   string
	GoodPoints  []string
}

type ProcessStep struct {
	Title       string
	Description string
}

type ProcessCopy struct {
	Title       string
	Description string
	Steps       []ProcessStep
}

type StackCopy struct {
	Title       string
	Description string
	Tools       []string
}

type FAQItem struct {
	Question string
	Answer   string
}

type FAQCopy struct {
	Title string
	Items []FAQItem
}

type BookingCopy struct {
	Title       string
	Description string
	CTA         string
	EmbedTitle  string
}

type FooterCopy struct {
	City    string
	About   string
	Explore string
	Contact string
	Privacy string
	Terms   string
	Rights  string
}

type LoginCopy struct {
	Title    string
	Subtitle string
	Email    string
	Password string
	Submit   string
	DemoHint string
	Back     string

	// Localized messages for the closed login error enumeration.
	ErrorMissingCredentials string
	ErrorInvalidCredentials string
	ErrorServerError        string
}

type LegalCopy struct {
	Title   string
	Updated string
	Content string
}

type GreetingCopy struct {
	Morning   string
	Afternoon string
	Evening   string
}

type WorkspaceTabsCopy struct {
	Overview  string
	Resources string
	Payments  string
}

type WorkspaceOverviewCopy struct {
	Title      string
	Company    string
	Status     string
	Milestone  string
	Due        string
	LastUpdate string
	Empty      string
	Logout     string
}

type WorkspaceResourcesCopy struct {
	Title string
	Empty string
	Open  string
}

type PaymentStatusCopy struct {
	Scheduled string
	Pending   string
	Paid      string
	Overdue   string
	Unknown   string
}

type WorkspacePaymentsCopy struct {
	Title       string
	FutureTitle string
	PastTitle   string
	Empty       string
	ItemLabel   string
	DateLabel   string
	AmountLabel string
	OpenReceipt string
	DueLabel    string
	IssuedLabel string
	Statuses    PaymentStatusCopy
}

type WorkspaceCopy struct {
	Title        string
	Subtitle     string
	Tabs         WorkspaceTabsCopy
	Greeting     GreetingCopy
	Overview     WorkspaceOverviewCopy
	Resources    WorkspaceResourcesCopy
	Payments     WorkspacePaymentsCopy
	SetupWarning string
}

type DocumentCopy struct {
	Back         string
	IframeTitle  string
	OpenExternal string
}

var copyByLocale = map[Locale]*SiteCopy{
	LocaleEN: &copyEN,
	LocaleDA: &copyDA,
}

// Copy returns the dictionary for locale, falling back to the default.
func Copy(locale Locale) *SiteCopy {
	if c, ok := copyByLocale[locale]; ok {
		return c
	}
	return copyByLocale[DefaultLocale]
}

// PaymentStatusLabel maps a raw backend payment status to localized text.
func PaymentStatusLabel(status string, locale Locale) string {
	labels := Copy(locale).Workspace.Payments.Statuses
	switch status {
	case "scheduled":
		return labels.Scheduled
	case "pending":
		return labels.Pending
	case "paid":
		return labels.Paid
	case "overdue":
		return labels.Overdue
	default:
		return labels.Unknown
	}
}

// LoginErrorMessage maps a login error code to localized text. Unknown
// codes get the generic server-error message.
func LoginErrorMessage(code string, locale Locale) string {
	login := Copy(locale).Login
	switch code {
	case "missing_credentials":
		return login.ErrorMissingCredentials
	case "invalid_credentials":
		return login.ErrorInvalidCredentials
	default:
		return login.ErrorServerError
	}
}

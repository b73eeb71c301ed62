package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stubio/stubio-web/i18n"
	"github.com/stubio/stubio-web/site"
	"github.com/stubio/stubio-web/workspace"
)

type workspaceTab string

const (
	tabOverview  workspaceTab = "overview"
	tabResources workspaceTab = "resources"
	tabPayments  workspaceTab = "payments"
)

func normalizeTab(value string) workspaceTab {
	switch workspaceTab(value) {
	case tabResources, tabPayments:
		return workspaceTab(value)
	}
	return tabOverview
}

type tabView struct {
	Label  string
	Href   string
	Active bool
}

type overviewPanelView struct {
	Has        bool
	Company    string
	Status     string
	Milestone  string
	Due        string
	LastUpdate string
}

type resourceRowView struct {
	Title       string
	Description string
	Category    string
	CreatedText string
	Href        string
}

type paymentRowView struct {
	Title      string
	DateLabel  string
	DateText   string
	AmountText string
	StatusText string
	Href       string
}

type workspaceView struct {
	Locale           i18n.Locale
	Copy             *i18n.SiteCopy
	Info             site.Info
	Greeting         string
	ClientName       string
	ActiveTab        workspaceTab
	Tabs             []tabView
	ShowSetupWarning bool
	Overview         overviewPanelView
	Resources        []resourceRowView
	Future           []paymentRowView
	Past             []paymentRowView
	Ledger           []paymentRowView
}

// WorkspaceHandler renders the session-gated client portal. The
// server-side gate here and the probe-driven client guard are
// deliberately redundant layers.
func (s *Server) WorkspaceHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("workspace.html")
	if err != nil {
		panic("Failed to parse workspace template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := pathLocale(w, r)
		if !ok {
			return
		}

		user := s.currentUser(r)
		if user == nil {
			http.Redirect(w, r, fmt.Sprintf("/%s/login", locale), http.StatusSeeOther)
			return
		}

		data, err := s.loader.Load(r.Context(), user.ID)
		if err != nil {
			log.Err(err).Str("user", user.ID).Msg("Workspace load failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		copy := i18n.Copy(locale)
		activeTab := normalizeTab(r.URL.Query().Get("tab"))
		now := s.loader.Now()

		timezone := ""
		if data.Profile != nil {
			timezone = strings.TrimSpace(data.Profile.Timezone)
		}
		greeting := greetingText(copy.Workspace.Greeting, workspace.GreetingForHour(workspace.LocalHour(now, timezone)))

		future, past := workspace.SplitPayments(data.Upcoming, data.Receipts, now)
		ledger := workspace.BuildLedger(future, past)

		view := workspaceView{
			Locale:           locale,
			Copy:             copy,
			Info:             s.info,
			Greeting:         greeting,
			ClientName:       clientName(data.Profile, user.Email),
			ActiveTab:        activeTab,
			Tabs:             buildTabs(copy, locale, activeTab),
			ShowSetupWarning: len(data.SetupWarnings) > 0,
			Overview:         buildOverview(data, locale),
			Resources:        buildResources(data.Resources, copy, locale),
			Future:           buildFutureRows(future, copy, locale),
			Past:             buildPastRows(past, copy, locale),
			Ledger:           buildLedgerRows(ledger, copy, locale),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, view); err != nil {
			log.Err(err).Msg("Failed to render workspace template")
		}
	}
}

func greetingText(copy i18n.GreetingCopy, slot workspace.GreetingSlot) string {
	switch slot {
	case workspace.GreetingMorning:
		return copy.Morning
	case workspace.GreetingAfternoon:
		return copy.Afternoon
	default:
		return copy.Evening
	}
}

func clientName(profile *workspace.Profile, email string) string {
	if profile != nil {
		if name := strings.TrimSpace(profile.FullName); name != "" {
			return name
		}
		if name := strings.TrimSpace(profile.CompanyName); name != "" {
			return name
		}
	}
	if email != "" {
		return email
	}
	return "Client"
}

func buildTabs(copy *i18n.SiteCopy, locale i18n.Locale, active workspaceTab) []tabView {
	tabs := []struct {
		id    workspaceTab
		label string
	}{
		{tabOverview, copy.Workspace.Tabs.Overview},
		{tabResources, copy.Workspace.Tabs.Resources},
		{tabPayments, copy.Workspace.Tabs.Payments},
	}

	views := make([]tabView, 0, len(tabs))
	for _, tab := range tabs {
		views = append(views, tabView{
			Label:  tab.label,
			Href:   fmt.Sprintf("/%s/workspace?tab=%s", locale, tab.id),
			Active: tab.id == active,
		})
	}
	return views
}

func buildOverview(data *workspace.Data, locale i18n.Locale) overviewPanelView {
	view := overviewPanelView{}
	if data.Profile != nil {
		view.Company = data.Profile.CompanyName
	}
	if data.Overview == nil {
		return view
	}

	view.Has = true
	view.Status = data.Overview.ProjectStatus
	view.Milestone = data.Overview.NextMilestone
	view.Due = i18n.FormatDate(data.Overview.NextMilestoneDate, locale)
	view.LastUpdate = data.Overview.LastUpdate
	return view
}

func buildResources(resources []workspace.Resource, copy *i18n.SiteCopy, locale i18n.Locale) []resourceRowView {
	views := make([]resourceRowView, 0, len(resources))
	for _, resource := range resources {
		views = append(views, resourceRowView{
			Title:       resource.Title,
			Description: resource.Description,
			Category:    resource.Category,
			CreatedText: i18n.FormatDate(resource.CreatedAt, locale),
			Href:        fmt.Sprintf("/%s/workspace/document/resource/%s", locale, resource.ID),
		})
	}
	return views
}

func buildFutureRows(future []workspace.UpcomingPayment, copy *i18n.SiteCopy, locale i18n.Locale) []paymentRowView {
	rows := make([]paymentRowView, 0, len(future))
	for _, item := range future {
		rows = append(rows, paymentRowView{
			Title:      item.Description,
			DateLabel:  copy.Workspace.Payments.DueLabel,
			DateText:   i18n.FormatDate(item.DueDate, locale),
			AmountText: i18n.FormatAmount(item.Amount, item.Currency, locale),
			StatusText: i18n.PaymentStatusLabel(item.Status, locale),
		})
	}
	return rows
}

func buildPastRows(past []workspace.PastPayment, copy *i18n.SiteCopy, locale i18n.Locale) []paymentRowView {
	rows := make([]paymentRowView, 0, len(past))
	for _, item := range past {
		rows = append(rows, pastRow(item, copy, locale))
	}
	return rows
}

func buildLedgerRows(ledger []workspace.LedgerEntry, copy *i18n.SiteCopy, locale i18n.Locale) []paymentRowView {
	rows := make([]paymentRowView, 0, len(ledger))
	for _, entry := range ledger {
		row := paymentRowView{
			Title:      entry.Title,
			DateLabel:  copy.Workspace.Payments.DueLabel,
			DateText:   i18n.FormatDate(entry.Date, locale),
			AmountText: i18n.FormatAmount(entry.Amount, entry.Currency, locale),
			StatusText: i18n.PaymentStatusLabel(entry.Status, locale),
		}
		if entry.Kind == workspace.KindReceipt {
			row.DateLabel = copy.Workspace.Payments.IssuedLabel
			row.Href = fmt.Sprintf("/%s/workspace/document/receipt/%s", locale, entry.ID)
		}
		rows = append(rows, row)
	}
	return rows
}

func pastRow(item workspace.PastPayment, copy *i18n.SiteCopy, locale i18n.Locale) paymentRowView {
	row := paymentRowView{
		Title:      item.Title,
		DateLabel:  copy.Workspace.Payments.DueLabel,
		DateText:   i18n.FormatDate(item.Date, locale),
		AmountText: i18n.FormatAmount(item.Amount, item.Currency, locale),
		StatusText: i18n.PaymentStatusLabel(item.Status, locale),
	}
	if item.Kind == workspace.KindReceipt {
		row.DateLabel = copy.Workspace.Payments.IssuedLabel
		row.Href = fmt.Sprintf("/%s/workspace/document/receipt/%s", locale, item.ID)
	}
	return row
}

type documentView struct {
	Locale   i18n.Locale
	Copy     *i18n.SiteCopy
	Info     site.Info
	Title    string
	Category string
	DocURL   string
	BackHref string
}

// DocumentHandler renders the embedded document viewer for a resource
// or receipt. Records belonging to other users are a plain 404.
func (s *Server) DocumentHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("document.html")
	if err != nil {
		panic("Failed to parse document template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := pathLocale(w, r)
		if !ok {
			return
		}

		user := s.currentUser(r)
		if user == nil {
			http.Redirect(w, r, fmt.Sprintf("/%s/login", locale), http.StatusSeeOther)
			return
		}

		id := r.PathValue("id")
		view := documentView{
			Locale: locale,
			Copy:   i18n.Copy(locale),
			Info:   s.info,
		}

		switch r.PathValue("kind") {
		case "resource":
			resource, err := s.store.ResourceByID(r.Context(), user.ID, id)
			if err != nil || resource == nil {
				if err != nil {
					log.Err(err).Str("id", id).Msg("Resource lookup failed")
				}
				http.NotFound(w, r)
				return
			}
			view.Title = resource.Title
			view.Category = resource.Category
			view.DocURL = resource.DocURL
			view.BackHref = fmt.Sprintf("/%s/workspace?tab=resources", locale)

		case "receipt":
			receipt, err := s.store.ReceiptByID(r.Context(), user.ID, id)
			if err != nil || receipt == nil {
				if err != nil {
					log.Err(err).Str("id", id).Msg("Receipt lookup failed")
				}
				http.NotFound(w, r)
				return
			}
			view.Title = receipt.Title
			view.DocURL = receipt.ReceiptURL
			view.BackHref = fmt.Sprintf("/%s/workspace?tab=payments", locale)

		default:
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, view); err != nil {
			log.Err(err).Msg("Failed to render document template")
		}
	}
}

package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
)

const emptyValue = "—"

var dateLayouts = map[Locale]string{
	LocaleEN: "Jan 2, 2006",
	LocaleDA: "2. Jan 2006",
}

// FormatDate renders a date for display; zero dates render as a dash.
func FormatDate(t time.Time, locale Locale) string {
	if t.IsZero() {
		return emptyValue
	}
	layout, ok := dateLayouts[locale]
	if !ok {
		layout = dateLayouts[DefaultLocale]
	}
	return t.Format(layout)
}

// FormatAmount renders a currency amount for display. Unknown currency
// codes fall back to a plain "amount CODE" rendering.
func FormatAmount(amount float64, code string, locale Locale) string {
	if code == "" {
		return emptyValue
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}

	printer := message.NewPrinter(Tag(locale))
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

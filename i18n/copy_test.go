package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stubio/stubio-web/i18n"
)

func TestCopy(t *testing.T) {
	t.Run("locales differ", func(t *testing.T) {
		en := i18n.Copy(i18n.LocaleEN)
		da := i18n.Copy(i18n.LocaleDA)

		require.NotEqual(t, en.Hero.Title, da.Hero.Title)
		require.NotEqual(t, en.Login.Submit, da.Login.Submit)
	})

	t.Run("unknown locale falls back to default", func(t *testing.T) {
		require.Equal(t, i18n.Copy(i18n.DefaultLocale), i18n.Copy(i18n.Locale("fr")))
	})

	t.Run("both dictionaries are complete for the workspace", func(t *testing.T) {
		for _, locale := range []i18n.Locale{i18n.LocaleEN, i18n.LocaleDA} {
			c := i18n.Copy(locale)
			require.NotEmpty(t, c.Workspace.Tabs.Overview, locale)
			require.NotEmpty(t, c.Workspace.Tabs.Resources, locale)
			require.NotEmpty(t, c.Workspace.Tabs.Payments, locale)
			require.NotEmpty(t, c.Workspace.Greeting.Morning, locale)
			require.NotEmpty(t, c.Workspace.Greeting.Afternoon, locale)
			require.NotEmpty(t, c.Workspace.Greeting.Evening, locale)
			require.NotEmpty(t, c.Workspace.SetupWarning, locale)
		}
	})
}

func TestPaymentStatusLabel(t *testing.T) {
	en := i18n.Copy(i18n.LocaleEN).Workspace.Payments.Statuses

	require.Equal(t, en.Scheduled, i18n.PaymentStatusLabel("scheduled", i18n.LocaleEN))
	require.Equal(t, en.Pending, i18n.PaymentStatusLabel("pending", i18n.LocaleEN))
	require.Equal(t, en.Paid, i18n.PaymentStatusLabel("paid", i18n.LocaleEN))
	require.Equal(t, en.Overdue, i18n.PaymentStatusLabel("overdue", i18n.LocaleEN))
	require.Equal(t, en.Unknown, i18n.PaymentStatusLabel("mystery", i18n.LocaleEN))
}

func TestLoginErrorMessage(t *testing.T) {
	login := i18n.Copy(i18n.LocaleDA).Login

	require.Equal(t, login.ErrorMissingCredentials, i18n.LoginErrorMessage("missing_credentials", i18n.LocaleDA))
	require.Equal(t, login.ErrorInvalidCredentials, i18n.LoginErrorMessage("invalid_credentials", i18n.LocaleDA))
	require.Equal(t, login.ErrorServerError, i18n.LoginErrorMessage("server_error", i18n.LocaleDA))
	require.Equal(t, login.ErrorServerError, i18n.LoginErrorMessage("bogus", i18n.LocaleDA))
}

package site_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stubio/stubio-web/site"
)

func TestCalendlyEmbedURL(t *testing.T) {
	base := "https://calendly.com/team-stubio/meeting"

	t.Run("light theme", func(t *testing.T) {
		got := site.CalendlyEmbedURL(base, false, "stubio.dk")

		parsed, err := url.Parse(got)
		require.NoError(t, err)

		query := parsed.Query()
		require.Equal(t, "1", query.Get("hide_event_type_details"))
		require.Equal(t, "1", query.Get("hide_gdpr_banner"))
		require.Equal(t, "Inline", query.Get("embed_type"))
		require.Equal(t, "stubio.dk", query.Get("embed_domain"))
		require.Equal(t, "ffffff", query.Get("background_color"))
		require.Equal(t, "27312c", query.Get("text_color"))
		require.Equal(t, "288f53", query.Get("primary_color"))
	})

	t.Run("dark theme", func(t *testing.T) {
		got := site.CalendlyEmbedURL(base, true, "")

		parsed, err := url.Parse(got)
		require.NoError(t, err)

		query := parsed.Query()
		require.Equal(t, "0b1612", query.Get("background_color"))
		require.Equal(t, "e5f5ed", query.Get("text_color"))
		require.Equal(t, "36bf84", query.Get("primary_color"))
		require.Empty(t, query.Get("embed_domain"))
	})

	t.Run("existing query parameters survive", func(t *testing.T) {
		got := site.CalendlyEmbedURL(base+"?custom=1", false, "")

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		require.Equal(t, "1", parsed.Query().Get("custom"))
	})

	t.Run("invalid url is returned unchanged", func(t *testing.T) {
		bad := "http://%zz"
		require.Equal(t, bad, site.CalendlyEmbedURL(bad, false, ""))
	})
}

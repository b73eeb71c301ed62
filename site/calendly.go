package site

import "net/url"

// CalendlyEmbedURL themes a Calendly event URL for inline embedding.
// Invalid base URLs are returned unchanged so the embed degrades to
// Calendly's own defaults instead of breaking the page.
func CalendlyEmbedURL(baseURL string, dark bool, embedDomain string) string {
	themed, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}

	query := themed.Query()
	query.Set("hide_event_type_details", "1")
	query.Set("hide_gdpr_banner", "1")
	query.Set("embed_type", "Inline")
	if embedDomain != "" {
		query.Set("embed_domain", embedDomain)
	}

	if dark {
		query.Set("background_color", "0b1612")
		query.Set("text_color", "e5f5ed")
		query.Set("primary_color", "36bf84")
	} else {
		query.Set("background_color", "ffffff")
		query.Set("text_color", "27312c")
		query.Set("primary_color", "288f53")
	}

	themed.RawQuery = query.Encode()
	return themed.String()
}

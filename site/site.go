// Package site holds studio-wide facts used across pages.
package site

// Info is the studio contact card rendered in headers and footers.
type Info struct {
	Name        string
	Description string
	City        string
	Email       string
	Phone       string
	LinkedInURL string
	CalendlyURL string
	URL         string
}

// Default is the production studio configuration.
var Default = Info{
	Name:        "Stubio",
	Description: "A digital product studio based in Copenhagen",
	City:        "Copenhagen",
	Email:       "kasper@stubio.dk",
	Phone:       "+45 42 67 05 33",
	LinkedInURL: "https://www.linkedin.com/company/stubio",
	CalendlyURL: "https://calendly.com/team-stubio/meeting?hide_event_type_details=1&hide_gdpr_banner=1&text_color=27312c&primary_color=288f53",
	URL:         "https://stubio.dk",
}

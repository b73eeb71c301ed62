package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stubio/stubio-web/i18n"
	"github.com/stubio/stubio-web/site"
)

// pathLocale validates the {locale} path segment; invalid locales are
// a 404, not a fallback, so typo URLs don't silently serve English.
func pathLocale(w http.ResponseWriter, r *http.Request) (i18n.Locale, bool) {
	value := r.PathValue("locale")
	if !i18n.IsLocale(value) {
		http.NotFound(w, r)
		return "", false
	}
	return i18n.Locale(value), true
}

func altLocale(locale i18n.Locale) i18n.Locale {
	if locale == i18n.LocaleDA {
		return i18n.LocaleEN
	}
	return i18n.LocaleDA
}

// RootHandler negotiates a locale from Accept-Language and redirects
// to the localized landing page.
func (s *Server) RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := i18n.Match(r.Header.Get("Accept-Language"))
		http.Redirect(w, r, "/"+string(locale), http.StatusSeeOther)
	}
}

type landingView struct {
	Locale      i18n.Locale
	AltLocale   i18n.Locale
	Copy        *i18n.SiteCopy
	Info        site.Info
	CalendlyURL string
}

// LandingHandler renders the marketing page for a locale.
func (s *Server) LandingHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("landing.html")
	if err != nil {
		panic("Failed to parse landing template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := pathLocale(w, r)
		if !ok {
			return
		}

		view := landingView{
			Locale:      locale,
			AltLocale:   altLocale(locale),
			Copy:        i18n.Copy(locale),
			Info:        s.info,
			CalendlyURL: site.CalendlyEmbedURL(s.info.CalendlyURL, false, r.Host),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, view); err != nil {
			log.Err(err).Msg("Failed to render landing template")
		}
	}
}

type loginPageView struct {
	Locale       i18n.Locale
	Copy         *i18n.SiteCopy
	Info         site.Info
	ErrorMessage string
	Email        string
}

// LoginPageHandler serves the login form. The error code and submitted
// email arrive as query parameters from a failed POST /auth/login.
// Already-authenticated visitors go straight to the workspace.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := pathLocale(w, r)
		if !ok {
			return
		}

		if s.currentUser(r) != nil {
			http.Redirect(w, r, fmt.Sprintf("/%s/workspace?tab=overview", locale), http.StatusSeeOther)
			return
		}

		view := loginPageView{
			Locale: locale,
			Copy:   i18n.Copy(locale),
			Info:   s.info,
			Email:  r.URL.Query().Get("email"),
		}
		if code := r.URL.Query().Get("error"); isLoginErrorCode(code) {
			view.ErrorMessage = i18n.LoginErrorMessage(code, locale)
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, view); err != nil {
			log.Err(err).Msg("Failed to render login template")
		}
	}
}

type legalKind int

const (
	legalPrivacy legalKind = iota
	legalTerms
)

type legalView struct {
	Locale i18n.Locale
	Copy   *i18n.SiteCopy
	Info   site.Info
	Legal  i18n.LegalCopy
}

// LegalHandler renders the privacy or terms page.
func (s *Server) LegalHandler(kind legalKind) http.HandlerFunc {
	tmpl, err := ParseTemplate("legal.html")
	if err != nil {
		panic("Failed to parse legal template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := pathLocale(w, r)
		if !ok {
			return
		}

		copy := i18n.Copy(locale)
		legal := copy.Privacy
		if kind == legalTerms {
			legal = copy.Terms
		}

		view := legalView{
			Locale: locale,
			Copy:   copy,
			Info:   s.info,
			Legal:  legal,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, view); err != nil {
			log.Err(err).Msg("Failed to render legal template")
		}
	}
}

package server

import "net/http"

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.RootHandler())

	// Marketing pages (locale-prefixed)
	s.RegisterRouteHandler("GET /{locale}", ChainMiddleware(s.LandingHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET /{locale}/login", ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET /{locale}/privacy", ChainMiddleware(s.LegalHandler(legalPrivacy), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET /{locale}/terms", ChainMiddleware(s.LegalHandler(legalTerms), s.HTMLMiddleware()...))

	// Workspace pages (session-gated inside the handlers)
	s.RegisterRouteHandler("GET /{locale}/workspace", ChainMiddleware(s.WorkspaceHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET /{locale}/workspace/document/{kind}/{id}", ChainMiddleware(s.DocumentHandler(), s.HTMLMiddleware()...))

	// Auth endpoints
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthSession, ChainMiddleware(s.SessionProbeHandler(), s.APIMiddleware()...))

	// Static assets (CSS, guard script)
	s.RegisterRouteHandler("GET /static/", http.StripPrefix("/static/", s.fileServer))
}

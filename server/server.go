package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/stubio/stubio-web/internal/config"
	"github.com/stubio/stubio-web/provider"
	"github.com/stubio/stubio-web/site"
	"github.com/stubio/stubio-web/workspace"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	fileServer http.Handler
	config     config.Config
	info       site.Info

	// provider is nil when the hosted backend is unconfigured outside
	// DEV; handlers then collapse to server_error / 401.
	provider provider.Provider
	loader   *workspace.Loader
	store    workspace.Store
}

// Option modifies a Server.
type Option func(*Server)

// WithSiteInfo overrides the studio contact card (primarily for testing).
func WithSiteInfo(info site.Info) Option {
	return func(s *Server) {
		s.info = info
	}
}

// WithLoader overrides the workspace loader (primarily for testing, to
// inject a fixed clock).
func WithLoader(loader *workspace.Loader) Option {
	return func(s *Server) {
		s.loader = loader
	}
}

func New(cfg config.Config, authProvider provider.Provider, store workspace.Store, options ...Option) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		info:     site.Default,
		provider: authProvider,
		store:    store,
		loader:   workspace.NewLoader(store),
	}
	s.env = cfg.GetEnv()
	s.fileServer = FileServerHandler()

	for _, opt := range options {
		opt(s)
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

func logRouteError(method, path, error string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	errorString := Red + error + ResetColor
	log.Printf("[%-19s] %s %s\n", displayMethod, path, errorString)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}

package server

// Auth endpoints. Pages are locale-prefixed and routed with wildcards.
const (
	RouteAuthLogin   = "/auth/login"
	RouteAuthLogout  = "/auth/logout"
	RouteAuthSession = "/auth/session"
)

// clientRequestHeader marks programmatic callers; they get JSON
// responses instead of redirects on the login route.
const (
	clientRequestHeader = "X-Stubio-Client"
	clientRequestValue  = "1"
)

// loginErrorCode is the closed login error enumeration. No other
// values are ever produced.
type loginErrorCode string

const (
	errMissingCredentials loginErrorCode = "missing_credentials"
	errInvalidCredentials loginErrorCode = "invalid_credentials"
	errServerError        loginErrorCode = "server_error"
)

func isLoginErrorCode(value string) bool {
	switch loginErrorCode(value) {
	case errMissingCredentials, errInvalidCredentials, errServerError:
		return true
	}
	return false
}

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

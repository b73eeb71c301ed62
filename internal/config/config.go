package config

type Config interface {
	EnvConfig
	CorsConfig
	ProviderConfig
	StoreConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type ProviderConfig interface {
	GetProviderURL() string
	GetProviderKey() string
	// ProviderConfigured reports whether the hosted auth backend is
	// reachable in principle. Handlers collapse everything to
	// server_error / 401 when it is not.
	ProviderConfigured() bool
	GetLocalAuthSecret() string
}

type StoreConfig interface {
	GetDatabaseURL() string
}

type mainConfig struct {
	EnvVars
	Cors
	Provider
	Store
}

func New() Config {
	return mainConfig{}
}

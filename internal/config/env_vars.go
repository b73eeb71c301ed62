package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar    = "PORT"
	appNameVar    = "APP_NAME"
	providerURL   = "AUTH_PROVIDER_URL"
	providerKey   = "AUTH_PROVIDER_KEY"
	localSecret   = "LOCAL_AUTH_SECRET"
	databaseURL   = "DATABASE_URL"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Stubio")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

type Provider struct{}

var _ ProviderConfig = Provider{}

func (Provider) GetProviderURL() string {
	return GetEnv(providerURL, "")
}

func (Provider) GetProviderKey() string {
	return GetEnv(providerKey, "")
}

func (p Provider) ProviderConfigured() bool {
	return p.GetProviderURL() != "" && p.GetProviderKey() != ""
}

func (Provider) GetLocalAuthSecret() string {
	return GetEnv(localSecret, "dev-only-secret")
}

type Store struct{}

var _ StoreConfig = Store{}

func (Store) GetDatabaseURL() string {
	return GetEnv(databaseURL, "")
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

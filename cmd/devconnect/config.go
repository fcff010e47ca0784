package main

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the process configuration, loaded from the environment.
type AppConfig struct {
	Server      ServerConfig      `envPrefix:"SERVER_"`
	Auth        AuthConfig        `envPrefix:"AUTH_"`
	Persistence PersistenceConfig `envPrefix:"DB_"`
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type ServerConfig struct {
	Address string `env:"ADDRESS" envDefault:":3000"`
	Debug   bool   `env:"DEBUG" envDefault:"false"`
}

// AuthConfig carries the token options. Tokens default to a 100 hour
// lifetime, matching the long lived sessions the original clients expect.
type AuthConfig struct {
	SigningKey      string   `env:"SIGNING_KEY" envDefault:"mysecrettoken"`
	SigningMethod   string   `env:"SIGNING_METHOD" envDefault:"HS256"`
	ContextKey      string   `env:"CONTEXT_KEY" envDefault:"user"`
	TokenExpiration int      `env:"TOKEN_EXPIRATION" envDefault:"100"`
	TokenLookup     string   `env:"TOKEN_LOOKUP" envDefault:"header:Authorization"`
	AuthScheme      string   `env:"SCHEME" envDefault:"Bearer"`
	Issuer          string   `env:"ISSUER" envDefault:"devconnect"`
	Audience        []string `env:"AUDIENCE" envDefault:"devconnect"`
}

func (c AuthConfig) GetSigningKey() string    { return c.SigningKey }
func (c AuthConfig) GetSigningMethod() string { return c.SigningMethod }
func (c AuthConfig) GetContextKey() string    { return c.ContextKey }
func (c AuthConfig) GetTokenExpiration() int  { return c.TokenExpiration }
func (c AuthConfig) GetTokenLookup() string   { return c.TokenLookup }
func (c AuthConfig) GetAuthScheme() string    { return c.AuthScheme }
func (c AuthConfig) GetIssuer() string        { return c.Issuer }
func (c AuthConfig) GetAudience() []string    { return c.Audience }

type PersistenceConfig struct {
	Driver      string        `env:"DRIVER" envDefault:"sqlite"`
	Dialect     string        `env:"DIALECT" envDefault:"sqlite"`
	DSN         string        `env:"DSN" envDefault:"file:devconnect.db?cache=shared&_pragma=foreign_keys(1)"`
	Debug       bool          `env:"DEBUG" envDefault:"false"`
	PingTimeout time.Duration `env:"PING_TIMEOUT" envDefault:"5s"`
}

func (c PersistenceConfig) GetDriver() string             { return c.Driver }
func (c PersistenceConfig) GetDialect() string            { return c.Dialect }
func (c PersistenceConfig) GetDSN() string                { return c.DSN }
func (c PersistenceConfig) GetDebug() bool                { return c.Debug }
func (c PersistenceConfig) GetPingTimeout() time.Duration { return c.PingTimeout }
func (c PersistenceConfig) GetServer() string             { return "" }
func (c PersistenceConfig) GetOtelIdentifier() string     { return "" }

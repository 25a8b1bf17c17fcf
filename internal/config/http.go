package config

import "time"

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:""`
	Address string  `env:"ADDRESS,expand" envDefault:":3002"`
	Session Session `envPrefix:"SESSION_"`
	Authn   Authn   `envPrefix:"AUTHN_"`
}

type Session struct {
	Keys   []string `env:"KEYS,expand"`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
}

type Authn struct {
	Providers AuthnProviders `envPrefix:"PROVIDERS_"`
}

type AuthnProviders struct {
	Google OAuthProvider `envPrefix:"GOOGLE_"`
	Github OAuthProvider `envPrefix:"GITHUB_"`
	OIDC   OIDCProvider  `envPrefix:"OIDC_"`
}

type OAuthProvider struct {
	Key    string   `env:"KEY,expand"`
	Secret string   `env:"SECRET,expand"`
	Scopes []string `env:"SCOPES,expand"`
}

type OIDCProvider struct {
	OAuthProvider
	DiscoveryURL string `env:"DISCOVERY_URL,expand"`
	Label        string `env:"LABEL,expand" envDefault:"OpenID Connect"`
	Icon         string `env:"ICON,expand" envDefault:"fa-openid"`
}

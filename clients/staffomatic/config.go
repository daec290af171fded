package staffomatic

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	Version = "0.1.0"

	DefaultAPIEndpoint = "https://api.staffomaticapp.com/v3/"
	DefaultWebEndpoint = "https://staffomaticapp.com/"
	DefaultUserAgent   = "staffomatic-go/" + Version

	authorizePath   = "login/oauth/authorize"
	accessTokenPath = "login/oauth/access_token"
)

// ClientConfig holds the settings of a staffomatic client. Email and Password
// enable basic authentication, AccessToken enables bearer authentication.
// ClientID and ClientSecret identify the OAuth application.
type ClientConfig struct {
	APIEndpoint  string        `json:"apiEndpoint" envconfig:"STAFFOMATIC_API_ENDPOINT" default:"https://api.staffomaticapp.com/v3/"`
	WebEndpoint  string        `json:"webEndpoint" envconfig:"STAFFOMATIC_WEB_ENDPOINT" default:"https://staffomaticapp.com/"`
	Login        string        `json:"login" envconfig:"STAFFOMATIC_LOGIN"`
	Email        string        `json:"email" envconfig:"STAFFOMATIC_EMAIL"`
	Password     string        `json:"-" envconfig:"STAFFOMATIC_PASSWORD"`
	AccessToken  string        `json:"-" envconfig:"STAFFOMATIC_ACCESS_TOKEN"`
	ClientID     string        `json:"clientId" envconfig:"STAFFOMATIC_CLIENT_ID"`
	ClientSecret string        `json:"-" envconfig:"STAFFOMATIC_CLIENT_SECRET"`
	UserAgent    string        `json:"userAgent" envconfig:"STAFFOMATIC_USER_AGENT" default:"staffomatic-go/0.1.0"`
	PerPage      int           `json:"perPage" envconfig:"STAFFOMATIC_PER_PAGE"`
	Timeout      time.Duration `json:"timeout" envconfig:"STAFFOMATIC_TIMEOUT" default:"30s"`
}

// NewClientConfig returns a config holding the default endpoints
func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		APIEndpoint: DefaultAPIEndpoint,
		WebEndpoint: DefaultWebEndpoint,
		UserAgent:   DefaultUserAgent,
		Timeout:     30 * time.Second,
	}
}

// NewClientConfigFromEnv reads the STAFFOMATIC_* environment variables
func NewClientConfigFromEnv() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "unable to load staffomatic config from environment")
	}
	return cfg, nil
}

func (c *ClientConfig) basicAuthenticated() bool {
	return c.Email != "" && c.Password != ""
}

func (c *ClientConfig) tokenAuthenticated() bool {
	return c.AccessToken != ""
}

// login is the configured login, the email is used when no login is set
func (c *ClientConfig) login() string {
	if c.Login != "" {
		return c.Login
	}
	return c.Email
}

func (c *ClientConfig) webEndpoint() string {
	endpoint := c.WebEndpoint
	if endpoint == "" {
		endpoint = DefaultWebEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return endpoint
}

// AccessTokenURL is the endpoint an OAuth code is exchanged against
func (c *ClientConfig) AccessTokenURL() string {
	return c.webEndpoint() + accessTokenPath
}

// OAuth2Config returns the oauth2 configuration of the web application flow
func (c *ClientConfig) OAuth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.webEndpoint() + authorizePath,
			TokenURL:  c.AccessTokenURL(),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizeURL is the page users are sent to in order to grant the
// application access. The code it redirects with goes to ExchangeCodeForToken.
func (c *ClientConfig) AuthorizeURL(redirectURL, state string) string {
	return c.OAuth2Config(redirectURL).AuthCodeURL(state)
}

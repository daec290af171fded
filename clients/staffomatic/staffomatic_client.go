package staffomatic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/staffomatic/staffomatic-go/common/logging"
	"github.com/staffomatic/staffomatic-go/schema"
)

//go:generate mockgen -source=./staffomatic_client.go -destination=./client_mock.go -package staffomatic ClientInterface
type (
	ClientInterface interface {
		Login() string
		UserAuthenticated() bool
		ClientID() string
		ClientSecret() string
		WebEndpoint() string
		AuthorizeURL(redirectURL, state string) string

		ListUsers(opts *ListUsersOptions) *PageIterator[schema.User]
		ListAllUsers(ctx context.Context, opts *ListUsersOptions) ([]schema.User, error)
		GetUser(ctx context.Context, id string) (*schema.User, error)
		GetUserResource(ctx context.Context, user, resource string) (json.RawMessage, error)
		ExchangeCodeForToken(ctx context.Context, code, appID, appSecret string) (*schema.AccessToken, error)
		ValidateCredentials(ctx context.Context, credentials schema.Credentials) (bool, error)
		UpdateUser(ctx context.Context, update schema.UserUpdate) (*schema.User, error)
	}

	Client struct {
		rest       *resty.Client // shared by every request of this client
		httpClient *http.Client  // store a reference to the http client so derived clients can reuse it
		config     *ClientConfig // Configuration for the client
		log        *log.Entry
	}

	ClientBuilder struct {
		httpClient *http.Client
		config     *ClientConfig
		log        *log.Entry
	}
)

var _ ClientInterface = &Client{}

func NewStaffomaticClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		config: NewClientConfig(),
	}
}

// WithHost sets the API endpoint
func (b *ClientBuilder) WithHost(host string) *ClientBuilder {
	b.config.APIEndpoint = host
	return b
}

// WithWebEndpoint sets the endpoint of the OAuth web application flow
func (b *ClientBuilder) WithWebEndpoint(endpoint string) *ClientBuilder {
	b.config.WebEndpoint = endpoint
	return b
}

// WithHTTPClient set the HTTP client
func (b *ClientBuilder) WithHTTPClient(httpClient *http.Client) *ClientBuilder {
	b.httpClient = httpClient
	return b
}

// WithLogger sets the logger requests are logged to
func (b *ClientBuilder) WithLogger(logger *log.Entry) *ClientBuilder {
	b.log = logger
	return b
}

// WithCredentials sets the email and password used for basic authentication
func (b *ClientBuilder) WithCredentials(email, password string) *ClientBuilder {
	b.config.Email = email
	b.config.Password = password
	return b
}

// WithAccessToken sets the OAuth access token used for bearer authentication
func (b *ClientBuilder) WithAccessToken(token string) *ClientBuilder {
	b.config.AccessToken = token
	return b
}

// WithApplication sets the OAuth application id and secret
func (b *ClientBuilder) WithApplication(clientID, clientSecret string) *ClientBuilder {
	b.config.ClientID = clientID
	b.config.ClientSecret = clientSecret
	return b
}

// WithConfig sets the whole config. Empty endpoints keep their defaults.
func (b *ClientBuilder) WithConfig(val *ClientConfig) *ClientBuilder {
	cfg := *val
	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = b.config.APIEndpoint
	}
	if cfg.WebEndpoint == "" {
		cfg.WebEndpoint = b.config.WebEndpoint
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = b.config.UserAgent
	}
	b.config = &cfg
	return b
}

// Build return client from builder
func (b *ClientBuilder) Build() *Client {
	if _, err := url.ParseRequestURI(b.config.APIEndpoint); err != nil {
		panic("staffomaticClient requires a valid host, got " + b.config.APIEndpoint)
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.config.Timeout}
	}
	logger := b.log
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	logger = logger.WithField("component", "staffomatic")

	rest := resty.NewWithClient(httpClient).
		SetLogger(logger).
		SetBaseURL(strings.TrimRight(b.config.APIEndpoint, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", b.config.UserAgent)
	switch {
	case b.config.basicAuthenticated():
		rest.SetBasicAuth(b.config.Email, b.config.Password)
	case b.config.tokenAuthenticated():
		rest.SetAuthToken(b.config.AccessToken)
	}

	return &Client{
		rest:       rest,
		httpClient: httpClient,
		config:     b.config,
		log:        logger,
	}
}

// NewStaffomaticClientFromEnv read the config from the environment variables
func NewStaffomaticClientFromEnv(httpClient *http.Client) (*Client, error) {
	cfg, err := NewClientConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewStaffomaticClientBuilder().
		WithHTTPClient(httpClient).
		WithConfig(cfg).
		Build(), nil
}

// Login is the login of the authenticated user
func (client *Client) Login() string {
	return client.config.login()
}

// BasicAuthenticated tells if an email and password are configured
func (client *Client) BasicAuthenticated() bool {
	return client.config.basicAuthenticated()
}

// TokenAuthenticated tells if an OAuth access token is configured
func (client *Client) TokenAuthenticated() bool {
	return client.config.tokenAuthenticated()
}

// UserAuthenticated tells if requests are made on behalf of a user
func (client *Client) UserAuthenticated() bool {
	return client.BasicAuthenticated() || client.TokenAuthenticated()
}

func (client *Client) ClientID() string {
	return client.config.ClientID
}

func (client *Client) ClientSecret() string {
	return client.config.ClientSecret
}

// WebEndpoint is the base url of the web application, it always ends with a slash
func (client *Client) WebEndpoint() string {
	return client.config.webEndpoint()
}

func (client *Client) AuthorizeURL(redirectURL, state string) string {
	return client.config.AuthorizeURL(redirectURL, state)
}

// Get issues a GET on path and decodes the response into result
func (client *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	res, err := client.do(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return err
	}
	return decode(res, result)
}

// Post issues a POST with a json body. target may be an absolute url.
func (client *Client) Post(ctx context.Context, target string, body interface{}, headers map[string]string, result interface{}) error {
	res, err := client.do(ctx, http.MethodPost, target, nil, body, headers)
	if err != nil {
		return err
	}
	return decode(res, result)
}

// Patch issues a PATCH with a json body and decodes the response into result
func (client *Client) Patch(ctx context.Context, path string, body interface{}, result interface{}) error {
	res, err := client.do(ctx, http.MethodPatch, path, nil, body, nil)
	if err != nil {
		return err
	}
	return decode(res, result)
}

// do sends a request and returns the response when its status is 2xx.
// Other statuses are returned as a *status.StatusError.
func (client *Client) do(ctx context.Context, method, target string, query url.Values, body interface{}, headers map[string]string) (*resty.Response, error) {
	req := client.rest.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	req.SetHeaders(headers)

	logger := logging.FromContext(ctx, client.log).WithFields(log.Fields{
		"method": method,
		"target": target,
	})

	start := time.Now()
	res, err := req.Execute(method, target)
	if err != nil {
		requestsTotal.WithLabelValues(method, statusTransportError).Inc()
		logger.WithError(err).Warn("staffomatic request failed")
		return nil, errors.Wrapf(err, "failure to %s %s", method, target)
	}
	requestsTotal.WithLabelValues(method, strconv.Itoa(res.StatusCode())).Inc()
	logger.WithFields(log.Fields{
		"status":   res.StatusCode(),
		"duration": time.Since(start),
	}).Debug("staffomatic request completed")

	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, newStatusError(method, res)
	}
	return res, nil
}

func decode(res *resty.Response, result interface{}) error {
	body := res.Body()
	if result == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return errors.Wrapf(err, "unable to decode response of %s", res.Request.URL)
	}
	return nil
}

package staffomatic

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/staffomatic/staffomatic-go/schema"
)

// ListUsersOptions narrows the users listing
type ListUsersOptions struct {
	// Since is the id of the last user already seen
	Since int64
	// PerPage overrides the configured page size
	PerPage int
}

func (o *ListUsersOptions) values(defaultPerPage int) url.Values {
	query := url.Values{}
	perPage := defaultPerPage
	if o != nil {
		if o.Since > 0 {
			query.Set("since", strconv.FormatInt(o.Since, 10))
		}
		if o.PerPage > 0 {
			perPage = o.PerPage
		}
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}
	return query
}

// ListUsers iterates over every user, in the order they signed up
func (client *Client) ListUsers(opts *ListUsersOptions) *PageIterator[schema.User] {
	return paginate[schema.User](client, "users", opts.values(client.config.PerPage))
}

// ListAllUsers fetches every page of users
func (client *Client) ListAllUsers(ctx context.Context, opts *ListUsersOptions) ([]schema.User, error) {
	return client.ListUsers(opts).Collect(ctx)
}

// GetUser fetches a single user. An empty id, or the login of the
// authenticated user, fetches the authenticated user.
func (client *Client) GetUser(ctx context.Context, id string) (*schema.User, error) {
	path := schema.UserPath(id)
	if id != "" && id == client.Login() && client.UserAuthenticated() {
		path = schema.UserPath("")
	}

	var user *schema.User
	if err := client.Get(ctx, path, nil, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserResource fetches a resource nested under a user, e.g. its shifts
func (client *Client) GetUserResource(ctx context.Context, user, resource string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := client.Get(ctx, client.userPath(user, resource), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ExchangeCodeForToken retrieves the access token matching an authorization
// code. Empty appID and appSecret default to the configured application.
func (client *Client) ExchangeCodeForToken(ctx context.Context, code, appID, appSecret string) (*schema.AccessToken, error) {
	if appID == "" {
		appID = client.ClientID()
	}
	if appSecret == "" {
		appSecret = client.ClientSecret()
	}

	body := struct {
		Code         string `json:"code"`
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	}{
		Code:         code,
		ClientID:     appID,
		ClientSecret: appSecret,
	}
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}

	var token schema.AccessToken
	if err := client.Post(ctx, client.config.AccessTokenURL(), body, headers, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// ValidateCredentials tells if an email and password identify a user. The
// check runs on a new client so this client keeps its own credentials.
func (client *Client) ValidateCredentials(ctx context.Context, credentials schema.Credentials) (bool, error) {
	cfg := *client.config
	cfg.Login = ""
	cfg.Email = credentials.Email
	cfg.Password = credentials.Password
	cfg.AccessToken = ""

	other := NewStaffomaticClientBuilder().
		WithConfig(&cfg).
		WithHTTPClient(client.httpClient).
		WithLogger(client.log).
		Build()

	user, err := other.GetUser(ctx, "")
	if err != nil {
		if IsUnauthorized(err) {
			return false, nil
		}
		return false, err
	}
	return user != nil, nil
}

// UpdateUser updates the authenticated user with the fields set in update
func (client *Client) UpdateUser(ctx context.Context, update schema.UserUpdate) (*schema.User, error) {
	var user schema.User
	if err := client.Patch(ctx, schema.UserPath(""), update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// userPath builds the path of a resource nested under user, using the
// "user" shortcut when user is the authenticated login
func (client *Client) userPath(user, path string) string {
	if user == client.Login() && client.UserAuthenticated() {
		return schema.UserPath("") + "/" + path
	}
	return schema.UserPath(user) + "/" + path
}

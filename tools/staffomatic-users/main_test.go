package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffomatic/staffomatic-go/clients/staffomatic"
	"github.com/staffomatic/staffomatic-go/schema"
)

func setup(t *testing.T) (*staffomatic.MockClientInterface, func(args ...string) (string, error)) {
	ctrl := gomock.NewController(t)
	client := staffomatic.NewMockClientInterface(ctrl)

	run := func(args ...string) (string, error) {
		out := &bytes.Buffer{}
		app := newApp(func() (staffomatic.ClientInterface, error) { return client, nil }, out)
		err := app.Run(append([]string{"staffomatic-users"}, args...))
		return out.String(), err
	}
	return client, run
}

func TestList(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().
		ListAllUsers(gomock.Any(), &staffomatic.ListUsersOptions{Since: 100, PerPage: 2}).
		Return([]schema.User{{ID: 101}, {ID: 102}}, nil)

	out, err := run("list", "--since", "100", "--per-page", "2")
	require.NoError(t, err)

	var users []schema.User
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	assert.Equal(t, []schema.User{{ID: 101}, {ID: 102}}, users)
}

func TestGet(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().GetUser(gomock.Any(), "42").Return(&schema.User{ID: 42, Login: "billy"}, nil)
	client.EXPECT().GetUser(gomock.Any(), "").Return(&schema.User{ID: 1, Login: "me"}, nil)

	out, err := run("get", "42")
	require.NoError(t, err)
	assert.Contains(t, out, `"login": "billy"`)

	out, err = run("get")
	require.NoError(t, err)
	assert.Contains(t, out, `"login": "me"`)
}

func TestGet_Error(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().GetUser(gomock.Any(), "404").Return(nil, errors.New("not found"))
	client.EXPECT().GetUser(gomock.Any(), "empty").Return(nil, nil)

	_, err := run("get", "404")
	assert.EqualError(t, err, "not found")

	_, err = run("get", "empty")
	assert.EqualError(t, err, "user not found")
}

func TestResource(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().GetUserResource(gomock.Any(), "me", "shifts").Return(json.RawMessage(`[{"id":1}]`), nil)

	out, err := run("resource", "me", "shifts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, out)

	_, err = run("resource", "me")
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().
		UpdateUser(gomock.Any(), schema.UserUpdate{Name: schema.StringP("A"), Hireable: schema.BoolP(false)}).
		Return(&schema.User{ID: 1, Name: "A"}, nil)

	out, err := run("update", "--name", "A", "--hireable=false")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "A"`)

	_, err = run("update")
	assert.EqualError(t, err, "nothing to update")
}

func TestValidate(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().
		ValidateCredentials(gomock.Any(), schema.Credentials{Email: "e@x.com", Password: "bad"}).
		Return(false, nil)

	out, err := run("validate", "--email", "e@x.com", "--password", "bad")
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid": false}`, out)

	_, err = run("validate", "--email", "e@x.com")
	assert.Error(t, err)
}

func TestExchangeToken(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().
		ExchangeCodeForToken(gomock.Any(), "c", "a", "").
		Return(&schema.AccessToken{AccessToken: "tkn", TokenType: "bearer", Scope: "user"}, nil)
	client.EXPECT().
		ExchangeCodeForToken(gomock.Any(), "d", "", "").
		Return(&schema.AccessToken{AccessToken: "other"}, nil)

	out, err := run("exchange-token", "--app-id", "a", "c")
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token": "tkn", "token_type": "Bearer", "scope": "user"}`, out)

	out, err = run("exchange-token", "d")
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token": "other", "token_type": "Bearer", "scope": ""}`, out)

	_, err = run("exchange-token")
	assert.EqualError(t, err, "CODE is required")
}

func TestAuthorizeURL(t *testing.T) {
	client, run := setup(t)
	client.EXPECT().AuthorizeURL("https://app.test/callback", "xyz").Return("https://staffomaticapp.com/login/oauth/authorize?state=xyz")

	out, err := run("authorize-url", "--redirect", "https://app.test/callback", "--state", "xyz")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url": "https://staffomaticapp.com/login/oauth/authorize?state=xyz"}`, out)
}

func TestClientError(t *testing.T) {
	out := &bytes.Buffer{}
	app := newApp(func() (staffomatic.ClientInterface, error) { return nil, errors.New("bad config") }, out)

	err := app.Run([]string{"staffomatic-users", "get"})
	assert.EqualError(t, err, "bad config")
	assert.Empty(t, out.String())
}

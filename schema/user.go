package schema

import (
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

type (
	// User is the data structure returned by the users endpoints.
	User struct {
		ID        int64      `json:"id"`
		Login     string     `json:"login,omitempty"`
		Email     string     `json:"email,omitempty"`
		FirstName string     `json:"first_name,omitempty"`
		LastName  string     `json:"last_name,omitempty"`
		Name      string     `json:"name,omitempty"`
		Blog      string     `json:"blog,omitempty"`
		Company   string     `json:"company,omitempty"`
		Location  string     `json:"location,omitempty"`
		Hireable  bool       `json:"hireable,omitempty"`
		Bio       string     `json:"bio,omitempty"`
		Locale    string     `json:"locale,omitempty"`
		CreatedAt *time.Time `json:"created_at,omitempty"`
		UpdatedAt *time.Time `json:"updated_at,omitempty"`
	}

	// UserUpdate is the data structure for updating the authenticated user.
	// Only the fields that are set are sent.
	UserUpdate struct {
		Name     *string `json:"name,omitempty"`
		Email    *string `json:"email,omitempty"`
		Blog     *string `json:"blog,omitempty"`
		Company  *string `json:"company,omitempty"`
		Location *string `json:"location,omitempty"`
		Hireable *bool   `json:"hireable,omitempty"`
		Bio      *string `json:"bio,omitempty"`
	}

	// Credentials is an email and password pair
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// AccessToken is the payload returned by the OAuth code exchange
	AccessToken struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type,omitempty"`
		Scope       string `json:"scope,omitempty"`
	}
)

// UserPath returns the API path of a user. An empty id designates the
// authenticated user.
func UserPath(id string) string {
	if id == "" {
		return "user"
	}
	return "users/" + id
}

// UserID formats a numeric user id for UserPath
func UserID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (u *UserUpdate) HasUpdates() bool {
	return u.Name != nil || u.Email != nil || u.Blog != nil || u.Company != nil ||
		u.Location != nil || u.Hireable != nil || u.Bio != nil
}

// Token converts the payload to an oauth2 token usable with an
// oauth2.Config client.
func (t *AccessToken) Token() *oauth2.Token {
	if t == nil {
		return nil
	}
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return (&oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   tokenType,
	}).WithExtra(map[string]interface{}{
		"scope": t.Scope,
	})
}

func StringP(s string) *string {
	return &s
}

func BoolP(b bool) *bool {
	return &b
}

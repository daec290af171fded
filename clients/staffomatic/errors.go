package staffomatic

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/tidepool-org/go-common/clients/status"
)

// ErrorKind classifies the failures returned by the staffomatic API
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindUnprocessable
	KindTooManyRequests
	KindServerError
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindUnprocessable:
		return "unprocessable entity"
	case KindTooManyRequests:
		return "too many requests"
	case KindServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// Kind returns the kind of an error returned by the client. Errors that did
// not come from an API response are KindUnknown.
func Kind(err error) ErrorKind {
	var statusErr *status.StatusError
	if !errors.As(err, &statusErr) {
		return KindUnknown
	}
	switch code := statusErr.Code; {
	case code == http.StatusBadRequest:
		return KindBadRequest
	case code == http.StatusUnauthorized:
		return KindUnauthorized
	case code == http.StatusForbidden:
		return KindForbidden
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusUnprocessableEntity:
		return KindUnprocessable
	case code == http.StatusTooManyRequests:
		return KindTooManyRequests
	case code >= 500 && code < 600:
		return KindServerError
	default:
		return KindUnknown
	}
}

func IsUnauthorized(err error) bool {
	return Kind(err) == KindUnauthorized
}

func IsNotFound(err error) bool {
	return Kind(err) == KindNotFound
}

func IsServerError(err error) bool {
	return Kind(err) == KindServerError
}

// newStatusError builds the error of a non 2xx response. The server message
// is taken from the json body when there is one.
func newStatusError(method string, res *resty.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(res.Body(), &body); err == nil {
		msg = body.Message
		if msg == "" {
			msg = body.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(res.StatusCode())
	}
	return &status.StatusError{
		Status: status.NewStatusf(res.StatusCode(), "%s %s: %d - %s", method, res.Request.URL, res.StatusCode(), msg),
	}
}

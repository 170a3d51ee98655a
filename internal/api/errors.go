package api

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrNotFound is returned for any 404 response.
var ErrNotFound = errors.New("resource not found")

// StatusError is a non-2xx response from the backend, carrying the
// decoded {code, message} body when one was present.
type StatusError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// statusError maps a failed response to an error. Bodies that are not
// the standard error shape are ignored, not treated as a second error.
func statusError(status int, body []byte) error {
	if status == http.StatusNotFound {
		return ErrNotFound
	}

	se := &StatusError{StatusCode: status}
	d := jx.DecodeBytes(body)
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "code":
			n, err := d.Int()
			se.Code = n
			return err
		case "message":
			s, err := d.Str()
			se.Message = s
			return err
		default:
			return d.Skip()
		}
	})
	return se
}

package server

import (
	"net/http"
	"net/http/httptest"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// IssueSessionCookie mints a signed session cookie the way the OAuth
// callback does, for handler tests that need an authenticated request.
func IssueSessionCookie(secret types.SessionSecret, sess *model.Session) (*http.Cookie, error) {
	codec := newSessionCodec(secret, defaultSessionTTL)

	rec := httptest.NewRecorder()
	if err := codec.issue(rec, sess); err != nil {
		return nil, err
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c, nil
		}
	}
	return nil, goerr.New("session cookie was not issued")
}

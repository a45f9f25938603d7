package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cirelay/cirelay/pkg/domain/mock"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestAuthRedirect(t *testing.T) {
	srv := newServer(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/auth/github", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusFound)

	location := gt.R1(url.Parse(rec.Header().Get("Location"))).NoError(t)
	gt.V(t, location.Host).Equal("github.com")
	gt.V(t, location.Query().Get("client_id")).Equal("client-id")
	gt.V(t, location.Query().Get("state")).NotEqual("")

	// State is pinned in a cookie for the callback check
	var state *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "cirelay_oauth_state" {
			state = c
		}
	}
	gt.V(t, state).NotEqual(nil)
	gt.V(t, state.Value).Equal(location.Query().Get("state"))
}

func TestAuthCallbackStateMismatch(t *testing.T) {
	srv := newServer(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=abc&state=tampered", nil)
	req.AddCookie(&http.Cookie{Name: "cirelay_oauth_state", Value: "original"})
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
}

func TestAuthCallbackMissingState(t *testing.T) {
	srv := newServer(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=abc&state=whatever", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
}

func TestSessionRoundTrip(t *testing.T) {
	sess := &model.Session{
		UserID:               "583231",
		Login:                "octocat",
		EncryptedGitHubToken: "aa:bb:cc",
	}

	uc := &mock.UseCaseMock{
		ListRepositoriesFunc: func(ctx context.Context, got *model.Session) ([]*model.RepositoryView, error) {
			gt.V(t, got).NotEqual(nil)
			gt.V(t, got.UserID).Equal(sess.UserID)
			gt.V(t, got.Login).Equal(sess.Login)
			gt.V(t, got.EncryptedGitHubToken).Equal(sess.EncryptedGitHubToken)
			return nil, nil
		},
	}
	srv := newServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/repositories", nil)
	req.AddCookie(sessionCookie(t, sess))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, len(uc.ListRepositoriesCalls())).Equal(1)
}

func TestSessionTamperedCookie(t *testing.T) {
	uc := &mock.UseCaseMock{
		ListRepositoriesFunc: func(ctx context.Context, got *model.Session) ([]*model.RepositoryView, error) {
			gt.V(t, got).Equal(nil)
			return nil, types.ErrAuthRequired
		},
	}
	srv := newServer(uc)

	cookie := sessionCookie(t, &model.Session{
		UserID:               "583231",
		Login:                "octocat",
		EncryptedGitHubToken: "aa:bb:cc",
	})
	cookie.Value += "tampered"

	req := httptest.NewRequest(http.MethodGet, "/api/repositories", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	// A tampered cookie is treated as no session at all
	gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
}

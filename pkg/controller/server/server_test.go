package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cirelay/cirelay/pkg/controller/server"
	"github.com/cirelay/cirelay/pkg/domain/mock"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

const testSessionSecret = types.SessionSecret("test-session-secret")

func newServer(uc *mock.UseCaseMock) *server.Server {
	return server.New(uc,
		server.WithSessionSecret(testSessionSecret),
		server.WithGitHubOAuth("client-id", "client-secret"),
	)
}

func sessionCookie(t *testing.T, sess *model.Session) *http.Cookie {
	return gt.R1(server.IssueSessionCookie(testSessionSecret, sess)).NoError(t)
}

func TestHealth(t *testing.T) {
	srv := newServer(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestGetRepository(t *testing.T) {
	uc := &mock.UseCaseMock{
		GetRepositoryFunc: func(ctx context.Context, sess *model.Session, slug types.RepoSlug) (*model.RepositoryView, error) {
			if sess == nil {
				return nil, types.ErrAuthRequired
			}
			gt.V(t, slug).Equal("test-slug")
			return &model.RepositoryView{
				Slug:     slug,
				Name:     "hello-world",
				FullName: "octocat/hello-world",
				HasToken: true,
			}, nil
		},
	}
	srv := newServer(uc)

	t.Run("unauthenticated request reveals nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/repositories/test-slug", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)

		var body map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body["hasToken"]).Equal("")
		gt.V(t, body["fullName"]).Equal("")
	})

	t.Run("signed-in holder gets the view", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/repositories/test-slug", nil)
		req.AddCookie(sessionCookie(t, &model.Session{
			UserID:               "42",
			Login:                "alice",
			EncryptedGitHubToken: "aa:bb:cc",
		}))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var view model.RepositoryView
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		gt.V(t, view.FullName).Equal("octocat/hello-world")
		gt.True(t, view.HasToken)
		gt.False(t, view.IsOwner)
	})
}

func TestRegisterRepository(t *testing.T) {
	uc := &mock.UseCaseMock{
		RegisterRepositoryFunc: func(ctx context.Context, sess *model.Session, input *model.RegisterRepositoryInput) (*model.RepositoryView, error) {
			gt.V(t, sess).NotEqual(nil)
			gt.V(t, sess.Login).Equal("octocat")
			gt.V(t, input.FullName).Equal("octocat/hello-world")
			return &model.RepositoryView{Slug: "new-slug", FullName: input.FullName, IsOwner: true}, nil
		},
	}
	srv := newServer(uc)

	cookie := sessionCookie(t, &model.Session{
		UserID:               "583231",
		Login:                "octocat",
		EncryptedGitHubToken: "aa:bb:cc",
	})

	body := []byte(`{"name":"hello-world","fullName":"octocat/hello-world","githubId":1296269}`)
	req := httptest.NewRequest(http.MethodPost, "/api/repositories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusCreated)
	gt.V(t, len(uc.RegisterRepositoryCalls())).Equal(1)
}

func TestErrorMapping(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"auth required": {
			err:  types.ErrAuthRequired,
			code: http.StatusUnauthorized,
		},
		"forbidden": {
			err:  goerr.Wrap(types.ErrForbidden, "owner only"),
			code: http.StatusForbidden,
		},
		"not found": {
			err:  goerr.Wrap(types.ErrNotFound, "unknown slug"),
			code: http.StatusNotFound,
		},
		"token not configured": {
			err:  types.ErrTokenNotConfigured,
			code: http.StatusBadRequest,
		},
		"upstream failure": {
			err:  goerr.Wrap(types.ErrUpstream, "boom"),
			code: http.StatusBadGateway,
		},
		"aggregation failure": {
			err:  goerr.Wrap(types.ErrAggregation, "one fetch failed"),
			code: http.StatusBadGateway,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			uc := &mock.UseCaseMock{
				ListPullRequestsFunc: func(ctx context.Context, sess *model.Session, input *model.ListPullRequestsInput) ([]*model.AggregatedPR, error) {
					return nil, tc.err
				},
			}
			srv := newServer(uc)

			req := httptest.NewRequest(http.MethodGet, "/api/repositories/some-slug/pulls", nil)
			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, req)

			gt.V(t, rec.Code).Equal(tc.code)

			// Generic body only: no upstream detail leaks
			var body map[string]string
			gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			gt.V(t, body["error"]).NotEqual("boom")
		})
	}
}

func TestListPullRequests(t *testing.T) {
	uc := &mock.UseCaseMock{
		ListPullRequestsFunc: func(ctx context.Context, sess *model.Session, input *model.ListPullRequestsInput) ([]*model.AggregatedPR, error) {
			gt.V(t, input.Slug).Equal("test-slug")
			gt.True(t, input.All)
			return []*model.AggregatedPR{
				{
					PullRequest:   model.PullRequest{Number: 2, Title: "fix build"},
					FailedRuns:    []model.WorkflowRun{{ID: 201, Conclusion: types.RunConclusionFailure}},
					HasFailedRuns: true,
				},
			}, nil
		},
	}
	srv := newServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/repositories/test-slug/pulls?all=true", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)

	var prs []*model.AggregatedPR
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prs))
	gt.V(t, len(prs)).Equal(1)
	gt.V(t, prs[0].Number).Equal(2)
	gt.True(t, prs[0].HasFailedRuns)
}

func TestRerunFailedJobs(t *testing.T) {
	uc := &mock.UseCaseMock{
		RerunFailedJobsFunc: func(ctx context.Context, sess *model.Session, input *model.RerunFailedJobsInput) error {
			gt.V(t, input.Slug).Equal("test-slug")
			gt.V(t, input.RunID).Equal(int64(9001))
			return nil
		},
	}
	srv := newServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/repositories/test-slug/rerun/9001", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, len(uc.RerunFailedJobsCalls())).Equal(1)

	t.Run("non-numeric run ID is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/repositories/test-slug/rerun/not-a-number", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestLogout(t *testing.T) {
	srv := newServer(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "cirelay_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	gt.True(t, cleared)
}

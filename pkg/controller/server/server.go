package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/interfaces"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	sessionSecret types.SessionSecret
	sessionTTL    int // seconds
	oauth         *oauth2.Config
}

type Option func(*config)

func WithSessionSecret(secret types.SessionSecret) Option {
	return func(cfg *config) {
		cfg.sessionSecret = secret
	}
}

// WithSessionTTL overrides the session lifetime in seconds.
func WithSessionTTL(seconds int) Option {
	return func(cfg *config) {
		if seconds > 0 {
			cfg.sessionTTL = seconds
		}
	}
}

func WithGitHubOAuth(clientID, clientSecret string) Option {
	return func(cfg *config) {
		cfg.oauth = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     github.Endpoint,
			Scopes:       []string{"read:user", "repo"},
		}
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		sessionTTL: defaultSessionTTL,
	}
	for _, opt := range options {
		opt(cfg)
	}

	sessions := newSessionCodec(cfg.sessionSecret, cfg.sessionTTL)

	r := chi.NewRouter()
	r.Use(accessLog)
	r.Use(withSession(sessions))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/github", handleAuthRedirect(cfg.oauth))
		r.Get("/github/callback", handleAuthCallback(uc, cfg.oauth, sessions))
		r.Post("/logout", handleLogout(sessions))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/github/repos", func(w http.ResponseWriter, r *http.Request) {
			repos, err := uc.ListGitHubRepos(r.Context(), sessionFrom(r))
			if err != nil {
				respondError(w, r, err)
				return
			}
			respondJSON(w, http.StatusOK, repos)
		})

		r.Route("/repositories", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				views, err := uc.ListRepositories(r.Context(), sessionFrom(r))
				if err != nil {
					respondError(w, r, err)
					return
				}
				respondJSON(w, http.StatusOK, views)
			})

			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				var input model.RegisterRepositoryInput
				if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
					respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
					return
				}

				view, err := uc.RegisterRepository(r.Context(), sessionFrom(r), &input)
				if err != nil {
					respondError(w, r, err)
					return
				}
				respondJSON(w, http.StatusCreated, view)
			})

			r.Route("/{slug}", func(r chi.Router) {
				r.Get("/", func(w http.ResponseWriter, r *http.Request) {
					view, err := uc.GetRepository(r.Context(), sessionFrom(r), slugParam(r))
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, view)
				})

				r.Patch("/", func(w http.ResponseWriter, r *http.Request) {
					var input model.UpdateRepositoryInput
					if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
						respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
						return
					}

					view, err := uc.UpdateRepository(r.Context(), sessionFrom(r), slugParam(r), &input)
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, view)
				})

				r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
					if err := uc.DeleteRepository(r.Context(), sessionFrom(r), slugParam(r)); err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
				})

				r.Get("/pulls", func(w http.ResponseWriter, r *http.Request) {
					input := &model.ListPullRequestsInput{
						Slug: slugParam(r),
						All:  r.URL.Query().Get("all") == "true",
					}

					prs, err := uc.ListPullRequests(r.Context(), sessionFrom(r), input)
					if err != nil {
						respondError(w, r, err)
						return
					}
					if prs == nil {
						prs = []*model.AggregatedPR{}
					}
					respondJSON(w, http.StatusOK, prs)
				})

				r.Post("/rerun/{runID}", func(w http.ResponseWriter, r *http.Request) {
					runID, err := runIDParam(r)
					if err != nil {
						respondError(w, r, err)
						return
					}

					input := &model.RerunFailedJobsInput{
						Slug:  slugParam(r),
						RunID: runID,
					}
					if err := uc.RerunFailedJobs(r.Context(), sessionFrom(r), input); err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
				})
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func slugParam(r *http.Request) types.RepoSlug {
	return types.RepoSlug(chi.URLParam(r, "slug"))
}

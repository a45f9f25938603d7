package server

import (
	"net/http"

	"github.com/cirelay/cirelay/pkg/domain/interfaces"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/utils/errutil"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const stateCookieName = "cirelay_oauth_state"

// handleAuthRedirect starts the GitHub OAuth flow. The random state is pinned
// in a short-lived cookie and checked on callback.
func handleAuthRedirect(oauthCfg *oauth2.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if oauthCfg == nil {
			respondError(w, r, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth is not configured"))
			return
		}

		state := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     stateCookieName,
			Value:    state,
			Path:     "/",
			MaxAge:   600,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, oauthCfg.AuthCodeURL(state), http.StatusFound)
	}
}

func handleAuthCallback(uc interfaces.UseCase, oauthCfg *oauth2.Config, sessions *sessionCodec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if oauthCfg == nil {
			respondError(w, r, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth is not configured"))
			return
		}

		stateCookie, err := r.Cookie(stateCookieName)
		if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
			respondError(w, r, goerr.Wrap(types.ErrAuthRequired, "OAuth state mismatch"))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			respondError(w, r, goerr.Wrap(types.ErrAuthRequired, "missing authorization code"))
			return
		}

		token, err := oauthCfg.Exchange(r.Context(), code)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to exchange OAuth code", err)
			respondError(w, r, goerr.Wrap(types.ErrAuthRequired, "OAuth exchange failed"))
			return
		}

		sess, err := uc.SignInWithGitHub(r.Context(), types.AccessToken(token.AccessToken))
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := sessions.issue(w, sess); err != nil {
			respondError(w, r, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func handleLogout(sessions *sessionCodec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.clear(w)
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

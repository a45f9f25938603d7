package server

import (
	"net/http"
	"time"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/m-mizutani/goerr/v2"
)

const (
	sessionCookieName = "cirelay_session"

	// 7 days
	defaultSessionTTL = 7 * 24 * 60 * 60
)

// sessionClaims is the JWT payload of the session cookie. The GitHub OAuth
// token is embedded only in its vault-encrypted form; the cookie is signed,
// not encrypted, so nothing in it may be secret plaintext.
type sessionClaims struct {
	jwt.RegisteredClaims
	Login          string `json:"login"`
	EncryptedToken string `json:"ght"`
}

type sessionCodec struct {
	secret []byte
	ttl    time.Duration
}

func newSessionCodec(secret types.SessionSecret, ttlSeconds int) *sessionCodec {
	return &sessionCodec{
		secret: []byte(secret),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func (x *sessionCodec) issue(w http.ResponseWriter, sess *model.Session) error {
	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(sess.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(x.ttl)),
		},
		Login:          string(sess.Login),
		EncryptedToken: string(sess.EncryptedGitHubToken),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(x.secret)
	if err != nil {
		return goerr.Wrap(err, "failed to sign session token")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(x.ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// parse returns nil without error when no cookie is present; the caller
// decides whether a session is required.
func (x *sessionCodec) parse(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, nil
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, goerr.New("unexpected signing method", goerr.V("alg", t.Header["alg"]))
		}
		return x.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, goerr.Wrap(types.ErrAuthRequired, "invalid session token")
	}

	sess := &model.Session{
		UserID:               types.UserID(claims.Subject),
		Login:                types.GitHubLogin(claims.Login),
		EncryptedGitHubToken: types.EncryptedToken(claims.EncryptedToken),
	}
	if err := sess.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "malformed session")
	}

	return sess, nil
}

func (x *sessionCodec) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SignInWithGitHub resolves the identity behind a fresh OAuth access token and
// builds the session to be issued to the caller. The token itself is stored
// only in encrypted form so it never appears in the session cookie as
// plaintext.
func (x *UseCase) SignInWithGitHub(ctx context.Context, token types.AccessToken) (*model.Session, error) {
	user, err := x.clients.GitHub().GetAuthenticatedUser(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve authenticated user")
	}

	encrypted, err := x.clients.Vault().Encrypt(string(token))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encrypt access token")
	}

	sess := &model.Session{
		UserID:               user.ID,
		Login:                user.Login,
		EncryptedGitHubToken: encrypted,
	}
	if err := sess.Validate(); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("signed in",
		slog.Any("user_id", sess.UserID),
		slog.Any("login", sess.Login),
	)

	return sess, nil
}

// ListGitHubRepos lists the caller's own GitHub repositories for the
// registration screen, using the caller's OAuth token.
func (x *UseCase) ListGitHubRepos(ctx context.Context, sess *model.Session) ([]*model.RepoSummary, error) {
	if sess == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}

	token, err := x.sessionToken(sess)
	if err != nil {
		return nil, err
	}

	repos, err := x.clients.GitHub().ListUserRepositories(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user repositories")
	}

	// Mark entries the caller already registered so the registration screen
	// does not offer them again.
	registered, err := x.clients.RepoRegistry().ListByOwner(ctx, sess.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list registered repositories")
	}
	registeredIDs := make(map[types.GitHubRepoID]struct{}, len(registered))
	for _, record := range registered {
		registeredIDs[record.GitHubID] = struct{}{}
	}
	for _, repo := range repos {
		if _, ok := registeredIDs[repo.ID]; ok {
			repo.IsRegistered = true
		}
	}

	return repos, nil
}

// sessionToken recovers the caller's OAuth token from its encrypted session
// copy.
func (x *UseCase) sessionToken(sess *model.Session) (types.AccessToken, error) {
	plain, err := x.clients.Vault().Decrypt(sess.EncryptedGitHubToken)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decrypt session token")
	}
	return types.AccessToken(plain), nil
}

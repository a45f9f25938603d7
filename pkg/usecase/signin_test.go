package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cirelay/cirelay/pkg/domain/mock"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestSignInWithGitHub(t *testing.T) {
	ctx := context.Background()

	github := &mock.GitHubClientMock{
		GetAuthenticatedUserFunc: func(ctx context.Context, token types.AccessToken) (*model.GitHubUser, error) {
			gt.V(t, token).Equal("gho_oauth_token")
			return &model.GitHubUser{ID: "583231", Login: "octocat"}, nil
		},
	}
	env := newTestEnv(t, github)

	sess, err := env.uc.SignInWithGitHub(ctx, "gho_oauth_token")
	gt.NoError(t, err)
	gt.V(t, sess.UserID).Equal("583231")
	gt.V(t, sess.Login).Equal("octocat")

	// The OAuth token is carried only in encrypted form
	gt.V(t, sess.EncryptedGitHubToken).NotEqual(types.EncryptedToken("gho_oauth_token"))
	plain := gt.R1(env.vault.Decrypt(sess.EncryptedGitHubToken)).NoError(t)
	gt.V(t, plain).Equal("gho_oauth_token")
}

func TestSignInWithGitHubUpstreamFailure(t *testing.T) {
	ctx := context.Background()

	github := &mock.GitHubClientMock{
		GetAuthenticatedUserFunc: func(ctx context.Context, token types.AccessToken) (*model.GitHubUser, error) {
			return nil, types.ErrUpstream
		},
	}
	env := newTestEnv(t, github)

	_, err := env.uc.SignInWithGitHub(ctx, "gho_bad_token")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrUpstream))
}

func TestListGitHubRepos(t *testing.T) {
	ctx := context.Background()

	github := &mock.GitHubClientMock{
		GetAuthenticatedUserFunc: func(ctx context.Context, token types.AccessToken) (*model.GitHubUser, error) {
			return &model.GitHubUser{ID: "583231", Login: "octocat"}, nil
		},
		ListUserRepositoriesFunc: func(ctx context.Context, token types.AccessToken) ([]*model.RepoSummary, error) {
			// Must be called with the caller's own token, not a stored one
			gt.V(t, token).Equal("gho_oauth_token")
			return []*model.RepoSummary{
				{ID: 1296269, Name: "hello-world", FullName: "octocat/hello-world"},
				{ID: 2000001, Name: "spoon-knife", FullName: "octocat/spoon-knife"},
			}, nil
		},
	}
	env := newTestEnv(t, github)
	env.registerRepo(t, "583231", "octocat/hello-world", true)

	sess := gt.R1(env.uc.SignInWithGitHub(ctx, "gho_oauth_token")).NoError(t)

	repos, err := env.uc.ListGitHubRepos(ctx, sess)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(2)
	gt.V(t, repos[0].FullName).Equal("octocat/hello-world")

	// Entries the caller already registered come back marked
	gt.True(t, repos[0].IsRegistered)
	gt.False(t, repos[1].IsRegistered)

	t.Run("requires session", func(t *testing.T) {
		_, err := env.uc.ListGitHubRepos(ctx, nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAuthRequired))
	})
}

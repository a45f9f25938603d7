package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cirelay/cirelay/pkg/domain/mock"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestRegisterRepository(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &mock.GitHubClientMock{})

	input := &model.RegisterRepositoryInput{
		Name:     "hello-world",
		FullName: "octocat/hello-world",
		GitHubID: 1296269,
	}

	view, err := env.uc.RegisterRepository(ctx, session("user-1", "octocat"), input)
	gt.NoError(t, err)
	gt.V(t, view.FullName).Equal("octocat/hello-world")
	gt.True(t, view.IsOwner)
	gt.False(t, view.HasToken)
	gt.V(t, len(view.Slug)).Equal(36) // UUIDv4

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		_, err := env.uc.RegisterRepository(ctx, session("user-1", "octocat"), input)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))
	})

	t.Run("another owner can register the same repository", func(t *testing.T) {
		view2, err := env.uc.RegisterRepository(ctx, session("user-2", "alice"), input)
		gt.NoError(t, err)
		gt.V(t, view2.Slug).NotEqual(view.Slug)
	})

	t.Run("requires session", func(t *testing.T) {
		_, err := env.uc.RegisterRepository(ctx, nil, input)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAuthRequired))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := env.uc.RegisterRepository(ctx, session("user-3", "bob"), &model.RegisterRepositoryInput{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestGetRepository(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &mock.GitHubClientMock{})
	repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

	t.Run("requires session even with the slug", func(t *testing.T) {
		_, err := env.uc.GetRepository(ctx, nil, repo.Slug)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAuthRequired))
	})

	t.Run("any signed-in holder can view", func(t *testing.T) {
		view, err := env.uc.GetRepository(ctx, session("user-2", "alice"), repo.Slug)
		gt.NoError(t, err)
		gt.V(t, view.FullName).Equal("octocat/hello-world")
		gt.True(t, view.HasToken)
		gt.False(t, view.IsOwner)
	})

	t.Run("owner sees isOwner", func(t *testing.T) {
		view, err := env.uc.GetRepository(ctx, session("user-1", "octocat"), repo.Slug)
		gt.NoError(t, err)
		gt.True(t, view.IsOwner)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := env.uc.GetRepository(ctx, session("user-2", "alice"), "no-such-slug")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

func TestUpdateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("store token", func(t *testing.T) {
		env := newTestEnv(t, &mock.GitHubClientMock{})
		repo := env.registerRepo(t, "user-1", "octocat/hello-world", false)

		view, err := env.uc.UpdateRepository(ctx, session("user-1", "octocat"), repo.Slug, &model.UpdateRepositoryInput{
			Token: "ghp_new_token",
		})
		gt.NoError(t, err)
		gt.V(t, view.Slug).Equal(repo.Slug)
		gt.True(t, view.HasToken)

		// Stored encrypted, not as plaintext
		stored := gt.R1(env.registry.GetBySlug(ctx, repo.Slug)).NoError(t)
		gt.V(t, stored.EncryptedToken).NotEqual(types.EncryptedToken("ghp_new_token"))
		plain := gt.R1(env.vault.Decrypt(stored.EncryptedToken)).NoError(t)
		gt.V(t, plain).Equal("ghp_new_token")
	})

	t.Run("rotate slug", func(t *testing.T) {
		env := newTestEnv(t, &mock.GitHubClientMock{})
		repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

		view, err := env.uc.UpdateRepository(ctx, session("user-1", "octocat"), repo.Slug, &model.UpdateRepositoryInput{
			RegenerateSlug: true,
		})
		gt.NoError(t, err)
		gt.V(t, view.Slug).NotEqual(repo.Slug)

		// The old slug stops resolving immediately
		_, err = env.uc.GetRepository(ctx, session("user-2", "alice"), repo.Slug)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))

		view2, err := env.uc.GetRepository(ctx, session("user-2", "alice"), view.Slug)
		gt.NoError(t, err)
		gt.V(t, view2.FullName).Equal("octocat/hello-world")
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		env := newTestEnv(t, &mock.GitHubClientMock{})
		repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

		_, err := env.uc.UpdateRepository(ctx, session("user-2", "alice"), repo.Slug, &model.UpdateRepositoryInput{
			RegenerateSlug: true,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrForbidden))
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		env := newTestEnv(t, &mock.GitHubClientMock{})
		repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

		_, err := env.uc.UpdateRepository(ctx, session("user-1", "octocat"), repo.Slug, &model.UpdateRepositoryInput{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestDeleteRepository(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &mock.GitHubClientMock{})
	repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := env.uc.DeleteRepository(ctx, session("user-2", "alice"), repo.Slug)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrForbidden))
	})

	t.Run("owner can delete", func(t *testing.T) {
		gt.NoError(t, env.uc.DeleteRepository(ctx, session("user-1", "octocat"), repo.Slug))

		_, err := env.uc.GetRepository(ctx, session("user-1", "octocat"), repo.Slug)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

func TestListRepositories(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &mock.GitHubClientMock{})
	env.registerRepo(t, "user-1", "octocat/hello-world", true)
	env.registerRepo(t, "user-1", "octocat/spoon-knife", false)
	env.registerRepo(t, "user-2", "alice/sandbox", false)

	views, err := env.uc.ListRepositories(ctx, session("user-1", "octocat"))
	gt.NoError(t, err)
	gt.V(t, len(views)).Equal(2)
	for _, view := range views {
		gt.True(t, view.IsOwner)
	}

	t.Run("requires session", func(t *testing.T) {
		_, err := env.uc.ListRepositories(ctx, nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAuthRequired))
	})
}

package usecase_test

import (
	"context"
	"errors"
	"hash/fnv"
	"testing"

	"github.com/cirelay/cirelay/pkg/domain/interfaces"
	"github.com/cirelay/cirelay/pkg/domain/mock"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/infra"
	"github.com/cirelay/cirelay/pkg/infra/vault"
	"github.com/cirelay/cirelay/pkg/repository/memory"
	"github.com/cirelay/cirelay/pkg/usecase"
	"github.com/m-mizutani/gt"
)

const testVaultKey = "0123456789abcdef0123456789abcdef"

type testEnv struct {
	uc       interfaces.UseCase
	github   *mock.GitHubClientMock
	registry interfaces.RepoRegistry
	vault    *vault.Vault
}

func newTestEnv(t *testing.T, github *mock.GitHubClientMock) *testEnv {
	v := gt.R1(vault.New(testVaultKey)).NoError(t)
	registry := memory.New()

	clients := infra.New(
		infra.WithGitHub(github),
		infra.WithVault(v),
		infra.WithRepoRegistry(registry),
	)

	return &testEnv{
		uc:       usecase.New(clients),
		github:   github,
		registry: registry,
		vault:    v,
	}
}

// registerRepo seeds a registered repository with a stored token and returns
// its record.
func (x *testEnv) registerRepo(t *testing.T, ownerID types.UserID, fullName string, withToken bool) *model.Repository {
	ctx := context.Background()

	repo := &model.Repository{
		Slug:     types.RepoSlug("slug-" + fullName),
		OwnerID:  ownerID,
		Name:     "hello-world",
		FullName: fullName,
		GitHubID: githubRepoID(fullName),
	}
	if withToken {
		repo.EncryptedToken = gt.R1(x.vault.Encrypt("ghp_stored_token")).NoError(t)
	}

	gt.NoError(t, x.registry.Create(ctx, repo))
	return repo
}

// githubRepoID returns a GitHub repository ID that is stable per fullName, so
// fixtures for distinct repositories do not collide on the registry's
// (owner, githubID) uniqueness rule. "octocat/hello-world" keeps the ID that
// other tests assert against.
func githubRepoID(fullName string) types.GitHubRepoID {
	if fullName == "octocat/hello-world" {
		return 1296269
	}
	h := fnv.New64a()
	h.Write([]byte(fullName))
	return types.GitHubRepoID(h.Sum64() & 0x7fffffff)
}

func session(userID types.UserID, login types.GitHubLogin) *model.Session {
	return &model.Session{UserID: userID, Login: login}
}

func run(id int64, conclusion types.RunConclusion) model.WorkflowRun {
	status := types.RunStatusCompleted
	if conclusion == "" {
		status = types.RunStatusInProgress
	}
	return model.WorkflowRun{
		ID:         id,
		Name:       "ci",
		Status:     status,
		Conclusion: conclusion,
	}
}

func TestListPullRequestsAllMode(t *testing.T) {
	ctx := context.Background()

	prs := []model.PullRequest{
		{ID: 1, Number: 1, Title: "green", HeadSHA: "sha-1", AuthorLogin: "alice"},
		{ID: 2, Number: 2, Title: "red", HeadSHA: "sha-2", AuthorLogin: "bob"},
		{ID: 3, Number: 3, Title: "pending", HeadSHA: "sha-3", AuthorLogin: "alice"},
	}
	runsBySHA := map[types.CommitSHA][]model.WorkflowRun{
		"sha-1": {run(101, types.RunConclusionSuccess)},
		"sha-2": {run(201, types.RunConclusionFailure), run(202, types.RunConclusionSuccess)},
		"sha-3": {run(301, "")},
	}

	github := &mock.GitHubClientMock{
		ListOpenPullRequestsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string) ([]model.PullRequest, error) {
			gt.V(t, token).Equal("ghp_stored_token")
			gt.V(t, owner).Equal("octocat")
			gt.V(t, repo).Equal("hello-world")
			return prs, nil
		},
		ListWorkflowRunsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string, headSHA types.CommitSHA) ([]model.WorkflowRun, error) {
			return runsBySHA[headSHA], nil
		},
	}

	env := newTestEnv(t, github)
	repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

	// Only the PR with a failed run is returned in all mode
	result, err := env.uc.ListPullRequests(ctx, session("user-1", "octocat"), &model.ListPullRequestsInput{
		Slug: repo.Slug,
		All:  true,
	})
	gt.NoError(t, err)
	gt.V(t, len(result)).Equal(1)
	gt.V(t, result[0].Number).Equal(2)
	gt.True(t, result[0].HasFailedRuns)
	gt.V(t, len(result[0].FailedRuns)).Equal(1)
	gt.V(t, result[0].FailedRuns[0].ID).Equal(int64(201))
	gt.V(t, len(result[0].WorkflowRuns)).Equal(2)
}

func TestListPullRequestsAssignedMode(t *testing.T) {
	ctx := context.Background()

	assigned := []model.PullRequest{
		{ID: 1, Number: 1, Title: "first", HeadSHA: "sha-1", AuthorLogin: "alice"},
		{ID: 3, Number: 3, Title: "third", HeadSHA: "sha-3", AuthorLogin: "alice"},
	}
	runsBySHA := map[types.CommitSHA][]model.WorkflowRun{
		"sha-1": {run(101, types.RunConclusionSuccess)},
		"sha-3": {run(301, types.RunConclusionFailure)},
	}

	github := &mock.GitHubClientMock{
		ListAssignedPullRequestsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string, login types.GitHubLogin) ([]model.PullRequest, error) {
			gt.V(t, login).Equal("alice")
			return assigned, nil
		},
		ListWorkflowRunsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string, headSHA types.CommitSHA) ([]model.WorkflowRun, error) {
			return runsBySHA[headSHA], nil
		},
	}

	env := newTestEnv(t, github)
	repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

	// Assigned mode keeps every PR, failing or not, in upstream order.
	// A non-owner session is sufficient.
	result, err := env.uc.ListPullRequests(ctx, session("user-2", "alice"), &model.ListPullRequestsInput{
		Slug: repo.Slug,
	})
	gt.NoError(t, err)
	gt.V(t, len(result)).Equal(2)
	gt.V(t, result[0].Number).Equal(1)
	gt.False(t, result[0].HasFailedRuns)
	gt.V(t, result[1].Number).Equal(3)
	gt.True(t, result[1].HasFailedRuns)
}

func TestListPullRequestsAllOrNothing(t *testing.T) {
	ctx := context.Background()

	prs := []model.PullRequest{
		{ID: 1, Number: 1, HeadSHA: "sha-1", AuthorLogin: "alice"},
		{ID: 2, Number: 2, HeadSHA: "sha-2", AuthorLogin: "bob"},
		{ID: 3, Number: 3, HeadSHA: "sha-3", AuthorLogin: "carol"},
	}

	github := &mock.GitHubClientMock{
		ListOpenPullRequestsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string) ([]model.PullRequest, error) {
			return prs, nil
		},
		ListWorkflowRunsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string, headSHA types.CommitSHA) ([]model.WorkflowRun, error) {
			if headSHA == "sha-2" {
				return nil, types.ErrUpstream
			}
			return []model.WorkflowRun{run(1, types.RunConclusionFailure)}, nil
		},
	}

	env := newTestEnv(t, github)
	repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)

	// One failed fetch fails the whole call: no partial results
	result, err := env.uc.ListPullRequests(ctx, session("user-1", "octocat"), &model.ListPullRequestsInput{
		Slug: repo.Slug,
		All:  true,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrAggregation))
	// The failing fetch stays in the chain instead of being flattened away
	gt.True(t, errors.Is(err, types.ErrUpstream))
	gt.V(t, len(result)).Equal(0)
}

func TestListPullRequestsAccessGate(t *testing.T) {
	ctx := context.Background()

	github := &mock.GitHubClientMock{
		ListAssignedPullRequestsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string, login types.GitHubLogin) ([]model.PullRequest, error) {
			return nil, nil
		},
	}

	env := newTestEnv(t, github)
	repo := env.registerRepo(t, "user-1", "octocat/hello-world", true)
	noToken := env.registerRepo(t, "user-1", "octocat/no-token", false)

	t.Run("unauthenticated is rejected", func(t *testing.T) {
		_, err := env.uc.ListPullRequests(ctx, nil, &model.ListPullRequestsInput{Slug: repo.Slug})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAuthRequired))
	})

	t.Run("non-owner cannot use all mode", func(t *testing.T) {
		_, err := env.uc.ListPullRequests(ctx, session("user-2", "alice"), &model.ListPullRequestsInput{
			Slug: repo.Slug,
			All:  true,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrForbidden))
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := env.uc.ListPullRequests(ctx, session("user-2", "alice"), &model.ListPullRequestsInput{
			Slug: "no-such-slug",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("missing token is reported distinctly", func(t *testing.T) {
		_, err := env.uc.ListPullRequests(ctx, session("user-2", "alice"), &model.ListPullRequestsInput{
			Slug: noToken.Slug,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTokenNotConfigured))
	})
}

func TestListPullRequestsEndToEnd(t *testing.T) {
	ctx := context.Background()

	// octocat/hello-world with 2 open PRs: PR#1 all green, PR#2 one failed
	// and one successful run
	prs := []model.PullRequest{
		{ID: 1, Number: 1, Title: "add docs", HeadSHA: "sha-1", AuthorLogin: "alice"},
		{ID: 2, Number: 2, Title: "fix build", HeadSHA: "sha-2", AuthorLogin: "bob"},
	}
	runsBySHA := map[types.CommitSHA][]model.WorkflowRun{
		"sha-1": {run(101, types.RunConclusionSuccess)},
		"sha-2": {run(201, types.RunConclusionFailure), run(202, types.RunConclusionSuccess)},
	}

	github := &mock.GitHubClientMock{
		ListOpenPullRequestsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string) ([]model.PullRequest, error) {
			return prs, nil
		},
		ListAssignedPullRequestsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string, login types.GitHubLogin) ([]model.PullRequest, error) {
			var filtered []model.PullRequest
			for _, pr := range prs {
				if pr.AuthorLogin == login {
					filtered = append(filtered, pr)
				}
			}
			return filtered, nil
		},
		ListWorkflowRunsFunc: func(ctx context.Context, token types.AccessToken, owner, repo string, headSHA types.CommitSHA) ([]model.WorkflowRun, error) {
			return runsBySHA[headSHA], nil
		},
	}

	env := newTestEnv(t, github)
	repo := env.registerRepo(t, "owner-1", "octocat/hello-world", true)

	t.Run("assigned mode for the PR#1 author", func(t *testing.T) {
		result, err := env.uc.ListPullRequests(ctx, session("user-2", "alice"), &model.ListPullRequestsInput{
			Slug: repo.Slug,
		})
		gt.NoError(t, err)
		gt.V(t, len(result)).Equal(1)
		gt.V(t, result[0].Number).Equal(1)
		gt.False(t, result[0].HasFailedRuns)
	})

	t.Run("owner all mode", func(t *testing.T) {
		result, err := env.uc.ListPullRequests(ctx, session("owner-1", "octocat"), &model.ListPullRequestsInput{
			Slug: repo.Slug,
			All:  true,
		})
		gt.NoError(t, err)
		gt.V(t, len(result)).Equal(1)
		gt.V(t, result[0].Number).Equal(2)
		gt.V(t, len(result[0].FailedRuns)).Equal(1)
	})
}

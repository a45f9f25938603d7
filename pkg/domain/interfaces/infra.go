package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient

import (
	"context"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
)

// GitHubClient wraps the subset of the GitHub REST API the service brokers.
// Every operation is parameterized by a bearer token because calls are made
// either with a repository's stored token or with the caller's own OAuth
// token. This layer performs no retries; failures surface as
// types.ErrUpstream with the operation name and status code attached.
type GitHubClient interface {
	// GetAuthenticatedUser resolves the user identity behind an OAuth token.
	GetAuthenticatedUser(ctx context.Context, token types.AccessToken) (*model.GitHubUser, error)

	// ListUserRepositories returns the first page (100 entries) of the
	// user's repositories, personally owned and organization-member,
	// sorted by last update. Further pages are not fetched.
	ListUserRepositories(ctx context.Context, token types.AccessToken) ([]*model.RepoSummary, error)

	// ListOpenPullRequests returns every open pull request of the repository.
	ListOpenPullRequests(ctx context.Context, token types.AccessToken, owner, repo string) ([]model.PullRequest, error)

	// ListAssignedPullRequests returns open pull requests whose author login
	// matches exactly (case-sensitive).
	ListAssignedPullRequests(ctx context.Context, token types.AccessToken, owner, repo string, login types.GitHubLogin) ([]model.PullRequest, error)

	// ListWorkflowRuns returns every workflow run for a head commit,
	// regardless of status.
	ListWorkflowRuns(ctx context.Context, token types.AccessToken, owner, repo string, headSHA types.CommitSHA) ([]model.WorkflowRun, error)

	// RerunFailedJobs re-executes only the failed jobs of a workflow run.
	// Pure pass-through: no retry, no dedupe, no local mutation.
	RerunFailedJobs(ctx context.Context, token types.AccessToken, owner, repo string, runID int64) error
}

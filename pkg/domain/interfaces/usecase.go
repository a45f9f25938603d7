package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
)

// UseCase is the boundary the HTTP controller calls. Every operation
// re-derives ownership from the persisted record; a nil session means the
// caller is unauthenticated and yields types.ErrAuthRequired where a session
// is required.
type UseCase interface {
	SignInWithGitHub(ctx context.Context, token types.AccessToken) (*model.Session, error)

	ListGitHubRepos(ctx context.Context, sess *model.Session) ([]*model.RepoSummary, error)

	ListRepositories(ctx context.Context, sess *model.Session) ([]*model.RepositoryView, error)
	RegisterRepository(ctx context.Context, sess *model.Session, input *model.RegisterRepositoryInput) (*model.RepositoryView, error)
	GetRepository(ctx context.Context, sess *model.Session, slug types.RepoSlug) (*model.RepositoryView, error)
	UpdateRepository(ctx context.Context, sess *model.Session, slug types.RepoSlug, input *model.UpdateRepositoryInput) (*model.RepositoryView, error)
	DeleteRepository(ctx context.Context, sess *model.Session, slug types.RepoSlug) error

	ListPullRequests(ctx context.Context, sess *model.Session, input *model.ListPullRequestsInput) ([]*model.AggregatedPR, error)
	RerunFailedJobs(ctx context.Context, sess *model.Session, input *model.RerunFailedJobsInput) error
}

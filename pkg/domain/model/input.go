package model

import (
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ListPullRequestsInput selects the aggregation mode for a repository view.
// All=false is the assignee view (every PR authored by the caller), All=true
// is the owner view (every PR with at least one failed run).
type ListPullRequestsInput struct {
	Slug types.RepoSlug
	All  bool
}

func (x *ListPullRequestsInput) Validate() error {
	if x.Slug == "" {
		return goerr.Wrap(types.ErrValidationFailed, "slug is empty")
	}
	return nil
}

type RegisterRepositoryInput struct {
	Name     string             `json:"name"`
	FullName string             `json:"fullName"`
	GitHubID types.GitHubRepoID `json:"githubId"`
}

func (x *RegisterRepositoryInput) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "name is empty")
	}
	if x.FullName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "full name is empty")
	}
	if x.GitHubID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "GitHub repository ID is empty")
	}
	return nil
}

// UpdateRepositoryInput is the owner-only mutation of a repository record.
// RegenerateSlug replaces the capability link; Token stores a new plaintext
// access token (encrypted before it reaches the registry).
type UpdateRepositoryInput struct {
	RegenerateSlug bool   `json:"regenerateSlug"`
	Token          string `json:"token"`
}

func (x *UpdateRepositoryInput) Validate() error {
	if !x.RegenerateSlug && x.Token == "" {
		return goerr.Wrap(types.ErrValidationFailed, "nothing to update")
	}
	return nil
}

type RerunFailedJobsInput struct {
	Slug  types.RepoSlug
	RunID int64
}

func (x *RerunFailedJobsInput) Validate() error {
	if x.Slug == "" {
		return goerr.Wrap(types.ErrValidationFailed, "slug is empty")
	}
	if x.RunID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "run ID is empty")
	}
	return nil
}

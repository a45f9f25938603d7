package model

import "github.com/cirelay/cirelay/pkg/domain/types"

// GitHubUser is the authenticated GitHub user resolved from an OAuth token.
type GitHubUser struct {
	ID    types.UserID
	Login types.GitHubLogin
}

// RepoSummary is one entry of the authenticated user's repository listing.
// Only the fields the registration screen needs are kept; everything else in
// the upstream response is ignored.
type RepoSummary struct {
	ID          types.GitHubRepoID `json:"id"`
	Name        string             `json:"name"`
	FullName    string             `json:"fullName"`
	Description string             `json:"description,omitempty"`
	Private     bool               `json:"private"`

	// IsRegistered marks repositories the caller already registered, so the
	// registration screen can gray them out.
	IsRegistered bool `json:"isRegistered"`
}

// Assignee is a user assigned to a pull request.
type Assignee struct {
	Login     types.GitHubLogin `json:"login"`
	AvatarURL string            `json:"avatarUrl,omitempty"`
}

// PullRequest is an open pull request fetched per request. It is never
// persisted; statuses change too frequently for caching to be safe.
type PullRequest struct {
	ID          int64             `json:"id"`
	Number      int               `json:"number"`
	Title       string            `json:"title"`
	URL         string            `json:"url"`
	HeadSHA     types.CommitSHA   `json:"headSha"`
	AuthorLogin types.GitHubLogin `json:"authorLogin"`
	Assignees   []Assignee        `json:"assignees"`
}

// WorkflowRun is one execution of a CI workflow against a commit. Conclusion
// is empty while the run is still queued or in progress.
type WorkflowRun struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Status     types.RunStatus     `json:"status"`
	Conclusion types.RunConclusion `json:"conclusion,omitempty"`
	URL        string              `json:"url"`
}

func (x *WorkflowRun) IsFailure() bool {
	return x.Conclusion == types.RunConclusionFailure
}

// AggregatedPR is a pull request enriched with its workflow runs. Constructed
// fresh on every request and discarded after the response.
type AggregatedPR struct {
	PullRequest
	WorkflowRuns  []WorkflowRun `json:"workflowRuns"`
	FailedRuns    []WorkflowRun `json:"failedRuns"`
	HasFailedRuns bool          `json:"hasFailedRuns"`
}

// Aggregate attaches runs to a pull request and partitions out the failures.
func Aggregate(pr PullRequest, runs []WorkflowRun) *AggregatedPR {
	var failed []WorkflowRun
	for _, run := range runs {
		if run.IsFailure() {
			failed = append(failed, run)
		}
	}

	return &AggregatedPR{
		PullRequest:   pr,
		WorkflowRuns:  runs,
		FailedRuns:    failed,
		HasFailedRuns: len(failed) > 0,
	}
}

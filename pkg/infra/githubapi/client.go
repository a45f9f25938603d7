package githubapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cirelay/cirelay/pkg/domain/interfaces"
	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const listPageSize = 100

// Client wraps the GitHub REST API with per-call bearer tokens. It is
// stateless: a fresh go-github client is built for every operation because
// the token differs per repository and per caller. No retry or backoff is
// applied here; failures propagate to the aggregation layer.
type Client struct {
	baseURL *url.URL
	timeout time.Duration
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used for GitHub Enterprise and for
// tests against a local httptest server.
func WithBaseURL(raw string) Option {
	return func(x *Client) {
		if u, err := url.Parse(raw); err == nil {
			x.baseURL = u
		}
	}
}

// WithTimeout bounds each upstream call. A hung GitHub call would otherwise
// hang the whole aggregation request.
func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

func New(options ...Option) *Client {
	client := &Client{
		timeout: 30 * time.Second,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Client) buildClient(ctx context.Context, token types.AccessToken) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: string(token)},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = x.timeout

	client := github.NewClient(tc)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
		client.UploadURL = x.baseURL
	}

	return client
}

func wrapUpstream(err error, resp *github.Response, operation string) error {
	if resp != nil {
		return goerr.Wrap(types.ErrUpstream, err.Error(),
			goerr.V("operation", operation),
			goerr.V("status", resp.StatusCode),
		)
	}
	return goerr.Wrap(types.ErrUpstream, err.Error(),
		goerr.V("operation", operation),
	)
}

func (x *Client) GetAuthenticatedUser(ctx context.Context, token types.AccessToken) (*model.GitHubUser, error) {
	user, resp, err := x.buildClient(ctx, token).Users.Get(ctx, "")
	if err != nil {
		return nil, wrapUpstream(err, resp, "users.get")
	}

	return &model.GitHubUser{
		ID:    types.UserID(strconv.FormatInt(user.GetID(), 10)),
		Login: types.GitHubLogin(user.GetLogin()),
	}, nil
}

// ListUserRepositories returns one page of up to 100 repositories, sorted by
// last update, covering personally owned and organization-member
// repositories. Pagination beyond the first page is deliberately not handled.
func (x *Client) ListUserRepositories(ctx context.Context, token types.AccessToken) ([]*model.RepoSummary, error) {
	opts := &github.RepositoryListOptions{
		Sort:        "updated",
		Affiliation: "owner,organization_member",
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	repos, resp, err := x.buildClient(ctx, token).Repositories.List(ctx, "", opts)
	if err != nil {
		return nil, wrapUpstream(err, resp, "repos.list")
	}

	summaries := make([]*model.RepoSummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, &model.RepoSummary{
			ID:          types.GitHubRepoID(repo.GetID()),
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			Description: repo.GetDescription(),
			Private:     repo.GetPrivate(),
		})
	}

	return summaries, nil
}

func (x *Client) ListOpenPullRequests(ctx context.Context, token types.AccessToken, owner, repo string) ([]model.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	prs, resp, err := x.buildClient(ctx, token).PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, wrapUpstream(err, resp, "pulls.list")
	}

	result := make([]model.PullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, toPullRequest(pr))
	}

	return result, nil
}

// ListAssignedPullRequests fetches all open pull requests and keeps only
// those authored by the given login. The match is exact and case-sensitive.
func (x *Client) ListAssignedPullRequests(ctx context.Context, token types.AccessToken, owner, repo string, login types.GitHubLogin) ([]model.PullRequest, error) {
	prs, err := x.ListOpenPullRequests(ctx, token, owner, repo)
	if err != nil {
		return nil, err
	}

	var assigned []model.PullRequest
	for _, pr := range prs {
		if pr.AuthorLogin == login {
			assigned = append(assigned, pr)
		}
	}

	return assigned, nil
}

func (x *Client) ListWorkflowRuns(ctx context.Context, token types.AccessToken, owner, repo string, headSHA types.CommitSHA) ([]model.WorkflowRun, error) {
	opts := &github.ListWorkflowRunsOptions{
		HeadSHA:     string(headSHA),
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	runs, resp, err := x.buildClient(ctx, token).Actions.ListRepositoryWorkflowRuns(ctx, owner, repo, opts)
	if err != nil {
		return nil, wrapUpstream(err, resp, "actions.list_workflow_runs")
	}

	result := make([]model.WorkflowRun, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		result = append(result, model.WorkflowRun{
			ID:         run.GetID(),
			Name:       run.GetName(),
			Status:     types.RunStatus(run.GetStatus()),
			Conclusion: types.RunConclusion(run.GetConclusion()),
			URL:        run.GetHTMLURL(),
		})
	}

	return result, nil
}

// RerunFailedJobs re-executes only the failed jobs of a run. GitHub responds
// 403 if the run is already in progress; that surfaces as an upstream error
// and is not retried or deduplicated here.
func (x *Client) RerunFailedJobs(ctx context.Context, token types.AccessToken, owner, repo string, runID int64) error {
	resp, err := x.buildClient(ctx, token).Actions.RerunFailedJobsByID(ctx, owner, repo, runID)
	if err != nil {
		return wrapUpstream(err, resp, "actions.rerun_failed_jobs")
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return goerr.Wrap(types.ErrUpstream, "unexpected rerun response",
			goerr.V("operation", "actions.rerun_failed_jobs"),
			goerr.V("status", resp.StatusCode),
		)
	}

	return nil
}

func toPullRequest(pr *github.PullRequest) model.PullRequest {
	assignees := make([]model.Assignee, 0, len(pr.Assignees))
	for _, user := range pr.Assignees {
		assignees = append(assignees, model.Assignee{
			Login:     types.GitHubLogin(user.GetLogin()),
			AvatarURL: user.GetAvatarURL(),
		})
	}

	return model.PullRequest{
		ID:          pr.GetID(),
		Number:      pr.GetNumber(),
		Title:       pr.GetTitle(),
		URL:         pr.GetHTMLURL(),
		HeadSHA:     types.CommitSHA(pr.GetHead().GetSHA()),
		AuthorLogin: types.GitHubLogin(pr.GetUser().GetLogin()),
		Assignees:   assignees,
	}
}

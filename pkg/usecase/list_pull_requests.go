package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// ListPullRequests builds the "pull request + CI status" view for a
// registered repository, brokering the calls with the repository's stored
// token.
//
// All=false is the assignee view: the caller's own open pull requests,
// regardless of CI state. All=true is the owner-only attention view: every
// open pull request that has at least one failed workflow run.
//
// Workflow runs are fetched concurrently per pull request, bounded by the
// configured concurrency. The aggregate is all-or-nothing: one failed fetch
// fails the whole call, because a pull request silently shown without its CI
// status would be misleading.
func (x *UseCase) ListPullRequests(ctx context.Context, sess *model.Session, input *model.ListPullRequestsInput) ([]*model.AggregatedPR, error) {
	if sess == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo, err := x.resolveSlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	if input.All && repo.OwnerID != sess.UserID {
		return nil, goerr.Wrap(types.ErrForbidden, "the all view is restricted to the repository owner",
			goerr.V("slug", input.Slug),
		)
	}

	token, err := x.repositoryToken(repo)
	if err != nil {
		return nil, err
	}

	owner, name, err := repo.OwnerRepo()
	if err != nil {
		return nil, err
	}

	var prs []model.PullRequest
	if input.All {
		prs, err = x.clients.GitHub().ListOpenPullRequests(ctx, token, owner, name)
	} else {
		prs, err = x.clients.GitHub().ListAssignedPullRequests(ctx, token, owner, name, sess.Login)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests",
			goerr.V("slug", input.Slug),
		)
	}

	aggregated, err := x.aggregate(ctx, token, owner, name, prs)
	if err != nil {
		return nil, err
	}

	if input.All {
		filtered := make([]*model.AggregatedPR, 0, len(aggregated))
		for _, pr := range aggregated {
			if pr.HasFailedRuns {
				filtered = append(filtered, pr)
			}
		}
		aggregated = filtered
	}

	logging.From(ctx).Info("aggregated pull requests",
		slog.Any("slug", input.Slug),
		slog.Bool("all", input.All),
		slog.Int("pullRequests", len(prs)),
		slog.Int("returned", len(aggregated)),
	)

	return aggregated, nil
}

// aggregate fetches workflow runs for each pull request with bounded fan-out
// and joins them into aggregated views, preserving the upstream order. The
// first fetch failure cancels the group and fails the whole aggregation.
func (x *UseCase) aggregate(ctx context.Context, token types.AccessToken, owner, name string, prs []model.PullRequest) ([]*model.AggregatedPR, error) {
	results := make([]*model.AggregatedPR, len(prs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(x.concurrency)

	for i, pr := range prs {
		eg.Go(func() error {
			runs, err := x.clients.GitHub().ListWorkflowRuns(ctx, token, owner, name, pr.HeadSHA)
			if err != nil {
				return goerr.Wrap(err, "failed to list workflow runs",
					goerr.V("number", pr.Number),
					goerr.V("headSHA", pr.HeadSHA),
				)
			}
			results[i] = model.Aggregate(pr, runs)
			return nil
		})
	}

	// Keep the failing fetch in the chain so callers can still match the
	// underlying cause alongside ErrAggregation.
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(errors.Join(types.ErrAggregation, err), "failed to fetch workflow runs")
	}

	return results, nil
}

// repositoryToken decrypts the repository's stored token, distinguishing the
// not-yet-configured case from ciphertext corruption.
func (x *UseCase) repositoryToken(repo *model.Repository) (types.AccessToken, error) {
	if !repo.HasToken() {
		return "", goerr.Wrap(types.ErrTokenNotConfigured, "no access token is stored for the repository",
			goerr.V("slug", repo.Slug),
		)
	}

	plain, err := x.clients.Vault().Decrypt(repo.EncryptedToken)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decrypt repository token",
			goerr.V("slug", repo.Slug),
		)
	}

	return types.AccessToken(plain), nil
}

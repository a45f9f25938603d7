package usecase

import (
	"context"
	"log/slog"

	"github.com/cirelay/cirelay/pkg/domain/model"
	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// RerunFailedJobs re-triggers the failed jobs of a workflow run with the
// repository's stored token. Any link holder with a session may rerun; this
// is the point of sharing the link with assignees who lack their own actions
// permission. The call is a pure pass-through: no retry, no dedupe, and no
// local record is mutated.
func (x *UseCase) RerunFailedJobs(ctx context.Context, sess *model.Session, input *model.RerunFailedJobsInput) error {
	if sess == nil {
		return goerr.Wrap(types.ErrAuthRequired, "sign-in required")
	}
	if err := input.Validate(); err != nil {
		return err
	}

	repo, err := x.resolveSlug(ctx, input.Slug)
	if err != nil {
		return err
	}

	token, err := x.repositoryToken(repo)
	if err != nil {
		return err
	}

	owner, name, err := repo.OwnerRepo()
	if err != nil {
		return err
	}

	if err := x.clients.GitHub().RerunFailedJobs(ctx, token, owner, name, input.RunID); err != nil {
		return goerr.Wrap(err, "failed to rerun failed jobs",
			goerr.V("slug", input.Slug),
			goerr.V("runID", input.RunID),
		)
	}

	logging.From(ctx).Info("requested rerun of failed jobs",
		slog.Any("slug", input.Slug),
		slog.Int64("run_id", input.RunID),
		slog.Any("login", sess.Login),
	)

	return nil
}

package firestore_test

import (
	"context"
	"testing"

	"github.com/cirelay/cirelay/pkg/repository/firestore"
	"github.com/cirelay/cirelay/pkg/repository/testhelper"
	"github.com/cirelay/cirelay/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestFirestoreRepoRegistry(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	registry, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)

	testhelper.TestAll(t, registry)
}

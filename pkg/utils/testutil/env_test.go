package testutil_test

import (
	"testing"

	"github.com/cirelay/cirelay/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("CIRELAY_TEST_ENV_KEY", "value")
		got := testutil.GetEnvOrSkip(t, "CIRELAY_TEST_ENV_KEY")
		gt.V(t, got).Equal("value")
	})
}

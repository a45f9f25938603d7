package memory_test

import (
	"testing"

	"github.com/cirelay/cirelay/pkg/repository/memory"
	"github.com/cirelay/cirelay/pkg/repository/testhelper"
)

func TestMemoryRepoRegistry(t *testing.T) {
	registry := memory.New()
	testhelper.TestAll(t, registry)
}

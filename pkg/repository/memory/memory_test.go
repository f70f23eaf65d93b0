package memory_test

import (
	"testing"

	"github.com/m-mizutani/devjournal/pkg/repository/memory"
	"github.com/m-mizutani/devjournal/pkg/repository/testhelper"
)

func TestMemoryRepository(t *testing.T) {
	testhelper.TestAll(t, memory.New())
}

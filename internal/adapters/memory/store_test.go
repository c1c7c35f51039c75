package memory_test

import (
	"testing"

	"github.com/offbook/offbook/internal/adapters/memory"
	"github.com/offbook/offbook/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunRunStoreContract(t, memory.NewStore())
}

package memory_test

import (
	"testing"

	"github.com/formgate/formgate/pkg/adapters/memory"
	"github.com/formgate/formgate/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSchemaStoreContract(t, store)
}

package file_test

import (
	"testing"

	"github.com/formgate/formgate/pkg/adapters/file"
	"github.com/formgate/formgate/pkg/ports"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSchemaStoreContract(t, store)
}

func TestFileStore_DefaultPath(t *testing.T) {
	store := file.New("")
	if store.BasePath == "" {
		t.Fatal("expected a default base path")
	}
}

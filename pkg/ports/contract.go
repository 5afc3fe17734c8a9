package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formgate/formgate/pkg/domain"
)

// RunSchemaStoreContract runs a suite of tests to verify that a SchemaStore
// implementation adheres to the defined interface contract.
func RunSchemaStoreContract(t *testing.T, store SchemaStore) {
	ctx := context.Background()
	schemaID := "contract-test-schema-" + time.Now().Format("20060102150405")

	newSchema := func(id, name, status string, tags ...string) *domain.FormSchema {
		return &domain.FormSchema{
			SchemaID:      id,
			SchemaName:    name,
			SchemaVersion: "1.0",
			Status:        status,
			Tags:          tags,
			CreatedAt:     time.Now().UTC().Truncate(time.Second),
			UpdatedAt:     time.Now().UTC().Truncate(time.Second),
			FormConfig: domain.FormConfig{
				FormID:    name,
				FormTitle: "Contract Form",
				Fields: []domain.FormField{
					{
						Name:        "email",
						ControlType: domain.ControlInput,
						InputType:   "email",
						Validations: []domain.ValidationRule{
							{Name: domain.RuleRequired, Value: domain.BoolValue(true), ErrorMessage: "Email is required"},
						},
					},
				},
			},
		}
	}

	t.Run("Save and Get", func(t *testing.T) {
		schema := newSchema(schemaID, "contract-form", domain.SchemaStatusActive, "contract")

		require.NoError(t, store.Save(ctx, schema), "Save should not return error")

		loaded, err := store.Get(ctx, schemaID)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, schema.SchemaID, loaded.SchemaID)
		assert.Equal(t, schema.SchemaName, loaded.SchemaName)
		assert.Equal(t, "email", loaded.FormConfig.Fields[0].Name)
		assert.Equal(t, domain.BoolValue(true), loaded.FormConfig.Fields[0].Validations[0].Value)
	})

	t.Run("Get returns isolated copies", func(t *testing.T) {
		loaded, err := store.Get(ctx, schemaID)
		require.NoError(t, err)

		loaded.FormConfig.Fields[0].Name = "mutated"

		again, err := store.Get(ctx, schemaID)
		require.NoError(t, err)
		assert.Equal(t, "email", again.FormConfig.Fields[0].Name,
			"mutating a returned schema must not affect the store")
	})

	t.Run("Overwrite", func(t *testing.T) {
		updated := newSchema(schemaID, "contract-form-v2", domain.SchemaStatusArchived)
		require.NoError(t, store.Save(ctx, updated))

		loaded, err := store.Get(ctx, schemaID)
		require.NoError(t, err)
		assert.Equal(t, "contract-form-v2", loaded.SchemaName)
		assert.Equal(t, domain.SchemaStatusArchived, loaded.Status)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+schemaID)
		assert.ErrorIs(t, err, domain.ErrSchemaNotFound)
	})

	t.Run("List and ListBy", func(t *testing.T) {
		other := newSchema(schemaID+"-b", "other-form", domain.SchemaStatusActive, "billing")
		require.NoError(t, store.Save(ctx, other))

		all, err := store.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 2)

		tagged, err := store.ListBy(ctx, func(s *domain.FormSchema) bool { return s.HasTag("billing") })
		require.NoError(t, err)
		require.Len(t, tagged, 1)
		assert.Equal(t, "other-form", tagged[0].SchemaName)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, schemaID))

		_, err := store.Get(ctx, schemaID)
		assert.ErrorIs(t, err, domain.ErrSchemaNotFound, "Get after Delete should return ErrSchemaNotFound")

		assert.ErrorIs(t, store.Delete(ctx, schemaID), domain.ErrSchemaNotFound,
			"deleting an unknown id should return ErrSchemaNotFound")
	})
}

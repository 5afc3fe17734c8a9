package schemas

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formgate/formgate/internal/catalog"
	"github.com/formgate/formgate/pkg/adapters/memory"
	"github.com/formgate/formgate/pkg/domain"
)

func testService(t *testing.T) *Service {
	t.Helper()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	return NewService(memory.NewStore(), WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}))
}

func sampleRequest(name string, tags ...string) *domain.SchemaCreateRequest {
	return &domain.SchemaCreateRequest{
		SchemaName: name,
		FormConfig: domain.FormConfig{
			FormID: name,
			Fields: []domain.FormField{
				{
					Name:        "email",
					ControlType: domain.ControlInput,
					Validations: []domain.ValidationRule{
						{Name: domain.RuleRequired, Value: domain.BoolValue(true), ErrorMessage: "Email is required"},
					},
				},
			},
		},
		Tags: tags,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := testService(t)

	created, err := svc.Create(context.Background(), sampleRequest("signup"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.SchemaID)
	assert.Equal(t, "signup", created.SchemaName)
	assert.Equal(t, "1.0", created.SchemaVersion)
	assert.Equal(t, "system", created.CreatedBy)
	assert.Equal(t, domain.SchemaStatusActive, created.Status)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateRejectsInvalidConfig(t *testing.T) {
	svc := testService(t)

	req := sampleRequest("broken")
	req.FormConfig.Fields[0].Validations[0] = domain.ValidationRule{
		Name:  domain.RuleMinLength,
		Value: domain.StringValue("eight"), // wrong parameter type
	}

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
}

func TestGetUnknown(t *testing.T) {
	svc := testService(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSchemaNotFound)
}

func TestListFilters(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, sampleRequest("signup", "auth"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, sampleRequest("billing-address", "billing"))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.SchemaID, domain.SchemaStatusArchived)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.SchemaID, all[0].SchemaID, "newest first")

	archived, err := svc.ListByStatus(ctx, domain.SchemaStatusArchived)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, first.SchemaID, archived[0].SchemaID)

	tagged, err := svc.ListByTag(ctx, "billing")
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, second.SchemaID, tagged[0].SchemaID)

	named, err := svc.SearchByName(ctx, "BILLING")
	require.NoError(t, err)
	require.Len(t, named, 1)
	assert.Equal(t, second.SchemaID, named[0].SchemaID)
}

func TestListMetadataOmitsConfig(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest("signup"))
	require.NoError(t, err)

	meta, err := svc.ListMetadata(ctx)
	require.NoError(t, err)
	require.Len(t, meta, 1)
	assert.Equal(t, created.SchemaID, meta[0].SchemaID)
	assert.Equal(t, domain.SchemaStatusActive, meta[0].Status)
}

func TestUpdatePreservesCreationMetadata(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest("signup"))
	require.NoError(t, err)

	req := sampleRequest("signup-v2")
	req.SchemaVersion = "2.0"
	updated, err := svc.Update(ctx, created.SchemaID, req)
	require.NoError(t, err)

	assert.Equal(t, created.SchemaID, updated.SchemaID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	assert.Equal(t, "signup-v2", updated.SchemaName)
	assert.Equal(t, "2.0", updated.SchemaVersion)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest("signup"))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.SchemaID, "retired")
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest("signup"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.SchemaID))
	assert.ErrorIs(t, svc.Delete(ctx, created.SchemaID), domain.ErrSchemaNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, svc.Seed(ctx))
	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 2, "second seed must not duplicate")
}

func TestGetFormConfigPrefersCatalog(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	cfg, err := svc.GetFormConfig(ctx, catalog.FormRegistration)
	require.NoError(t, err)
	assert.Equal(t, "user-registration", cfg.FormID)

	created, err := svc.Create(ctx, sampleRequest("signup"))
	require.NoError(t, err)

	stored, err := svc.GetFormConfig(ctx, created.SchemaID)
	require.NoError(t, err)
	assert.Equal(t, "signup", stored.FormID)

	_, err = svc.GetFormConfig(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSchemaNotFound)
}

package minimumwage_test

import (
	"context"
	"testing"
	"time"

	"go-hris-compliance/internal/domain"
	"go-hris-compliance/internal/minimumwage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWageTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&minimumwage.MinimumWageConfiguration{}))
	return db
}

func TestRepository_CRUD(t *testing.T) {
	db := setupWageTestDB(t)
	repo := minimumwage.NewRepository(db)
	ctx := context.Background()

	cfg := &minimumwage.MinimumWageConfiguration{
		ID:            uuid.New(),
		State:         "Maharashtra",
		Category:      domain.CategoryUnskilled,
		MinimumWage:   decimal.NewFromInt(15000),
		EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	require.NoError(t, repo.Create(ctx, cfg))

	found, err := repo.FindByID(ctx, cfg.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", found.State)
	assert.True(t, found.MinimumWage.Equal(decimal.NewFromInt(15000)))

	found.IsActive = false
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, cfg.ID.String())
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	require.NoError(t, repo.Delete(ctx, cfg.ID.String()))

	_, err = repo.FindByID(ctx, cfg.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, cfg.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_FindAll(t *testing.T) {
	db := setupWageTestDB(t)
	repo := minimumwage.NewRepository(db)
	ctx := context.Background()

	jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	seed := []minimumwage.MinimumWageConfiguration{
		wageConfig("Maharashtra", domain.CategoryUnskilled, 14000, jan, nil, true),
		wageConfig("Maharashtra", domain.CategoryUnskilled, 15000, apr, nil, true),
		wageConfig("Karnataka", domain.CategorySkilled, 18000, jan, nil, false),
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	all, err := repo.FindAll(ctx, minimumwage.ListMinimumWageFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Karnataka", all[0].State)
	assert.True(t, all[1].MinimumWage.Equal(decimal.NewFromInt(15000)), "newest first within a pair")

	active := true
	filtered, err := repo.FindAll(ctx, minimumwage.ListMinimumWageFilter{State: "Maharashtra", IsActive: &active})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	byCategory, err := repo.FindAll(ctx, minimumwage.ListMinimumWageFilter{Category: "Skilled"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}

func TestRepository_FindEffective(t *testing.T) {
	db := setupWageTestDB(t)
	repo := minimumwage.NewRepository(db)
	ctx := context.Background()

	jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	seed := []minimumwage.MinimumWageConfiguration{
		wageConfig("Maharashtra", domain.CategoryUnskilled, 15000, jan, nil, true),
		wageConfig("Maharashtra", domain.CategorySkilled, 20000, jan, &mar, true),
		wageConfig("Maharashtra", domain.CategorySemiSkilled, 17000, jan, nil, false),
		wageConfig("Goa", domain.CategorySkilled, 30000, jul, nil, true),
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	effective, err := repo.FindEffective(ctx, asOf)
	require.NoError(t, err)
	require.Len(t, effective, 1)
	assert.Equal(t, seed[0].ID, effective[0].ID)
}

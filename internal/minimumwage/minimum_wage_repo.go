package minimumwage

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=minimum_wage_repo.go -destination=mock/minimum_wage_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cfg *MinimumWageConfiguration) error
	FindAll(ctx context.Context, filter ListMinimumWageFilter) ([]MinimumWageConfiguration, error)
	FindByID(ctx context.Context, id string) (*MinimumWageConfiguration, error)
	FindEffective(ctx context.Context, asOf time.Time) ([]MinimumWageConfiguration, error)
	Update(ctx context.Context, cfg *MinimumWageConfiguration) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn runs statements on the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, cfg *MinimumWageConfiguration) error {
	return r.conn(ctx).Create(cfg).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListMinimumWageFilter) ([]MinimumWageConfiguration, error) {
	var configs []MinimumWageConfiguration

	query := r.conn(ctx).Model(&MinimumWageConfiguration{})
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	err := query.
		Order("state ASC").
		Order("category ASC").
		Order("effective_from DESC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*MinimumWageConfiguration, error) {
	var cfg MinimumWageConfiguration
	err := r.conn(ctx).First(&cfg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindEffective returns active configurations whose window covers asOf,
// most recently effective first.
func (r *repository) FindEffective(ctx context.Context, asOf time.Time) ([]MinimumWageConfiguration, error) {
	var configs []MinimumWageConfiguration
	err := r.conn(ctx).
		Where("is_active = ?", true).
		Where("effective_from <= ?", asOf).
		Where("(effective_to IS NULL OR effective_to >= ?)", asOf).
		Order("effective_from DESC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) Update(ctx context.Context, cfg *MinimumWageConfiguration) error {
	return r.conn(ctx).Save(cfg).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.conn(ctx).Delete(&MinimumWageConfiguration{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

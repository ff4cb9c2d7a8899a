package employee

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindActive(ctx context.Context, search string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindActive returns ACTIVE employees with department, designation and
// salary template loaded, in creation order. A non-empty search matches
// first name, last name or employee code, case-insensitively.
func (r *repository) FindActive(ctx context.Context, search string) ([]Employee, error) {
	var employees []Employee

	query := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Designation").
		Preload("SalaryTemplate").
		Where("status = ?", StatusActive)

	if term := strings.TrimSpace(search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(employee_code) LIKE ?",
			like, like, like,
		)
	}

	err := query.
		Order("created_at ASC").
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}

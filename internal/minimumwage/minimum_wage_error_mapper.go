package minimumwage

import (
	"errors"
	"strings"

	minimumwageerrors "go-hris-compliance/internal/minimumwage/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueEffectiveConstraint = "uq_minimum_wage_effective"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return minimumwageerrors.ErrConfigurationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEffectiveConstraint {
			return minimumwageerrors.ErrConfigurationAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEffectiveConstraint) {
		return minimumwageerrors.ErrConfigurationAlreadyExists
	}

	return err
}

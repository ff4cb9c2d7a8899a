package minimumwageerrors

import (
	"net/http"

	"go-hris-compliance/internal/shared/apperror"
)

var (
	ErrConfigurationNotFound = apperror.New(
		apperror.CodeNotFound,
		"minimum wage configuration not found",
		http.StatusNotFound,
	)
	ErrConfigurationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"minimum wage configuration already exists for this state, category and effective date",
		http.StatusConflict,
	)
	ErrStateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"state is required",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"category must be one of Unskilled, Semi-Skilled, Skilled",
		http.StatusBadRequest,
	)
	ErrInvalidMinimumWage = apperror.New(
		apperror.CodeInvalidInput,
		"minimum wage cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"effective_to must be after or equal effective_from",
		http.StatusBadRequest,
	)
)

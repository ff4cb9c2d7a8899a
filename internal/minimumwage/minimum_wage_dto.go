package minimumwage

type CreateMinimumWageRequest struct {
	State         string   `json:"state" binding:"required"`
	Category      string   `json:"category" binding:"required,oneof=Unskilled Semi-Skilled Skilled"`
	MinimumWage   *float64 `json:"minimum_wage" binding:"required,gte=0"`
	EffectiveFrom *string  `json:"effective_from"`
	EffectiveTo   *string  `json:"effective_to"`
	IsActive      *bool    `json:"is_active"`
}

// UpdateMinimumWageRequest is a partial update. An empty effective_to
// clears the end date.
type UpdateMinimumWageRequest struct {
	State         *string  `json:"state" binding:"omitempty,min=1"`
	Category      *string  `json:"category" binding:"omitempty,oneof=Unskilled Semi-Skilled Skilled"`
	MinimumWage   *float64 `json:"minimum_wage" binding:"omitempty,gte=0"`
	EffectiveFrom *string  `json:"effective_from"`
	EffectiveTo   *string  `json:"effective_to"`
	IsActive      *bool    `json:"is_active"`
}

type ListMinimumWageFilter struct {
	State    string `form:"state"`
	Category string `form:"category"`
	IsActive *bool  `form:"is_active"`
}

func (f ListMinimumWageFilter) IsZero() bool {
	return f.State == "" && f.Category == "" && f.IsActive == nil
}

type MinimumWageResponse struct {
	ID            string  `json:"id"`
	State         string  `json:"state"`
	Category      string  `json:"category"`
	MinimumWage   float64 `json:"minimum_wage"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to"`
	IsActive      bool    `json:"is_active"`
	CreatedBy     string  `json:"created_by,omitempty"`
	UpdatedBy     string  `json:"updated_by,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

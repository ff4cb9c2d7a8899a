package compliance

// ReportFilter values are plain optional strings; "all" disables the
// status and state filters.
type ReportFilter struct {
	Status string `form:"status"`
	State  string `form:"state"`
	Month  string `form:"month"`
	Search string `form:"search"`
}

const filterAll = "all"

type ComplianceRecordResponse struct {
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          string  `json:"employee_name"`
	EmployeeCode          string  `json:"employee_code"`
	Department            string  `json:"department"`
	Designation           string  `json:"designation"`
	State                 string  `json:"state"`
	Category              string  `json:"category"`
	WageMonth             string  `json:"wage_month"`
	ApplicableMinimumWage float64 `json:"applicable_minimum_wage"`
	ActualWagePaid        float64 `json:"actual_wage_paid"`
	Difference            float64 `json:"difference"`
	ComplianceStatus      string  `json:"compliance_status"`
	Remarks               string  `json:"remarks"`
	WageConfigured        bool    `json:"wage_configured"`
}

func mapToResponse(rec ComplianceRecord) ComplianceRecordResponse {
	return ComplianceRecordResponse{
		EmployeeID:            rec.EmployeeID.String(),
		EmployeeName:          rec.EmployeeName,
		EmployeeCode:          rec.EmployeeCode,
		Department:            rec.Department,
		Designation:           rec.Designation,
		State:                 rec.State,
		Category:              rec.Category.String(),
		WageMonth:             rec.WageMonth,
		ApplicableMinimumWage: rec.ApplicableMinimumWage.InexactFloat64(),
		ActualWagePaid:        rec.ActualWagePaid.InexactFloat64(),
		Difference:            rec.Difference.InexactFloat64(),
		ComplianceStatus:      string(rec.ComplianceStatus),
		Remarks:               rec.Remarks,
		WageConfigured:        rec.WageConfigured,
	}
}

func mapToListResponse(records []ComplianceRecord) []ComplianceRecordResponse {
	res := make([]ComplianceRecordResponse, len(records))
	for i, rec := range records {
		res[i] = mapToResponse(rec)
	}
	return res
}

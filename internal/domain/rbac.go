package domain

// EnforceRequest is evaluated against the casbin policy. Subject is the
// role carried by the access token.
type EnforceRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

package domain

// Member is a family member transactions can be attributed to.
type Member struct {
	MemberID string `json:"memberID"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	AuditFields
}

package models

// Member is a row of the members table.
type Member struct {
	MemberID string `db:"member_id"`
	Name     string `db:"name"`
	Avatar   string `db:"avatar"`
	AuditFields
}

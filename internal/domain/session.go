package domain

import "time"

// Session is the durable record behind an issued login token. A row exists
// for every token that has not been logged out or expired; deleting the row
// revokes the token.
type Session struct {
	ID        int64     `json:"id"`
	JTI       string    `json:"jti" gorm:"column:jti;uniqueIndex;size:36"`
	RollNo    string    `json:"roll_no" gorm:"index;size:32"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

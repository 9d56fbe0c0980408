package domain

import "time"

// Account is the public view of a registered credential store. It never
// carries a password.
type Account struct {
	Login      string
	HistoryLen int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

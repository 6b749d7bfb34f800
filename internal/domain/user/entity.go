package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account row. UserHandle is the opaque numeric identity used
// for leaderboard aliases; it never leaves the system as anything but an
// alias. League is derived from TotalXP and stored only as a projection.
type User struct {
	ID           uuid.UUID
	UserHandle   int64
	Email        string
	Username     string
	PasswordHash string
	IsGuest      bool
	TargetRole   string
	TotalXP      int64
	League       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

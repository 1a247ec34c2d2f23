package model

import "time"

// Role values form a closed set. There is no role table and no way to
// define new roles at runtime; route guards compare against these two
// constants only.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents a staff or admin account stored in the `users`
// collection. Accounts are created exclusively by the fixture seeder and
// are never mutated by the API; the only lookup path is an exact,
// case-sensitive username match during login.
//
// PasswordHash holds a bcrypt hash. The raw password is never stored.
type User struct {
	ID           string    `bson:"_id,omitempty"`
	Username     string    `bson:"username"` // unique index
	PasswordHash string    `bson:"password"`
	Role         string    `bson:"role"` // RoleAdmin or RoleStaff
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

package models

// User represents a single account record in the "usuario" table.
// All three fields are free text; Login uniquely identifies the user.
type User struct {
	// Nome is the display name of the user. At most 50 characters.
	Nome string `json:"nome"`

	// Login is the unique user identifier. At most 30 characters.
	Login string `json:"login"`

	// Senha is the user's password. At most 30 characters.
	// Stored as-is, no hashing is applied.
	Senha string `json:"senha"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "usuario"
}

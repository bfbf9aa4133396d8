package models

import "time"

// User represents a document in the MongoDB users collection. The ID is the
// store-assigned ObjectID in hex form and is never mutated after creation.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // never serialize
	CreatedAt time.Time `json:"created_at"`
}

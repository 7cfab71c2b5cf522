package model

// User is an admin account record. Passwords are stored as given.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

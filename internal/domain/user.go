package domain

// User is an API login. Only the bcrypt hash of the password is stored.
type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
}

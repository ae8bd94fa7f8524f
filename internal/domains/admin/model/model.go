package model

const (
	TableName  = "admin_users"
	EntityName = "admin_user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
)

// AdminUser carries the bcrypt hash in Password; the plaintext never reaches
// the model layer.
type AdminUser struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Email    string `db:"email"`
}

package finbook

// User represents an account holder. The password is an opaque string,
// stored and compared as-is; snapshots hold it in the clear.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// PasswordMatches reports whether the given input equals the stored password.
func (u User) PasswordMatches(input string) bool { return u.Password == input }

// WithPassword returns a copy of the user with the password replaced.
// Users are immutable values; password changes replace the whole record.
func (u User) WithPassword(newPassword string) User {
	u.Password = newPassword
	return u
}

// MarshalJSON implements the json.Marshaler interface for User.
func (u User) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("username", u.Username)
	w.Append("password", u.Password)
	w.Append("email", u.Email)
	return w.MarshalJSON()
}

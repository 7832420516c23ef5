package finbook

const usersFile = "users"

// Users manages the user collection and hands out sessions.
type Users struct {
	book[User]
}

// NewUsers loads the user collection from the store, starting empty
// when no usable snapshot exists.
func NewUsers(store *Store) *Users {
	return &Users{newBook[User](store, usersFile)}
}

// Register adds a new user and persists the collection. Username
// uniqueness is deliberately not enforced: duplicates are possible and
// Login matches the first record.
func (u *Users) Register(username, password, email string) error {
	if !ValidEmail(email) {
		return ErrEmail
	}
	return u.add(User{Username: username, Password: password, Email: email})
}

// Login scans the collection for the first user whose username and
// password both exactly match and returns a session for it. On no match
// it returns ErrCredentials and no session exists.
func (u *Users) Login(username, password string) (*Session, error) {
	for i, usr := range u.recs {
		if usr.Username == username && usr.PasswordMatches(password) {
			return &Session{users: u, idx: i}, nil
		}
	}
	return nil, ErrCredentials
}

// Session identifies the authenticated user for the duration of a login.
// It is passed explicitly to every operation that requires authentication;
// there is no ambient "current user" state.
type Session struct {
	users *Users
	idx   int // position of the user in the collection; stable, books only append
	ended bool
}

// Active reports whether the session still grants access.
func (s *Session) Active() bool { return s != nil && !s.ended }

// User returns the authenticated user, or false when the session has ended.
func (s *Session) User() (User, bool) {
	if !s.Active() {
		return User{}, false
	}
	return s.users.recs[s.idx], true
}

// ChangePassword replaces the session user's password. The old password
// must match the stored one. The user record is replaced by a new value
// (records are immutable) and the whole collection is persisted.
func (s *Session) ChangePassword(oldPassword, newPassword string) error {
	if !s.Active() {
		return ErrNoSession
	}
	cur := s.users.recs[s.idx]
	if !cur.PasswordMatches(oldPassword) {
		return ErrWrongPassword
	}
	s.users.recs[s.idx] = cur.WithPassword(newPassword)
	return s.users.save()
}

// End logs the session out. It always succeeds and is idempotent.
func (s *Session) End() {
	if s != nil {
		s.ended = true
	}
}

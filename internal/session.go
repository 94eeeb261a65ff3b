package internal

// Durable store keys. UserKey holds the serialized Identity, TokenKey the
// signed session token issued at login.
const (
	UserKey  = "aicad_user"
	TokenKey = "aicad_token"
)

// SessionStore is the single source of truth for the current authenticated
// identity. It is the only writer of that state; the router and every
// screen read it through this type.
type SessionStore struct {
	store   *KVStore
	current *Identity
}

// NewSessionStore creates a SessionStore backed by the given KV store.
func NewSessionStore(store *KVStore) *SessionStore {
	return &SessionStore{store: store}
}

// Current returns a copy of the current identity, or nil when logged out.
func (s *SessionStore) Current() *Identity {
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// Authenticated reports whether an identity is present.
func (s *SessionStore) Authenticated() bool {
	return s.current != nil
}

// Restore loads the persisted identity, if any. Absent, malformed, or
// token-expired state leaves the store logged out; Restore never fails
// the application over bad persisted data.
func (s *SessionStore) Restore() {
	s.current = nil

	value, ok, err := s.store.Get(UserKey)
	if err != nil || !ok {
		if err != nil {
			logger.Debugw("session restore skipped", "error", err)
		}
		return
	}

	identity, err := ParseIdentity(value)
	if err != nil {
		logger.Debugw("discarding malformed identity record", "error", err)
		return
	}

	tokenValue, ok, err := s.store.Get(TokenKey)
	if err != nil || !ok {
		logger.Debugw("session restore: no token, treating as logged out")
		return
	}
	userID, err := ValidateToken(tokenValue)
	if err != nil || userID != identity.ID {
		logger.Debugw("session restore: stale token, treating as logged out", "error", err)
		return
	}

	s.current = identity
	logger.Infow("session restored", "user", identity.Email)
}

// Login sets the current identity and persists it, overwriting any prior
// session. The durable write completes before Login returns.
func (s *SessionStore) Login(identity Identity) error {
	value, err := identity.Encode()
	if err != nil {
		return err
	}
	token, err := IssueToken(identity.ID)
	if err != nil {
		return err
	}
	if err := s.store.Set(UserKey, value); err != nil {
		return err
	}
	if err := s.store.Set(TokenKey, token); err != nil {
		return err
	}

	s.current = &identity
	logger.Infow("logged in", "user", identity.Email)
	return nil
}

// Register creates the session for a newly registered identity. There is
// no separate credential store in this demo, so registration behaves
// exactly like login.
func (s *SessionStore) Register(identity Identity) error {
	return s.Login(identity)
}

// UpdateProfile merges the given partial update into the current identity
// and persists the result. It returns ErrNoSession when logged out.
func (s *SessionStore) UpdateProfile(update ProfileUpdate) error {
	if s.current == nil {
		return ErrNoSession
	}

	merged := update.Apply(*s.current)
	value, err := merged.Encode()
	if err != nil {
		return err
	}
	if err := s.store.Set(UserKey, value); err != nil {
		return err
	}

	s.current = &merged
	logger.Infow("profile updated", "user", merged.Email)
	return nil
}

// Logout clears the current identity and erases the durable session.
func (s *SessionStore) Logout() error {
	if err := s.store.Delete(UserKey); err != nil {
		return err
	}
	if err := s.store.Delete(TokenKey); err != nil {
		return err
	}
	s.current = nil
	logger.Infow("logged out")
	return nil
}

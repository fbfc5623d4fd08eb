package mockapi

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gmdesk/console/internal/random"
)

var tokenLength = 64

// Session represents an issued login session.
// Sessions are stored indexed by the SHA-256 hash of the raw bearer token.
type Session struct {
	Token    string
	Username string
	Role     string
	Expires  int64
}

// Expired reports whether the session's lifetime has passed
func (session *Session) Expired() bool {
	return session.Expires <= time.Now().Unix()
}

// User retrieves a registered account by its username.
// The result is nil (without an error) if no account exists.
func (store *Store) User(username string) (*User, error) {
	txn := store.db.Txn(false)
	obj, err := txn.First(tableUsers, "id", username)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*User), nil
}

// UserByEmail retrieves a registered account by its email address
func (store *Store) UserByEmail(email string) (*User, error) {
	txn := store.db.Txn(false)
	obj, err := txn.First(tableUsers, "email", email)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*User), nil
}

// CreateSession issues a new login session for the given account and returns
// the raw bearer token
func (store *Store) CreateSession(user *User, ttl time.Duration) (string, error) {
	rawToken := random.String(tokenLength, random.CharsetTokens)

	session := &Session{
		Token:    hashToken(rawToken),
		Username: user.Username,
		Role:     user.Role,
		Expires:  time.Now().Add(ttl).Unix(),
	}

	txn := store.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(tableSessions, session); err != nil {
		return "", err
	}
	txn.Commit()

	return rawToken, nil
}

// SessionByRawToken retrieves a session by its raw (prior hashing) token.
// The result is nil (without an error) if no session exists.
func (store *Store) SessionByRawToken(rawToken string) (*Session, error) {
	txn := store.db.Txn(false)
	obj, err := txn.First(tableSessions, "id", hashToken(rawToken))
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*Session), nil
}

// TerminateExpiredSessions removes every session whose lifetime has passed
func (store *Store) TerminateExpiredSessions() (int, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	it, err := txn.LowerBound(tableSessions, "expires", 0)
	if err != nil {
		return 0, err
	}

	now := time.Now().Unix()
	deleted := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		session := obj.(*Session)
		if session.Expires > now {
			break
		}
		if err := txn.Delete(tableSessions, session); err != nil {
			return 0, err
		}
		deleted++
	}

	txn.Commit()
	return deleted, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

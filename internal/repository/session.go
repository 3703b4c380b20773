package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

const (
	bucketSession = "session"

	keyToken = "token"
	keyUser  = "user"
)

const openTimeout = time.Second

// Session persists the credential/user pair across process restarts. The
// two keys are always written and cleared together; everything else in
// the bucket belongs to other components and is left alone.
type Session struct {
	db *bolt.DB
}

func Open(path string) (*Session, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create session bucket: %w", err)
	}

	return &Session{db: db}, nil
}

func (s *Session) Close() error {
	return s.db.Close()
}

// Token reads the stored credential on its own. The transport calls this
// per request so that a login or logout is observed by the very next
// call without rebuilding the HTTP client.
func (s *Session) Token() (string, error) {
	var token string

	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketSession)).Get([]byte(keyToken)); v != nil {
			token = string(v)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	return token, nil
}

// Load returns the stored pair. A half-present pair or an unparseable
// user record is treated as no session at all: both keys are cleared and
// the caller proceeds anonymously.
func (s *Session) Load() (string, entity.User, bool, error) {
	var (
		token string
		raw   []byte
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))

		if v := b.Get([]byte(keyToken)); v != nil {
			token = string(v)
		}

		if v := b.Get([]byte(keyUser)); v != nil {
			raw = append(raw, v...)
		}

		return nil
	})
	if err != nil {
		return "", entity.User{}, false, fmt.Errorf("read session: %w", err)
	}

	if token == "" || raw == nil {
		if token != "" || raw != nil {
			if err := s.Clear(); err != nil {
				return "", entity.User{}, false, err
			}
		}

		return "", entity.User{}, false, nil
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		slog.WarnContext(context.Background(), "stored user record is corrupt, clearing session", "error", err)

		if cerr := s.Clear(); cerr != nil {
			return "", entity.User{}, false, cerr
		}

		return "", entity.User{}, false, nil
	}

	return token, user, true, nil
}

// Save writes both keys in a single transaction so an observer never
// sees a credential without its user record.
func (s *Session) Save(token string, user entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))

		if err := b.Put([]byte(keyToken), []byte(token)); err != nil {
			return err
		}

		return b.Put([]byte(keyUser), raw)
	})
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// Clear deletes both keys. Deleting an absent key is a no-op, so Clear
// is idempotent.
func (s *Session) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))

		if err := b.Delete([]byte(keyToken)); err != nil {
			return err
		}

		return b.Delete([]byte(keyUser))
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

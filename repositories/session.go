//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"poker-lab/domain/poker"
	"poker-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

const sessionKeyPrefix = "session:"

type ISessionRepository interface {
	CreateSession(ctx context.Context, session poker.Session) error
	GetSession(ctx context.Context, guid string) (poker.Session, error)
	UpdateSession(ctx context.Context, guid string, mutate func(*poker.Session) error) error
}

type SessionRepository struct {
	db            *badger.DB
	log           *slog.Logger
	commitRetries int
}

func NewSessionRepository(db *badger.DB, log *slog.Logger, commitRetries int) *SessionRepository {
	return &SessionRepository{db: db, log: log, commitRetries: commitRetries}
}

func sessionKey(guid string) []byte {
	return []byte(sessionKeyPrefix + guid)
}

// CreateSession persists a brand new session record.
// The GUID is freshly generated by the caller, so no existence check is needed.
func (r SessionRepository) CreateSession(ctx context.Context, session poker.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(session.GUID), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// GetSession retrieves the current state of a session.
func (r SessionRepository) GetSession(ctx context.Context, guid string) (poker.Session, error) {
	if err := ctx.Err(); err != nil {
		return poker.Session{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	var session poker.Session
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(guid))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})

	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return poker.Session{}, errors.ErrSessionNotFound
	}
	if err != nil {
		return poker.Session{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return session, nil
}

// UpdateSession runs a read-modify-write cycle against a single session record.
// The closure sees the roster exactly as the committing transaction reads it, which is
// what closes the first-joiner, duplicate-join and stale-roster-reset races: two
// conflicting writers cannot both commit, Badger aborts the loser with ErrConflict
// and the whole cycle is replayed against the fresh state.
// The record version is bumped on every successful commit.
func (r SessionRepository) UpdateSession(ctx context.Context, guid string, mutate func(*poker.Session) error) error {
	var lastErr error
	for attempt := 0; attempt <= r.commitRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
		}

		err := r.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(sessionKey(guid))
			if err != nil {
				return err
			}

			var session poker.Session
			if err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &session)
			}); err != nil {
				return err
			}

			if err = mutate(&session); err != nil {
				return err
			}
			session.Version++

			data, err := json.Marshal(session)
			if err != nil {
				return err
			}
			return txn.Set(sessionKey(guid), data)
		})

		switch {
		case err == nil:
			return nil
		case stderrors.Is(err, badger.ErrConflict):
			// Another request mutated the same session between our read and commit.
			r.log.Debug("session commit conflict, retrying",
				"guid", guid,
				"attempt", attempt+1)
			lastErr = err
		case stderrors.Is(err, badger.ErrKeyNotFound):
			return errors.ErrSessionNotFound
		default:
			// Business rule failures raised by the closure pass through untouched.
			if isDomainErr(err) {
				return err
			}
			return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
		}
	}
	return fmt.Errorf("%w: commit retries exhausted: %v", errors.ErrStoreUnavailable, lastErr)
}

func isDomainErr(err error) bool {
	return stderrors.Is(err, errors.ErrUserAlreadyJoined) ||
		stderrors.Is(err, errors.ErrUserNotFound) ||
		stderrors.Is(err, errors.ErrSessionEmpty)
}

//go:generate go run go.uber.org/mock/mockgen -source=session_service.go -destination=../mocks/mock_session_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"poker-lab/domain/poker"
	"poker-lab/errors"
	"poker-lab/repositories"

	"github.com/google/uuid"
)

type ISessionService interface {
	CreateSession(ctx context.Context, cmd poker.CreateSessionCommand) (string, error)
	GetSession(ctx context.Context, sessionID string) (poker.Session, error)
	JoinSession(ctx context.Context, cmd poker.JoinSessionCommand) error
	UpdateStoryPoint(ctx context.Context, cmd poker.UpdateStoryPointCommand) error
	StartVoting(ctx context.Context, sessionID string) error
	ShowStoryPoints(ctx context.Context, sessionID string) error
	UpdateSettings(ctx context.Context, cmd poker.UpdateSettingsCommand) error
}

type SessionService struct {
	sessionRepository repositories.ISessionRepository
	log               *slog.Logger
	storeTimeout      time.Duration
}

func NewSessionService(log *slog.Logger, repo repositories.ISessionRepository,
	storeTimeout time.Duration) *SessionService {
	return &SessionService{sessionRepository: repo, log: log, storeTimeout: storeTimeout}
}

// CreateSession registers a fresh session with an empty roster and hidden votes.
// It returns the generated session GUID.
func (s *SessionService) CreateSession(ctx context.Context, cmd poker.CreateSessionCommand) (string, error) {
	if err := poker.ValidateCommand(cmd); err != nil {
		return "", err
	}

	session := poker.Session{
		GUID:         uuid.NewString(),
		Name:         cmd.Name,
		VotingSystem: cmd.VotingSystem,
		Users:        []poker.Participant{},
		Hide:         true,
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return "", err
	}
	s.log.Info("session created", "guid", session.GUID, "name", session.Name)
	return session.GUID, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (poker.Session, error) {
	if sessionID == "" {
		return poker.Session{}, fmt.Errorf("%w: sessionId required", errors.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.sessionRepository.GetSession(ctx, sessionID)
}

// JoinSession appends a participant to the roster.
// The duplicate check and the first-joiner ownership rule are both evaluated inside
// the committing store transaction, so concurrent joins can never produce two owners
// or two entries for the same userId.
func (s *SessionService) JoinSession(ctx context.Context, cmd poker.JoinSessionCommand) error {
	if err := poker.ValidateCommand(cmd); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.sessionRepository.UpdateSession(ctx, cmd.SessionID, func(session *poker.Session) error {
		if session.IndexOfUser(cmd.UserID) != -1 {
			return errors.ErrUserAlreadyJoined
		}
		session.Users = append(session.Users, poker.Participant{
			UserID:       cmd.UserID,
			Name:         cmd.Name,
			IsOnline:     true,
			Point:        0,
			SessionOwner: len(session.Users) == 0,
		})
		return nil
	})
}

// UpdateStoryPoint records one participant's vote. The vote stays concealed until
// ShowStoryPoints flips the hide flag.
func (s *SessionService) UpdateStoryPoint(ctx context.Context, cmd poker.UpdateStoryPointCommand) error {
	if err := poker.ValidateCommand(cmd); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.sessionRepository.UpdateSession(ctx, cmd.SessionID, func(session *poker.Session) error {
		idx := session.IndexOfUser(cmd.UserID)
		if idx == -1 {
			return errors.ErrUserNotFound
		}
		session.Users[idx].Point = *cmd.Point
		return nil
	})
}

// StartVoting resets the round: every point back to 0 and votes hidden again.
// The zeroing runs over the roster as read by the committing transaction, never over
// a count captured earlier, so a concurrently joining participant is reset too.
func (s *SessionService) StartVoting(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionId required", errors.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.sessionRepository.UpdateSession(ctx, sessionID, func(session *poker.Session) error {
		if len(session.Users) == 0 {
			return errors.ErrSessionEmpty
		}
		for i := range session.Users {
			session.Users[i].Point = 0
		}
		session.Hide = true
		return nil
	})
}

// ShowStoryPoints reveals the current votes. Participant data is left untouched.
func (s *SessionService) ShowStoryPoints(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionId required", errors.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.sessionRepository.UpdateSession(ctx, sessionID, func(session *poker.Session) error {
		session.Hide = false
		return nil
	})
}

// UpdateSettings overwrites the display settings. Roster, hide flag and GUID are
// never touched here.
func (s *SessionService) UpdateSettings(ctx context.Context, cmd poker.UpdateSettingsCommand) error {
	if err := poker.ValidateCommand(cmd); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.sessionRepository.UpdateSession(ctx, cmd.SessionID, func(session *poker.Session) error {
		session.Name = cmd.Name
		session.Goal = cmd.Goal
		session.PrevSprintSP = *cmd.PrevSprintSP
		session.CurrentSprintSPLimit = *cmd.CurrentSprintSPLimit
		return nil
	})
}

package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"poker-lab/domain/poker"
	"poker-lab/errors"
	"poker-lab/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const storeTimeout = 2 * time.Second

// applyMutation wires the mocked UpdateSession so the business closure runs
// against a seeded session, exactly as the repository would replay it.
func applyMutation(session *poker.Session) func(context.Context, string, func(*poker.Session) error) error {
	return func(_ context.Context, _ string, mutate func(*poker.Session) error) error {
		return mutate(session)
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(slog.Default(), mockRepo, storeTimeout)
	ctx := context.Background()

	t.Run("should create a hidden empty session and return its guid", func(t *testing.T) {
		req := require.New(t)

		var stored poker.Session
		mockRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, session poker.Session) error {
				stored = session
				return nil
			}).
			Times(1)

		guid, err := svc.CreateSession(ctx, poker.CreateSessionCommand{
			Name:         "backend team",
			VotingSystem: "fibonacci",
		})

		req.NoError(err)
		req.NotEmpty(guid)
		req.Equal(guid, stored.GUID)
		req.True(stored.Hide)
		req.Empty(stored.Users)
		req.Equal("backend team", stored.Name)
		req.Equal("fibonacci", stored.VotingSystem)
	})

	t.Run("should reject missing name without touching the store", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateSession(ctx, poker.CreateSessionCommand{VotingSystem: "tshirt"})
		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should generate a fresh guid per session", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		cmd := poker.CreateSessionCommand{Name: "a", VotingSystem: "b"}
		first, err := svc.CreateSession(ctx, cmd)
		req.NoError(err)
		second, err := svc.CreateSession(ctx, cmd)
		req.NoError(err)
		req.NotEqual(first, second)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(slog.Default(), mockRepo, storeTimeout)

	t.Run("should reject empty session id", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.GetSession(context.Background(), "")
		req.ErrorIs(err, errors.ErrInvalidInput)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			GetSession(gomock.Any(), "ghost").
			Return(poker.Session{}, errors.ErrSessionNotFound).
			Times(1)

		_, err := svc.GetSession(context.Background(), "ghost")
		req.ErrorIs(err, errors.ErrSessionNotFound)
	})
}

func TestSessionService_JoinSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(slog.Default(), mockRepo, storeTimeout)
	ctx := context.Background()

	t.Run("first joiner becomes session owner", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Hide: true}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		err := svc.JoinSession(ctx, poker.JoinSessionCommand{
			SessionID: "s1", UserID: "alice", Name: "Alice",
		})

		req.NoError(err)
		req.Len(session.Users, 1)
		req.True(session.Users[0].SessionOwner)
		req.True(session.Users[0].IsOnline)
		req.Zero(session.Users[0].Point)
	})

	t.Run("second joiner is a regular participant", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Users: []poker.Participant{
			{UserID: "alice", Name: "Alice", SessionOwner: true},
		}}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		err := svc.JoinSession(ctx, poker.JoinSessionCommand{
			SessionID: "s1", UserID: "bob", Name: "Bob",
		})

		req.NoError(err)
		req.Len(session.Users, 2)
		req.False(session.Users[1].SessionOwner)
	})

	t.Run("duplicate userId is rejected and roster unchanged", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Users: []poker.Participant{
			{UserID: "alice", Name: "Alice", SessionOwner: true},
		}}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		err := svc.JoinSession(ctx, poker.JoinSessionCommand{
			SessionID: "s1", UserID: "alice", Name: "Alice again",
		})

		req.ErrorIs(err, errors.ErrUserAlreadyJoined)
		req.Len(session.Users, 1)
	})

	t.Run("missing name is a validation error", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().UpdateSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.JoinSession(ctx, poker.JoinSessionCommand{SessionID: "s1", UserID: "alice"})
		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

func TestSessionService_UpdateStoryPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(slog.Default(), mockRepo, storeTimeout)
	ctx := context.Background()

	t.Run("only the voter's point changes", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Hide: true, Users: []poker.Participant{
			{UserID: "alice", Point: 3, SessionOwner: true},
			{UserID: "bob", Point: 5},
		}}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		err := svc.UpdateStoryPoint(ctx, poker.UpdateStoryPointCommand{
			SessionID: "s1", UserID: "bob", Point: lo.ToPtr(8.0),
		})

		req.NoError(err)
		req.Equal(3.0, session.Users[0].Point)
		req.Equal(8.0, session.Users[1].Point)
		req.True(session.Hide, "voting must not reveal points")
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Users: []poker.Participant{{UserID: "alice"}}}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		err := svc.UpdateStoryPoint(ctx, poker.UpdateStoryPointCommand{
			SessionID: "s1", UserID: "ghost", Point: lo.ToPtr(1.0),
		})
		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("missing point is a validation error", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().UpdateSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.UpdateStoryPoint(ctx, poker.UpdateStoryPointCommand{SessionID: "s1", UserID: "alice"})
		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

func TestSessionService_StartVoting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(slog.Default(), mockRepo, storeTimeout)
	ctx := context.Background()

	t.Run("resets every point and hides the round", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Hide: false, Users: []poker.Participant{
			{UserID: "alice", Point: 3, SessionOwner: true},
			{UserID: "bob", Point: 13},
			{UserID: "carol", Point: 8},
		}}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		req.NoError(svc.StartVoting(ctx, "s1"))
		req.True(session.Hide)
		for _, u := range session.Users {
			req.Zero(u.Point)
		}
		req.True(session.Users[0].SessionOwner, "reset must not touch ownership")
	})

	t.Run("empty roster is a conflict", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Hide: true}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		req.ErrorIs(svc.StartVoting(ctx, "s1"), errors.ErrSessionEmpty)
	})

	t.Run("empty session id is a validation error", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().UpdateSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		req.ErrorIs(svc.StartVoting(ctx, ""), errors.ErrInvalidInput)
	})
}

func TestSessionService_ShowStoryPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(slog.Default(), mockRepo, storeTimeout)

	t.Run("reveals without touching votes", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1", Hide: true, Users: []poker.Participant{
			{UserID: "alice", Point: 5, SessionOwner: true},
			{UserID: "bob", Point: 8},
		}}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		req.NoError(svc.ShowStoryPoints(context.Background(), "s1"))
		req.False(session.Hide)
		req.Equal(5.0, session.Users[0].Point)
		req.Equal(8.0, session.Users[1].Point)
	})
}

func TestSessionService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(slog.Default(), mockRepo, storeTimeout)
	ctx := context.Background()

	t.Run("overwrites settings and nothing else", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{
			GUID: "s1", Name: "old", Goal: "old goal", Hide: true,
			Users: []poker.Participant{{UserID: "alice", SessionOwner: true}},
		}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		err := svc.UpdateSettings(ctx, poker.UpdateSettingsCommand{
			SessionID:            "s1",
			Name:                 "sprint 43",
			Goal:                 "estimate the payment flow",
			PrevSprintSP:         lo.ToPtr(34.0),
			CurrentSprintSPLimit: lo.ToPtr(40.0),
		})

		req.NoError(err)
		req.Equal("sprint 43", session.Name)
		req.Equal("estimate the payment flow", session.Goal)
		req.Equal(34.0, session.PrevSprintSP)
		req.Equal(40.0, session.CurrentSprintSPLimit)
		req.True(session.Hide)
		req.Len(session.Users, 1)
		req.Equal("s1", session.GUID)
	})

	t.Run("zero is a valid sprint value", func(t *testing.T) {
		req := require.New(t)
		session := poker.Session{GUID: "s1"}
		mockRepo.EXPECT().
			UpdateSession(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(applyMutation(&session)).
			Times(1)

		err := svc.UpdateSettings(ctx, poker.UpdateSettingsCommand{
			SessionID:            "s1",
			Name:                 "sprint 43",
			Goal:                 "warmup",
			PrevSprintSP:         lo.ToPtr(0.0),
			CurrentSprintSPLimit: lo.ToPtr(0.0),
		})
		req.NoError(err)
	})

	t.Run("missing goal is a validation error", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().UpdateSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.UpdateSettings(ctx, poker.UpdateSettingsCommand{
			SessionID:            "s1",
			Name:                 "sprint 43",
			PrevSprintSP:         lo.ToPtr(1.0),
			CurrentSprintSPLimit: lo.ToPtr(2.0),
		})
		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

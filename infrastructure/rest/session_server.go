package rest

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"poker-lab/domain/poker"
	"poker-lab/errors"
	"poker-lab/services"

	"github.com/samber/lo"
)

const serviceName = "poker-lab"

// SessionServer exposes the session operations over HTTP.
// It owns no state besides its collaborators: every request is handled
// independently and may run concurrently with any other.
type SessionServer struct {
	sessionService services.ISessionService
	log            *slog.Logger
}

func NewSessionServer(log *slog.Logger, sessionService services.ISessionService) *SessionServer {
	return &SessionServer{sessionService: sessionService, log: log}
}

// Routes builds the full route table. Literal segments ("reset", "show", "settings")
// take precedence over the {userId} wildcard, per ServeMux pattern rules.
func (s *SessionServer) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{sessionId}", s.handleGetSession)
	mux.HandleFunc("POST /sessions/{sessionId}/{userId}", s.handleJoinSession)
	mux.HandleFunc("PUT /sessions/{sessionId}/{userId}", s.handleUpdateStoryPoint)
	mux.HandleFunc("PUT /sessions/{sessionId}/reset", s.handleStartVoting)
	mux.HandleFunc("PUT /sessions/{sessionId}/show", s.handleShowStoryPoints)
	mux.HandleFunc("PUT /sessions/{sessionId}/settings", s.handleUpdateSettings)
	return mux
}

type createSessionRequest struct {
	Name         string `json:"name"`
	VotingSystem string `json:"votingSystem"`
}

type joinSessionRequest struct {
	Name string `json:"name"`
}

type updateStoryPointRequest struct {
	Point *float64 `json:"point"`
}

type updateSettingsRequest struct {
	Name                 string   `json:"name"`
	Goal                 string   `json:"goal"`
	PrevSprintSP         *float64 `json:"prevSprintSP"`
	CurrentSprintSPLimit *float64 `json:"currentSprintSPLimit"`
}

type participantResponse struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	IsOnline     bool    `json:"isOnline"`
	Point        float64 `json:"point"`
	SessionOwner bool    `json:"sessionOwner"`
}

type sessionResponse struct {
	GUID                 string                `json:"guid"`
	Name                 string                `json:"name"`
	VotingSystem         string                `json:"votingSystem"`
	Users                []participantResponse `json:"users"`
	Hide                 bool                  `json:"hide"`
	PrevSprintSP         float64               `json:"prevSprintSP"`
	CurrentSprintSPLimit float64               `json:"currentSprintSPLimit"`
	Goal                 string                `json:"goal"`
	Version              uint64                `json:"version"`
}

func toSessionResponse(session poker.Session) sessionResponse {
	return sessionResponse{
		GUID:         session.GUID,
		Name:         session.Name,
		VotingSystem: session.VotingSystem,
		Users: lo.Map(session.Users, func(item poker.Participant, _ int) participantResponse {
			return participantResponse{
				UserID:       item.UserID,
				Name:         item.Name,
				IsOnline:     item.IsOnline,
				Point:        item.Point,
				SessionOwner: item.SessionOwner,
			}
		}),
		Hide:                 session.Hide,
		PrevSprintSP:         session.PrevSprintSP,
		CurrentSprintSPLimit: session.CurrentSprintSPLimit,
		Goal:                 session.Goal,
		Version:              session.Version,
	}
}

func (s *SessionServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":   serviceName,
		"timestamp": time.Now().UnixMilli(),
	})
}

func (s *SessionServer) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	sessionID, err := s.sessionService.CreateSession(r.Context(), poker.CreateSessionCommand{
		Name:         req.Name,
		VotingSystem: req.VotingSystem,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"sessionId": sessionID})
}

func (s *SessionServer) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionService.GetSession(r.Context(), r.PathValue("sessionId"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (s *SessionServer) handleJoinSession(w http.ResponseWriter, r *http.Request) {
	var req joinSessionRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	err := s.sessionService.JoinSession(r.Context(), poker.JoinSessionCommand{
		SessionID: r.PathValue("sessionId"),
		UserID:    r.PathValue("userId"),
		Name:      req.Name,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "user joined!"})
}

func (s *SessionServer) handleUpdateStoryPoint(w http.ResponseWriter, r *http.Request) {
	var req updateStoryPointRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	err := s.sessionService.UpdateStoryPoint(r.Context(), poker.UpdateStoryPointCommand{
		SessionID: r.PathValue("sessionId"),
		UserID:    r.PathValue("userId"),
		Point:     req.Point,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "story point updated!"})
}

func (s *SessionServer) handleStartVoting(w http.ResponseWriter, r *http.Request) {
	if err := s.sessionService.StartVoting(r.Context(), r.PathValue("sessionId")); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "story points updated!"})
}

func (s *SessionServer) handleShowStoryPoints(w http.ResponseWriter, r *http.Request) {
	if err := s.sessionService.ShowStoryPoints(r.Context(), r.PathValue("sessionId")); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "session updated!"})
}

func (s *SessionServer) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	err := s.sessionService.UpdateSettings(r.Context(), poker.UpdateSettingsCommand{
		SessionID:            r.PathValue("sessionId"),
		Name:                 req.Name,
		Goal:                 req.Goal,
		PrevSprintSP:         req.PrevSprintSP,
		CurrentSprintSPLimit: req.CurrentSprintSPLimit,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "settings updated!"})
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: body required", errors.ErrInvalidInput)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	return nil
}

func (s *SessionServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", "error", err)
	}
}

// writeError renders the domain error as a JSON body. Internal details
// (store errors, validator dumps) are logged, never exposed to the client.
func (s *SessionServer) writeError(w http.ResponseWriter, err error) {
	status := errors.MapToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	} else {
		s.log.Debug("request rejected", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": publicMessage(err)})
}

func publicMessage(err error) string {
	for _, sentinel := range []error{
		errors.ErrInvalidInput,
		errors.ErrSessionNotFound,
		errors.ErrUserNotFound,
		errors.ErrUserAlreadyJoined,
		errors.ErrSessionEmpty,
	} {
		if stderrors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return errors.ErrStoreUnavailable.Error()
}

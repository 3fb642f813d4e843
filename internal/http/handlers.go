package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/yuniersoad/dota2notify/internal/users"
)

type notifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type checkSummary struct {
	Checked  int `json:"checked"`
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// HealthCheckHandler reports service liveness.
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK!"))
}

// NotifyHandler sends an ad-hoc message to a user's notification channel.
func (s *Server) NotifyHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "invalid userId"})
		return
	}
	message := r.URL.Query().Get("message")
	if message == "" {
		respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "message is required"})
		return
	}

	user, err := s.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, notifyResponse{Error: "user not found"})
			return
		}
		respondJSON(w, http.StatusInternalServerError, notifyResponse{Error: "failed to load user"})
		return
	}

	if err := s.Notifier.Send(r.Context(), message, user.Recipient); err != nil {
		log.Error("Failed to send notification", "userID", userID, "error", err)
		respondJSON(w, http.StatusBadGateway, notifyResponse{Error: "failed to send notification"})
		return
	}
	respondJSON(w, http.StatusOK, notifyResponse{Success: true, Message: "notification sent successfully"})
}

// MatchesHandler returns recent matches for the player given in the query.
func (s *Server) MatchesHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.ParseInt(r.URL.Query().Get("playerId"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "invalid playerId"})
		return
	}
	s.serveMatches(w, r, playerID)
}

// DefaultMatchesHandler returns recent matches for the configured default
// player.
func (s *Server) DefaultMatchesHandler(w http.ResponseWriter, r *http.Request) {
	s.serveMatches(w, r, s.Cfg.OpenDota.DefaultPlayerID)
}

func (s *Server) serveMatches(w http.ResponseWriter, r *http.Request, playerID int64) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	matches, err := s.Dota.GetRecentMatches(r.Context(), playerID, limit)
	if err != nil {
		log.Error("Failed to fetch matches", "playerID", playerID, "error", err)
		respondJSON(w, http.StatusBadGateway, notifyResponse{Error: "failed to fetch matches"})
		return
	}
	respondJSON(w, http.StatusOK, matches)
}

// UsersHandler lists users on GET and upserts a user on POST.
func (s *Server) UsersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var user users.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "invalid user payload"})
			return
		}
		saved, err := s.Store.UpsertUser(&user)
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, notifyResponse{Error: "failed to save user"})
			return
		}
		respondJSON(w, http.StatusOK, saved)
		return
	}

	all, err := s.Store.ListUsers()
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, notifyResponse{Error: "failed to list users"})
		return
	}
	if all == nil {
		all = []*users.User{}
	}
	respondJSON(w, http.StatusOK, all)
}

// GetUserHandler returns a single user by numeric identifier.
func (s *Server) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "invalid id"})
		return
	}

	user, err := s.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, notifyResponse{Error: "user not found"})
			return
		}
		respondJSON(w, http.StatusInternalServerError, notifyResponse{Error: "failed to load user"})
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// FollowHandler adds a followed player to a user's follow list.
func (s *Server) FollowHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondJSON(w, http.StatusMethodNotAllowed, notifyResponse{Error: "method not allowed"})
		return
	}

	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "invalid userId"})
		return
	}

	var player users.FollowedPlayer
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		respondJSON(w, http.StatusBadRequest, notifyResponse{Error: "invalid player payload"})
		return
	}

	user, err := s.Store.AddFollowedPlayer(userID, player)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, notifyResponse{Error: "user not found"})
			return
		}
		respondJSON(w, http.StatusInternalServerError, notifyResponse{Error: "failed to follow player"})
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// CheckHandler triggers one check cycle and reports a summary.
func (s *Server) CheckHandler(w http.ResponseWriter, r *http.Request) {
	results, err := s.Checker.RunCycle(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, notifyResponse{Error: err.Error()})
		return
	}

	summary := checkSummary{Checked: len(results)}
	for _, result := range results {
		if result.Notified {
			summary.Notified++
		}
		if result.Err != nil {
			summary.Failed++
		}
	}
	respondJSON(w, http.StatusOK, summary)
}

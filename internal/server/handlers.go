package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	key := cache.Key("api", "user", username)
	if s.serveCached(w, r, key) {
		return
	}

	user, err := s.service.FetchUser(r.Context(), username)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCachedJSON(w, r, key, user)
}

func (s *Server) handleGetRepositories(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	search := r.URL.Query().Get("search")
	language := r.URL.Query().Get("language")
	key := cache.Key("api", "repos", username, search, language)
	if s.serveCached(w, r, key) {
		return
	}

	repos, err := s.service.FetchFilteredRepositories(r.Context(), username, search, language)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCachedJSON(w, r, key, repos)
}

func (s *Server) handleGetLanguages(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	key := cache.Key("api", "languages", username)
	if s.serveCached(w, r, key) {
		return
	}

	stats, err := s.service.FetchLanguageStats(r.Context(), username)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCachedJSON(w, r, key, stats)
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	key := cache.Key("api", "search", query)
	if s.serveCached(w, r, key) {
		return
	}

	users, err := s.service.SearchUsers(r.Context(), query)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if users == nil {
		users = []github.User{}
	}
	s.writeCachedJSON(w, r, key, users)
}

// serveCached writes a cached response body if one exists. Cache failures
// only log; the request proceeds uncached.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	data, ok, err := s.cache.Get(r.Context(), key)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "hit")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
	return true
}

func (s *Server) writeCachedJSON(w http.ResponseWriter, r *http.Request, key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode response"))
		return
	}
	if err := s.cache.Set(r.Context(), key, body, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps application error codes onto HTTP statuses. Upstream
// failures surface as 502 since this service acts as a gateway.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.ErrCodeUserNotFound, apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeNetwork, apperrors.ErrCodeServer, apperrors.ErrCodeDecoding:
		status = http.StatusBadGateway
	}
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	s.writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	}})
}

package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fakemc-server/internal/api"
	"fakemc-server/internal/domain"
	"fakemc-server/internal/service"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// Server exposes the lookup services as a JSON API consumed by the
// frontend.
type Server struct {
	profiles  *service.ProfileService
	hypixel   *service.HypixelService
	status    *service.StatusService
	favorites *service.FavoriteService
	hypixelC  *api.HypixelClient
	logger    zerolog.Logger
}

func New(
	profiles *service.ProfileService,
	hypixel *service.HypixelService,
	status *service.StatusService,
	favorites *service.FavoriteService,
	hypixelC *api.HypixelClient,
	logger zerolog.Logger,
) *Server {
	return &Server{
		profiles:  profiles,
		hypixel:   hypixel,
		status:    status,
		favorites: favorites,
		hypixelC:  hypixelC,
		logger:    logger,
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/profiles/{term}", s.handleGetProfile)
	mux.HandleFunc("GET /api/v1/players/{uuid}/hypixel", s.handleGetHypixel)
	mux.HandleFunc("GET /api/v1/players/{uuid}/status", s.handleGetStatus)
	mux.HandleFunc("GET /api/v1/favorites", s.handleListFavorites)
	mux.HandleFunc("POST /api/v1/favorites", s.handleAddFavorite)
	mux.HandleFunc("DELETE /api/v1/favorites/{uuid}", s.handleDeleteFavorite)
	mux.HandleFunc("GET /api/v1/ratelimit", s.handleRateLimit)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")

	res, err := s.profiles.Resolve(r.Context(), term)
	if err != nil {
		if res.Status != domain.StatusSuccess {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		// fetched but not cached; still usable
		s.logger.Warn().Err(err).Str("term", term).Msg("serving uncached profile")
	}

	switch res.Status {
	case domain.StatusSuccess:
		s.writeJSON(w, http.StatusOK, newProfileResponse(res))
	case domain.StatusNotFound:
		s.writeJSON(w, http.StatusNotFound, statusResponse{Status: res.Status})
	default:
		s.writeJSON(w, http.StatusBadGateway, statusResponse{Status: res.Status})
	}
}

func (s *Server) handleGetHypixel(w http.ResponseWriter, r *http.Request) {
	uuid := r.PathValue("uuid")

	maxMembers := 0
	if v := r.URL.Query().Get("members"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errors.New("members must be an integer"))
			return
		}
		maxMembers = n
	}

	res, err := s.hypixel.ResolvePlayerAndGuild(r.Context(), uuid, maxMembers)
	if err != nil {
		if res.Status != domain.StatusSuccess {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		s.logger.Warn().Err(err).Str("uuid", uuid).Msg("serving uncached hypixel data")
	}

	switch res.Status {
	case domain.StatusSuccess:
		s.writeJSON(w, http.StatusOK, newHypixelResponse(res))
	case domain.StatusNotFound:
		s.writeJSON(w, http.StatusNotFound, statusResponse{Status: res.Status})
	case domain.StatusAuthRejected:
		s.writeJSON(w, http.StatusUnauthorized, statusResponse{Status: res.Status})
	default:
		s.writeJSON(w, http.StatusBadGateway, statusResponse{Status: res.Status})
	}
}

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	uuid := r.PathValue("uuid")
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("name query parameter is required"))
		return
	}

	online := s.status.CheckOnline(r.Context(), name, uuid)
	s.writeJSON(w, http.StatusOK, onlineStatusResponse{Status: online})
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.favorites.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := make([]favoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		resp = append(resp, favoriteResponse{UUID: f.UUID, Username: f.Username})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.UUID == "" || req.Username == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("uuid and username are required"))
		return
	}

	if err := s.favorites.Add(r.Context(), req.UUID, req.Username); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	err := s.favorites.Remove(r.Context(), r.PathValue("uuid"))
	if errors.Is(err, sql.ErrNoRows) {
		s.writeError(w, http.StatusNotFound, errors.New("favorite not found"))
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRateLimit(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.hypixelC.GetRateLimitInfo())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Error().Err(err).Int("status", status).Msg("request failed")
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

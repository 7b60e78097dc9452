package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/domain/model/errs"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
	"github.com/pfd-lab/meshirec/pkg/utils/logging"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(r.Context()).Error("failed to encode response", "error", err)
	}
}

// countParam parses the optional ?n= query parameter. Absent means 0,
// which lets the engine apply its default.
func countParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, goerr.New("invalid result count",
			goerr.T(errs.TagValidation), goerr.V("n", raw))
	}
	return n, nil
}

type recordsResponse struct {
	Records   []restaurant.Record `json:"records"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	records, updatedAt, err := s.uc.Records(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, recordsResponse{Records: records, UpdatedAt: updatedAt})
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.uc.Users(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string][]types.UserID{"users": users})
}

func (s *Server) handleRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.uc.Restaurants(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string][]types.RestaurantName{"restaurants": restaurants})
}

type recommendResponse struct {
	Recommendations []restaurant.Record `json:"recommendations"`
}

func (s *Server) handleRecommendForUser(w http.ResponseWriter, r *http.Request) {
	n, err := countParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	user := types.UserID(chi.URLParam(r, "user"))
	recs, err := s.uc.RecommendForUser(r.Context(), user, n)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if recs == nil {
		recs = []restaurant.Record{}
	}
	respondJSON(w, r, http.StatusOK, recommendResponse{Recommendations: recs})
}

func (s *Server) handleRecommendSimilar(w http.ResponseWriter, r *http.Request) {
	n, err := countParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	name := types.RestaurantName(chi.URLParam(r, "restaurant"))
	recs, err := s.uc.RecommendSimilar(r.Context(), name, n)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if recs == nil {
		recs = []restaurant.Record{}
	}
	respondJSON(w, r, http.StatusOK, recommendResponse{Recommendations: recs})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Refresh(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}

	records, updatedAt, err := s.uc.Records(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"records":    len(records),
		"updated_at": updatedAt,
	})
}

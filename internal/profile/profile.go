package profile

import (
	"encoding/json"
	"net/http"
	"strconv"

	auth "Camber/internal/auth"
	"Camber/internal/repo"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	Repo repo.Repository
}

// UpdateProfileRequest changes the description and the calculator defaults
// the form prefills for this engineer.
type UpdateProfileRequest struct {
	Description       string  `json:"description"`
	DefaultEGPa       float64 `json:"default_e_gpa"`
	DefaultLimitRatio float64 `json:"default_limit_ratio"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if idStr, ok := vars["id"]; ok && idStr != "" {
		targetID, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}
		prof, err := h.Repo.GetProfileByID(r.Context(), targetID)
		if err != nil {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(prof)
		return
	}

	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(prof)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.DefaultEGPa <= 0 {
		req.DefaultEGPa = 200
	}
	if req.DefaultLimitRatio <= 0 {
		req.DefaultLimitRatio = 250
	}

	if err := h.Repo.UpdateProfile(r.Context(), userID, req.Description, req.DefaultEGPa, req.DefaultLimitRatio); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package history

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	auth "Hydraulics/internal/auth"
	repo "Hydraulics/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type saveRequest struct {
	Tool   string          `json:"tool"`
	Input  json.RawMessage `json:"input"`
	Result json.RawMessage `json:"result"`
}

var knownTools = map[string]bool{
	"pressure":    true,
	"gravity":     true,
	"partialflow": true,
}

// Save stores one finished calculation (input and result as the client saw
// them) under the authenticated user.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !knownTools[req.Tool] || len(req.Input) == 0 || len(req.Result) == 0 {
		http.Error(w, "Tool, input and result required", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveCalculation(r.Context(), userID, req.Tool, req.Input, req.Result)
	if err != nil {
		log.Printf("SaveCalculation error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

// List returns the user's most recent calculations, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}
	list, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		log.Printf("ListCalculations error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []repo.Calculation{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/leaderboard"
)

const maxLeaderboardLimit = 100

func (h *routerHandlers) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := config.LeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxLeaderboardLimit)
	}

	entries, err := h.store.Top(r.Context(), limit)
	if errors.Is(err, leaderboard.ErrInvalidLimit) {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("API: leaderboard query failed: %v", err)
		writeError(w, "leaderboard unavailable", http.StatusServiceUnavailable)
		return
	}
	if entries == nil {
		entries = []leaderboard.Entry{}
	}
	writeJSON(w, entries)
}

func (h *routerHandlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

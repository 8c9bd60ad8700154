package server

import (
	"encoding/json"
	"log"
	"net/http"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[HTTP] encode error: %v\n", err)
	}
}

func respondData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	log.Printf("[HTTP][%d] %s\n", status, msg)
	writeJSON(w, status, apiResponse{Success: false, Error: msg})
}

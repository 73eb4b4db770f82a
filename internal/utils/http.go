// Package utils holds small helpers shared by the HTTP handlers.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and
// "Content-Type: application/json". A nil data is written as null.
//
// If marshaling fails nothing is written except a 500 Internal Server Error
// and the wrapped error is returned.
//
// It returns the number of body bytes written.
//
//	WriteJSON(w, models.PingResponse{Service: "B", Message: "pong desde B"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "persona was not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

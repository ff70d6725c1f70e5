package handler

import (
	"encoding/json"
	"net/http"

	"caretier/internal/config"
)

// SchemaHandler serves the loaded question schema so the external form layer
// can render it
type SchemaHandler struct {
	rules *config.RuleSet
}

// NewSchemaHandler creates a new schema handler
func NewSchemaHandler(rules *config.RuleSet) *SchemaHandler {
	return &SchemaHandler{
		rules: rules,
	}
}

// Get handles GET /v1/schema
func (h *SchemaHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":   h.rules.Version,
		"questions": h.rules.Questions,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

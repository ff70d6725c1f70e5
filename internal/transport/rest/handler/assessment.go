package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"caretier/internal/model"
	"caretier/internal/service"
)

// AssessmentHandler handles assessment submission and retrieval
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
	}
}

// SubmitAssessmentRequest is the request body for submitting an answer set
type SubmitAssessmentRequest struct {
	Answers      model.RawAnswers `json:"answers"`
	EffectFlags  []string         `json:"effectFlags,omitempty"`
	CompareHours bool             `json:"compareHours,omitempty"`
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	assessment, err := h.assessmentSvc.Submit(r.Context(), req.Answers, req.EffectFlags, req.CompareHours)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	assessment, err := h.assessmentSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// List handles GET /v1/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.assessmentSvc.List(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": assessments})
}

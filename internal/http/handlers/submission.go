package handlers

import (
	"net/http"

	"freelancehub/internal/app"
	"freelancehub/internal/http/middleware"
	"freelancehub/internal/http/response"
)

type SubmissionHandler struct {
	submissions *app.SubmissionService
}

func NewSubmissionHandler(submissions *app.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

type submitRequest struct {
	Notes string   `json:"notes"`
	Files []string `json:"files"`
}

// Submit handles POST /api/contracts/{id}/submissions.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	freelancerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	contractID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.submissions.Submit(r.Context(), contractID, freelancerID, req.Notes, req.Files)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *SubmissionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	submissionID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	reviewed, err := h.submissions.Accept(r.Context(), submissionID, clientID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, reviewed)
}

type requestChangesRequest struct {
	Feedback string `json:"feedback"`
}

func (h *SubmissionHandler) RequestChanges(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	submissionID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req requestChangesRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	reviewed, err := h.submissions.RequestChanges(r.Context(), submissionID, clientID, req.Feedback)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, reviewed)
}

// List handles GET /api/submissions, the client's review queue across all of
// their contracts.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.submissions.ListByClient(r.Context(), clientID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

// ListByContract handles GET /api/contracts/{id}/submissions.
func (h *SubmissionHandler) ListByContract(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	contractID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.submissions.ListByContract(r.Context(), contractID, viewerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

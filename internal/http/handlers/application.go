package handlers

import (
	"net/http"
	"strings"
	"time"

	"freelancehub/internal/app"
	"freelancehub/internal/common"
	"freelancehub/internal/domain/user"
	"freelancehub/internal/http/middleware"
	"freelancehub/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
	rateLimit    int
	rateWindow   time.Duration
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter, rateLimit int, rateWindow time.Duration) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter, rateLimit: rateLimit, rateWindow: rateWindow}
}

type applyRequest struct {
	JobID        string `json:"job_id"`
	ProposedRate int64  `json:"proposed_rate"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	freelancerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.JobID) == "" {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "job_id is required"}))
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		key := "apply:" + freelancerID.String()
		if !h.limiter.Allow(key, h.rateLimit, h.rateWindow) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Apply(r.Context(), jobID, freelancerID, req.ProposedRate)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	accepted, created, err := h.applications.Accept(r.Context(), applicationID, clientID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"application": accepted, "contract": created})
}

func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	rejected, err := h.applications.Reject(r.Context(), applicationID, clientID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, rejected)
}

// List is role-dispatched: freelancers see their own applications, clients see
// applications against their jobs.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	switch role {
	case user.RoleFreelancer:
		items, err := h.applications.ListByFreelancer(r.Context(), viewerID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	case user.RoleClient:
		items, err := h.applications.ListByClient(r.Context(), viewerID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
	}
}

func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListByJob(r.Context(), jobID, clientID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

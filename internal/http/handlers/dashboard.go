package handlers

import (
	"net/http"
	"strconv"

	"freelancehub/internal/activity"
	"freelancehub/internal/app"
	"freelancehub/internal/common"
	"freelancehub/internal/domain/user"
	"freelancehub/internal/http/middleware"
	"freelancehub/internal/http/response"
)

type DashboardHandler struct {
	dashboards *app.DashboardService
}

func NewDashboardHandler(dashboards *app.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Get dispatches to the viewer's role-shaped dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	switch role {
	case user.RoleAdmin:
		view, err := h.dashboards.AdminView(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, view)
	case user.RoleClient:
		view, err := h.dashboards.ClientView(r.Context(), viewerID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, view)
	case user.RoleFreelancer:
		sessionKey, _ := middleware.SessionFromContext(r.Context())
		view, err := h.dashboards.FreelancerView(r.Context(), viewerID, sessionKey)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, view)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
	}
}

// Feed handles GET /api/activity for admins.
func (h *DashboardHandler) Feed(w http.ResponseWriter, r *http.Request) {
	limit := activity.DefaultFeedLimit
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			response.Error(w, common.NewValidationError("invalid limit", map[string]string{"limit": "limit must be a positive integer"}))
			return
		}
		limit = parsed
	}
	items, err := h.dashboards.Feed(r.Context(), limit)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

// Dismiss hides a notification for the rest of the session. Dismissal is
// viewer-local display state; the entity itself is never touched.
func (h *DashboardHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	sessionKey, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.dashboards.Dismiss(sessionKey, id)
	response.JSON(w, http.StatusNoContent, nil)
}

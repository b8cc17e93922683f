package handlers

import (
	"net/http"
	"time"

	"freelancehub/internal/app"
	"freelancehub/internal/common"
	"freelancehub/internal/domain/user"
	"freelancehub/internal/http/middleware"
	"freelancehub/internal/http/response"
)

type InquiryHandler struct {
	inquiries  *app.InquiryService
	limiter    middleware.Limiter
	rateLimit  int
	rateWindow time.Duration
}

func NewInquiryHandler(inquiries *app.InquiryService, limiter middleware.Limiter, rateLimit int, rateWindow time.Duration) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries, limiter: limiter, rateLimit: rateLimit, rateWindow: rateWindow}
}

func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var input app.CreateInquiryInput
	if err := decodeJSON(r, &input); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "inquiry:" + clientID.String()
		if !h.limiter.Allow(key, h.rateLimit, h.rateWindow) {
			response.Error(w, common.NewError(common.CodeRateLimited, "inquiry rate limit exceeded", nil))
			return
		}
	}
	created, err := h.inquiries.Create(r.Context(), clientID, input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *InquiryHandler) Accept(w http.ResponseWriter, r *http.Request) {
	freelancerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	inquiryID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.inquiries.Accept(r.Context(), inquiryID, freelancerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *InquiryHandler) Reject(w http.ResponseWriter, r *http.Request) {
	freelancerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	inquiryID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.inquiries.Reject(r.Context(), inquiryID, freelancerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	switch role {
	case user.RoleClient:
		items, err := h.inquiries.ListByClient(r.Context(), viewerID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	case user.RoleFreelancer:
		items, err := h.inquiries.ListByFreelancer(r.Context(), viewerID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
	}
}

package handlers

import (
	"net/http"

	"freelancehub/internal/app"
	"freelancehub/internal/common"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/user"
	"freelancehub/internal/http/middleware"
	"freelancehub/internal/http/response"
)

type ContractHandler struct {
	contracts contract.Repository
	service   *app.ContractService
	payments  *app.PaymentService
}

func NewContractHandler(contracts contract.Repository, service *app.ContractService, payments *app.PaymentService) *ContractHandler {
	return &ContractHandler{contracts: contracts, service: service, payments: payments}
}

// List is role-dispatched over the viewer's side of each contract.
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	switch role {
	case user.RoleClient:
		items, err := h.contracts.ListByClient(r.Context(), viewerID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	case user.RoleFreelancer:
		items, err := h.contracts.ListByFreelancer(r.Context(), viewerID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	case user.RoleAdmin:
		items, err := h.contracts.List(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
	}
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	c, err := h.contracts.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	if c.ClientID != viewerID && c.FreelancerID != viewerID && role != user.RoleAdmin {
		response.Error(w, common.NewError(common.CodeForbidden, "contract belongs to other parties", nil))
		return
	}
	response.JSON(w, http.StatusOK, c)
}

// Complete handles POST /api/contracts/{id}/complete.
func (h *ContractHandler) Complete(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	contractID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	closed, err := h.service.Complete(r.Context(), contractID, clientID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, closed)
}

// Terminate handles POST /api/contracts/{id}/terminate.
func (h *ContractHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	contractID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	closed, err := h.service.Terminate(r.Context(), contractID, clientID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, closed)
}

type initiatePaymentRequest struct {
	Amount int64 `json:"amount"`
}

func (h *ContractHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	contractID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req initiatePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.payments.Initiate(r.Context(), contractID, clientID, req.Amount)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ContractHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
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
	items, err := h.payments.ListByContract(r.Context(), contractID, viewerID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

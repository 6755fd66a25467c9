package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/handler/http/response"
)

type StaffHandler interface {
	// List returns every active staff member's wage profile
	List(w http.ResponseWriter, r *http.Request)
	// GetWageProfile returns one staff member's wage profile
	GetWageProfile(w http.ResponseWriter, r *http.Request)
	// UpdateWageProfile applies a partial wage-profile update
	UpdateWageProfile(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{staffService: staffService}
}

// List handles GET /staff
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWageProfile handles GET /staff/{staffID}/wage-profile
func (h *staffHandlerImpl) GetWageProfile(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	result, err := h.staffService.GetWageProfile(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWageProfile handles PUT /staff/{staffID}/wage-profile
func (h *staffHandlerImpl) UpdateWageProfile(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateWageProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "staffID")

	result, err := h.staffService.UpdateWageProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Wage profile updated", result)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hr-admin-backend/internal/domain/preregistration"
	"github.com/peopledesk/hr-admin-backend/internal/handler/http/middleware"
	"github.com/peopledesk/hr-admin-backend/internal/handler/http/response"
)

type PreRegistrationHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type preRegistrationHandlerImpl struct {
	preRegService preregistration.Service
}

func NewPreRegistrationHandler(preRegService preregistration.Service) PreRegistrationHandler {
	return &preRegistrationHandlerImpl{
		preRegService: preRegService,
	}
}

// Add implements PreRegistrationHandler.
func (h *preRegistrationHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req preregistration.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ActorID = middleware.UserID(r)

	result, err := h.preRegService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee pre-registered successfully", result)
}

// List implements PreRegistrationHandler.
func (h *preRegistrationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.preRegService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements PreRegistrationHandler.
func (h *preRegistrationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.preRegService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pre-registered employee removed", nil)
}

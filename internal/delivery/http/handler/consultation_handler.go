package handler

import (
	"encoding/json"
	"net/http"

	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/delivery/http/middleware"
	"go-consult-intake/internal/usecase"
	"go-consult-intake/pkg/response"
	"go-consult-intake/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

// StartConsultation opens a draft consultation. Anonymous callers are
// accepted; the consultation simply carries no user id.
func (h *ConsultationHandler) StartConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.StartConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.StartConsultation(r.Context(), actorID(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrFormNotFound:
			response.NotFound(w, "Form not found")
		case usecase.ErrQuestionNotFound:
			response.NotFound(w, "Question not found")
		case usecase.ErrQuestionNotInForm:
			response.Error(w, http.StatusBadRequest, "Question does not belong to the form", nil)
		default:
			response.InternalServerError(w, "Failed to start consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation started successfully", consultation)
}

func (h *ConsultationHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	consultationID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	answer, err := h.consultationUsecase.SubmitAnswer(r.Context(), actorID(r), consultationID, &req)
	if err != nil {
		h.respondConsultationError(w, err, "Failed to submit answer")
		return
	}

	response.Success(w, http.StatusCreated, "Answer submitted successfully", answer)
}

func (h *ConsultationHandler) SubmitFollowupAnswer(w http.ResponseWriter, r *http.Request) {
	consultationID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.SubmitFollowupAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	answer, err := h.consultationUsecase.SubmitFollowupAnswer(r.Context(), actorID(r), consultationID, &req)
	if err != nil {
		h.respondConsultationError(w, err, "Failed to submit followup answer")
		return
	}

	response.Success(w, http.StatusCreated, "Followup answer submitted successfully", answer)
}

func (h *ConsultationHandler) SubmitConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	consultation, err := h.consultationUsecase.SubmitConsultation(r.Context(), actorID(r), consultationID)
	if err != nil {
		h.respondConsultationError(w, err, "Failed to submit consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation submitted successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	consultation, err := h.consultationUsecase.GetConsultation(r.Context(), consultationID)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		default:
			response.InternalServerError(w, "Failed to get consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) GetMyConsultations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	consultations, err := h.consultationUsecase.GetMyConsultations(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}

func (h *ConsultationHandler) respondConsultationError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrConsultationNotFound:
		response.NotFound(w, "Consultation not found")
	case usecase.ErrConsultationNotOwned:
		response.Forbidden(w, "Consultation does not belong to you")
	case usecase.ErrConsultationClosed:
		response.Error(w, http.StatusConflict, "Consultation is no longer editable", nil)
	case usecase.ErrQuestionNotFound:
		response.NotFound(w, "Question not found")
	case usecase.ErrFollowupNotFound:
		response.NotFound(w, "Followup question not found")
	case usecase.ErrQuestionNotInForm:
		response.Error(w, http.StatusBadRequest, "Question does not belong to the form", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

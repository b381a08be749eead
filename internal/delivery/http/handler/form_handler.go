package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/delivery/http/middleware"
	"go-consult-intake/internal/usecase"
	"go-consult-intake/pkg/response"
	"go-consult-intake/pkg/validator"

	"github.com/gorilla/mux"
)

type FormHandler struct {
	formUsecase usecase.FormUsecase
	validator   *validator.CustomValidator
}

func NewFormHandler(formUsecase usecase.FormUsecase, validator *validator.CustomValidator) *FormHandler {
	return &FormHandler{
		formUsecase: formUsecase,
		validator:   validator,
	}
}

func (h *FormHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.formUsecase.CreateForm(r.Context(), actorID(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrFormNameAlreadyExists:
			response.Conflict(w, "Form name already exists")
		default:
			response.InternalServerError(w, "Failed to create form")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Form created successfully", form)
}

func (h *FormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.formUsecase.ListForms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list forms")
		return
	}

	response.Success(w, http.StatusOK, "Forms retrieved successfully", forms)
}

func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	form, err := h.formUsecase.GetForm(r.Context(), formID)
	if err != nil {
		switch err {
		case usecase.ErrFormNotFound:
			response.NotFound(w, "Form not found")
		default:
			response.InternalServerError(w, "Failed to get form")
		}
		return
	}

	response.Success(w, http.StatusOK, "Form retrieved successfully", form)
}

func (h *FormHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.formUsecase.DeleteForm(r.Context(), actorID(r), formID); err != nil {
		switch err {
		case usecase.ErrFormNotFound:
			response.NotFound(w, "Form not found")
		default:
			response.InternalServerError(w, "Failed to delete form")
		}
		return
	}

	response.Success(w, http.StatusOK, "Form deleted successfully", nil)
}

func (h *FormHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	question, err := h.formUsecase.AddQuestion(r.Context(), actorID(r), formID, &req)
	if err != nil {
		switch err {
		case usecase.ErrFormNotFound:
			response.NotFound(w, "Form not found")
		default:
			response.InternalServerError(w, "Failed to add question")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Question added successfully", question)
}

func (h *FormHandler) AddFollowup(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AddFollowupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	followup, err := h.formUsecase.AddFollowup(r.Context(), actorID(r), questionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrQuestionNotFound:
			response.NotFound(w, "Question not found")
		default:
			response.InternalServerError(w, "Failed to add followup")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Followup added successfully", followup)
}

func (h *FormHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	question, err := h.formUsecase.GetQuestion(r.Context(), questionID)
	if err != nil {
		switch err {
		case usecase.ErrQuestionNotFound:
			response.NotFound(w, "Question not found")
		default:
			response.InternalServerError(w, "Failed to get question")
		}
		return
	}

	response.Success(w, http.StatusOK, "Question retrieved successfully", question)
}

func (h *FormHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.formUsecase.DeleteQuestion(r.Context(), actorID(r), questionID); err != nil {
		switch err {
		case usecase.ErrQuestionNotFound:
			response.NotFound(w, "Question not found")
		default:
			response.InternalServerError(w, "Failed to delete question")
		}
		return
	}

	response.Success(w, http.StatusOK, "Question deleted successfully", nil)
}

// pathID parses the numeric id path variable, answering 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// actorID returns the authenticated user's id when present, nil for
// anonymous requests.
func actorID(r *http.Request) *uint {
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return &userID
	}
	return nil
}

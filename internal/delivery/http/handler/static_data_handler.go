package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/datatable"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"

	"github.com/gorilla/mux"
)

var staticDataColumns = []datatable.Column[dto.StaticDataResponse]{
	{Label: "Category", Accessor: "category"},
	{Label: "Code", Accessor: "code"},
	{Label: "Label (EN)", Accessor: "label_en"},
	{Label: "Label (AR)", Accessor: "label_ar"},
	{Label: "Sort Order", Accessor: "sort_order"},
}

type StaticDataHandler struct {
	staticUsecase usecase.StaticDataUsecase
	validator     *validator.CustomValidator
}

func NewStaticDataHandler(staticUsecase usecase.StaticDataUsecase, validator *validator.CustomValidator) *StaticDataHandler {
	return &StaticDataHandler{
		staticUsecase: staticUsecase,
		validator:     validator,
	}
}

// GetCategory serves one reference-data category for the form dropdowns.
func (h *StaticDataHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := vars["category"]

	items, err := h.staticUsecase.ListByCategory(r.Context(), category)
	if err != nil {
		response.InternalServerError(w, "Failed to get static data")
		return
	}

	response.Success(w, http.StatusOK, "Static data retrieved successfully", items)
}

// ListStaticData serves the admin management screen, inactive items included.
func (h *StaticDataHandler) ListStaticData(w http.ResponseWriter, r *http.Request) {
	items, err := h.staticUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list static data")
		return
	}

	response.Success(w, http.StatusOK, "Static data retrieved successfully", items)
}

func (h *StaticDataHandler) ExportStaticData(w http.ResponseWriter, r *http.Request) {
	items, err := h.staticUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to export static data")
		return
	}

	writeCSV(w, "static-data", staticDataColumns, items)
}

func (h *StaticDataHandler) CreateStaticData(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateStaticDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.staticUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDuplicateStaticCode:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create static data")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Static data created successfully", item)
}

func (h *StaticDataHandler) UpdateStaticData(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	itemID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid static data ID", nil)
		return
	}

	var req dto.UpdateStaticDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.staticUsecase.Update(r.Context(), actorID, itemID, &req)
	if err != nil {
		if err == usecase.ErrStaticDataNotFound {
			response.NotFound(w, "Static data not found")
			return
		}
		response.InternalServerError(w, "Failed to update static data")
		return
	}

	response.Success(w, http.StatusOK, "Static data updated successfully", item)
}

func (h *StaticDataHandler) DeleteStaticData(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	itemID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid static data ID", nil)
		return
	}

	if err := h.staticUsecase.Delete(r.Context(), actorID, itemID); err != nil {
		if err == usecase.ErrStaticDataNotFound {
			response.NotFound(w, "Static data not found")
			return
		}
		response.InternalServerError(w, "Failed to delete static data")
		return
	}

	response.Success(w, http.StatusOK, "Static data deleted successfully", nil)
}

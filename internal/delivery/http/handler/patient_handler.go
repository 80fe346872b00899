package handler

import (
	"encoding/json"
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/datatable"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// patientColumns drives both the list screen and the CSV export.
var patientColumns = []datatable.Column[dto.PatientResponse]{
	{Label: "MRN", Accessor: "mrn"},
	{Label: "National ID", Accessor: "national_id"},
	{Label: "Full Name", Accessor: "full_name"},
	{Label: "Gender", Accessor: "gender"},
	{Label: "Blood Type", Accessor: "blood_type"},
	{Label: "Date of Birth", Accessor: "date_of_birth"},
	{Label: "Phone", Accessor: "phone_number"},
}

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r, "gender", "blood_type")

	patients, total, err := h.patientUsecase.List(r.Context(), q)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Paginated(w, "Patients retrieved successfully", pageEnvelope(q, patients, total))
}

// ExportPatients streams the current page as CSV with the same search and
// filters the list honors.
func (h *PatientHandler) ExportPatients(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r, "gender", "blood_type")

	patients, _, err := h.patientUsecase.List(r.Context(), q)
	if err != nil {
		response.InternalServerError(w, "Failed to export patients")
		return
	}

	writeCSV(w, "patients", patientColumns, patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDuplicateMRN, usecase.ErrDuplicateNationalID:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), actorID, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), actorID, patientID); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientHasRecords:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

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

var medicalRecordColumns = []datatable.Column[dto.MedicalRecordResponse]{
	{Label: "Title", Accessor: "title"},
	{Label: "Patient", Accessor: "patient_name"},
	{Label: "MRN", Accessor: "patient_mrn"},
	{Label: "Doctor", Accessor: "doctor_name"},
	{Label: "Type", Accessor: "record_type"},
	{Label: "Diagnosis", Accessor: "diagnosis"},
	{Label: "Fee", Render: func(r dto.MedicalRecordResponse) string { return r.Fee.StringFixed(2) }},
	{Label: "Visit Date", Accessor: "visit_date"},
}

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r, "record_type", "patient_id", "doctor_id")

	records, total, err := h.recordUsecase.List(r.Context(), q)
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Paginated(w, "Medical records retrieved successfully", pageEnvelope(q, records, total))
}

func (h *MedicalRecordHandler) ExportMedicalRecords(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r, "record_type", "patient_id", "doctor_id")

	records, _, err := h.recordUsecase.List(r.Context(), q)
	if err != nil {
		response.InternalServerError(w, "Failed to export medical records")
		return
	}

	writeCSV(w, "medical-records", medicalRecordColumns, records)
}

func (h *MedicalRecordHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.recordUsecase.GetByID(r.Context(), recordID)
	if err != nil {
		if err == usecase.ErrRecordNotFound {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.InternalServerError(w, "Failed to get medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

func (h *MedicalRecordHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrUserNotDoctor, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), actorID, recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), actorID, recordID); err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordHasTransfers:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}

package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity (with preloaded
// patient and doctor) to its response DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		PatientName: record.Patient.FullName,
		PatientMRN:  record.Patient.MRN,
		DoctorID:    record.DoctorID,
		DoctorName:  record.Doctor.FullName,
		RecordType:  record.RecordType,
		Title:       record.Title,
		Diagnosis:   record.Diagnosis,
		Notes:       record.Notes,
		Fee:         record.Fee,
		VisitDate:   record.VisitDate.Format("2006-01-02"),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *MedicalRecordToResponse(&records[i]))
	}
	return responses
}

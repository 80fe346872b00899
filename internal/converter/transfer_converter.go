package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// TransferToResponse converts a Transfer entity (with preloaded record,
// patient and users) to its response DTO
func TransferToResponse(transfer *entity.Transfer) *dto.TransferResponse {
	if transfer == nil {
		return nil
	}

	return &dto.TransferResponse{
		ID:           transfer.ID,
		RecordID:     transfer.RecordID,
		RecordTitle:  transfer.Record.Title,
		PatientName:  transfer.Record.Patient.FullName,
		FromUserID:   transfer.FromUserID,
		FromUserName: transfer.FromUser.FullName,
		ToUserID:     transfer.ToUserID,
		ToUserName:   transfer.ToUser.FullName,
		Status:       string(transfer.Status),
		Message:      transfer.Message,
		CreatedAt:    transfer.CreatedAt,
		UpdatedAt:    transfer.UpdatedAt,
	}
}

// TransfersToResponses converts a slice of Transfer entities
func TransfersToResponses(transfers []entity.Transfer) []dto.TransferResponse {
	responses := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		responses = append(responses, *TransferToResponse(&transfers[i]))
	}
	return responses
}

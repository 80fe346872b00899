package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its response DTO
func AuditLogToResponse(auditLog *entity.AuditLog) *dto.AuditLogResponse {
	if auditLog == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        auditLog.ID,
		Action:    auditLog.Action,
		Metadata:  auditLog.Metadata,
		CreatedAt: auditLog.CreatedAt,
	}
	if auditLog.User != nil {
		resp.UserName = auditLog.User.FullName
	}
	return resp
}

// AuditLogsToResponses converts a slice of AuditLog entities
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}

package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// StaticDataToResponse converts a StaticData entity to its response DTO
func StaticDataToResponse(item *entity.StaticData) *dto.StaticDataResponse {
	if item == nil {
		return nil
	}

	return &dto.StaticDataResponse{
		ID:        item.ID,
		Category:  item.Category,
		Code:      item.Code,
		LabelEn:   item.LabelEn,
		LabelAr:   item.LabelAr,
		SortOrder: item.SortOrder,
		IsActive:  item.IsActive,
	}
}

// StaticDataToResponses converts a slice of StaticData entities
func StaticDataToResponses(items []entity.StaticData) []dto.StaticDataResponse {
	responses := make([]dto.StaticDataResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *StaticDataToResponse(&items[i]))
	}
	return responses
}

package dto

// Request DTOs

type CreateStaticDataRequest struct {
	Category  string `json:"category" validate:"required"`
	Code      string `json:"code" validate:"required"`
	LabelEn   string `json:"label_en" validate:"required"`
	LabelAr   string `json:"label_ar" validate:"omitempty"`
	SortOrder int    `json:"sort_order" validate:"omitempty,gte=0"`
}

type UpdateStaticDataRequest struct {
	LabelEn   string `json:"label_en" validate:"omitempty"`
	LabelAr   string `json:"label_ar" validate:"omitempty"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,gte=0"`
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type StaticDataResponse struct {
	ID        int    `json:"id"`
	Category  string `json:"category"`
	Code      string `json:"code"`
	LabelEn   string `json:"label_en"`
	LabelAr   string `json:"label_ar,omitempty"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

package entity

import "time"

// StaticData represents one reference-data item (blood types, record types, ...).
// Labels are bilingual; the Arabic label is what forces the BOM on CSV exports.
type StaticData struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Category  string    `gorm:"type:varchar(50);not null;index:idx_static_category_code,unique" json:"category"`
	Code      string    `gorm:"type:varchar(50);not null;index:idx_static_category_code,unique" json:"code"`
	LabelEn   string    `gorm:"type:varchar(255);not null" json:"label_en"`
	LabelAr   string    `gorm:"type:varchar(255)" json:"label_ar,omitempty"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StaticData) TableName() string {
	return "static_data"
}

// Static data categories
const (
	StaticCategoryBloodTypes       = "blood_types"
	StaticCategoryRecordTypes      = "record_types"
	StaticCategoryGenders          = "genders"
	StaticCategoryTransferStatuses = "transfer_statuses"
	StaticCategoryDepartments      = "departments"
)

package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus represents the status of a record transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusAccepted  TransferStatus = "accepted"
	TransferStatusRejected  TransferStatus = "rejected"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// Transfer represents a medical record handover between two users
type Transfer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecordID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"record_id"`
	FromUserID uuid.UUID      `gorm:"type:uuid;not null;index" json:"from_user_id"`
	ToUserID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"to_user_id"`
	Status     TransferStatus `gorm:"type:transfer_status;not null;default:'pending';index" json:"status"`
	Message    string         `gorm:"type:text" json:"message,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Record   MedicalRecord `gorm:"foreignKey:RecordID" json:"record,omitempty"`
	FromUser User          `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   User          `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

func (Transfer) TableName() string {
	return "transfers"
}

// IsPending checks if the transfer is still awaiting a decision
func (t *Transfer) IsPending() bool {
	return t.Status == TransferStatusPending
}

// Accept marks the transfer as accepted. Only pending transfers may transition.
func (t *Transfer) Accept() bool {
	if !t.IsPending() {
		return false
	}
	t.Status = TransferStatusAccepted
	return true
}

// Reject marks the transfer as rejected. Only pending transfers may transition.
func (t *Transfer) Reject() bool {
	if !t.IsPending() {
		return false
	}
	t.Status = TransferStatusRejected
	return true
}

// Cancel marks the transfer as cancelled by the sender. Only pending transfers may transition.
func (t *Transfer) Cancel() bool {
	if !t.IsPending() {
		return false
	}
	t.Status = TransferStatusCancelled
	return true
}

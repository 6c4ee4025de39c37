package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerInquiry is a property-owner partnership request. Records are
// append-only: created once, read by operators, never updated.
type PartnerInquiry struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	PropertyType     string    `json:"propertyType"`
	PropertyLocation string    `json:"propertyLocation"`
	Message          string    `json:"message,omitempty"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (i *PartnerInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ContactInquiry is a message from the public contact form. Phone is
// optional here, unlike partner inquiries.
type ContactInquiry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (i *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

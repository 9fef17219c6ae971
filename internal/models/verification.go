package models

import (
	"time"

	"gorm.io/gorm"
)

// VerificationType is the channel used to verify an identity.
type VerificationType string

const (
	VerificationPhone        VerificationType = "phone"
	VerificationGovernmentID VerificationType = "government_id"
	VerificationSocialMedia  VerificationType = "social_media"
)

// VerificationStatus is the review state of a verification attempt.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Verification is a single identity-verification attempt by a user.
type Verification struct {
	gorm.Model
	UserID uint `gorm:"not null;index"`

	VerificationType VerificationType   `gorm:"size:20;not null"`
	Status           VerificationStatus `gorm:"size:20;not null;default:'pending';index"`
	DocumentID       *string            `gorm:"size:255"` // opaque storage reference
	VerifiedAt       *time.Time

	User User `gorm:"foreignKey:UserID"`
}

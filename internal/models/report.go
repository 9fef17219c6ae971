package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportReason enumerates why a user was reported.
type ReportReason string

const (
	ReasonInappropriateContent ReportReason = "inappropriate_content"
	ReasonHarassment           ReportReason = "harassment"
	ReasonFakeProfile          ReportReason = "fake_profile"
	ReasonSafetyConcern        ReportReason = "safety_concern"
	ReasonSpam                 ReportReason = "spam"
)

// ReportStatus is the moderation state of a report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

// AutoBlockThreshold is the accumulated report count at which a user is
// automatically blocked.
const AutoBlockThreshold = 5

// Report is a safety report filed by one user against another.
type Report struct {
	gorm.Model
	ReporterID     uint `gorm:"not null"`
	ReportedUserID uint `gorm:"not null;index"`

	Reason      ReportReason   `gorm:"size:32;not null"`
	Description string         `gorm:"type:text;not null"`
	Status      ReportStatus   `gorm:"size:20;not null;default:'pending';index"`
	Evidence    datatypes.JSON // opaque storage references

	Reporter     User `gorm:"foreignKey:ReporterID"`
	ReportedUser User `gorm:"foreignKey:ReportedUserID"`
}

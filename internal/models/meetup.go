package models

import (
	"time"

	"gorm.io/gorm"
)

// MeetupCategory classifies a meetup.
type MeetupCategory string

const (
	MeetupCultural  MeetupCategory = "cultural"
	MeetupFood      MeetupCategory = "food"
	MeetupSports    MeetupCategory = "sports"
	MeetupSocial    MeetupCategory = "social"
	MeetupReligious MeetupCategory = "religious"
)

// Meetup represents an organized gathering at a physical location.
// The organizer is always a participant; joining is capped at
// MaxParticipants.
type Meetup struct {
	gorm.Model
	OrganizerID uint   `gorm:"not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`

	LocationName string  `gorm:"size:255;not null"`
	Address      string  `gorm:"size:512;not null"`
	Latitude     float64 `gorm:"not null"`
	Longitude    float64 `gorm:"not null"`

	DateTime        time.Time      `gorm:"not null;index"`
	MaxParticipants int            `gorm:"not null"`
	Category        MeetupCategory `gorm:"size:20;not null;index"`
	IsPublic        bool           `gorm:"not null;default:true"`
	SafetyVerified  bool           `gorm:"not null;default:false"`

	Organizer    User    `gorm:"foreignKey:OrganizerID"`
	Participants []*User `gorm:"many2many:meetup_participants;"`
}

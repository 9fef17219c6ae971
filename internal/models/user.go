package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Gender of a user profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// LookingFor is the relationship-seeking preference of a user.
type LookingFor string

const (
	LookingForFriendship LookingFor = "friendship"
	LookingForDating     LookingFor = "dating"
	LookingForCasual     LookingFor = "casual"
	LookingForSerious    LookingFor = "serious"
)

// Language is the UI language preference.
type Language string

const (
	LanguageOdia    Language = "odia"
	LanguageEnglish Language = "english"
	LanguageBoth    Language = "both"
)

// SafetySettings is embedded into User as safety_* columns.
type SafetySettings struct {
	ShareLocation       bool `gorm:"not null;default:false" json:"share_location"`
	AllowMessages       bool `gorm:"not null;default:true" json:"allow_messages"`
	RequireVerification bool `gorm:"not null;default:true" json:"require_verification"`
}

// User represents a member profile.
type User struct {
	gorm.Model
	Name         string  `gorm:"size:255;not null"`
	Email        string  `gorm:"size:255;unique;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Phone        *string `gorm:"size:32"`
	Age          int     `gorm:"not null;index"`
	Gender       Gender  `gorm:"size:16;not null"`
	Role         string  `gorm:"size:50;not null;default:'user';index"`

	District  string `gorm:"size:100;not null;index"`
	City      string `gorm:"size:100;not null"`
	Latitude  *float64
	Longitude *float64

	Bio        string         `gorm:"type:text;not null"`
	Interests  datatypes.JSON `gorm:"not null"`
	LookingFor LookingFor     `gorm:"size:20;not null;index"`
	Photos     datatypes.JSON `gorm:"not null"`

	ProfilePhoto *string  `gorm:"size:255"`
	Language     Language `gorm:"size:10;not null"`

	IsVerified bool      `gorm:"not null;default:false"`
	IsOnline   bool      `gorm:"not null;default:false;index"`
	LastSeen   time.Time `gorm:"not null"`

	SafetySettings SafetySettings `gorm:"embedded;embeddedPrefix:safety_"`

	ReportCount int  `gorm:"not null;default:0"`
	IsBlocked   bool `gorm:"not null;default:false;index"`
}

// StringList marshals a string slice into a JSON column value.
func StringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

// DecodeStringList reads a JSON column back into a string slice.
// Invalid or empty column values decode to an empty slice.
func DecodeStringList(j datatypes.JSON) []string {
	var values []string
	if err := json.Unmarshal(j, &values); err != nil || values == nil {
		return []string{}
	}
	return values
}

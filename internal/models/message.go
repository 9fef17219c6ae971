package models

import "gorm.io/gorm"

// MessageType is the payload kind of a chat message.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeVoice    MessageType = "voice"
	MessageTypeImage    MessageType = "image"
	MessageTypeLocation MessageType = "location"
)

// Message represents a direct message inside a conversation.
// ConversationID is the canonical pair key (see ConversationID).
type Message struct {
	gorm.Model
	ConversationID string `gorm:"size:64;not null;index"`
	SenderID       uint   `gorm:"not null"`
	ReceiverID     uint   `gorm:"not null;index:idx_receiver_read,priority:1"`

	Content     string      `gorm:"type:text;not null"`
	MessageType MessageType `gorm:"size:20;not null;default:'text'"`
	FileID      *string     `gorm:"size:255"` // opaque storage reference
	IsRead      bool        `gorm:"not null;default:false;index:idx_receiver_read,priority:2"`
	Language    Language    `gorm:"size:10;not null"`

	Sender   User `gorm:"foreignKey:SenderID"`
	Receiver User `gorm:"foreignKey:ReceiverID"`
}

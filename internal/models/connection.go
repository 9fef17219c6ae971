package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ConnectionStatus defines the lifecycle of a connection between two users.
type ConnectionStatus string

const (
	// ConnectionPending means a request has been sent but not yet answered.
	ConnectionPending ConnectionStatus = "pending"

	// ConnectionAccepted means both users agreed to connect.
	ConnectionAccepted ConnectionStatus = "accepted"

	// ConnectionRejected means the request was declined.
	ConnectionRejected ConnectionStatus = "rejected"

	// ConnectionBlocked is terminal; there is no transition out of it.
	ConnectionBlocked ConnectionStatus = "blocked"
)

// ConnectionType is the kind of relationship the initiator asked for.
type ConnectionType string

const (
	ConnectionTypeFriendship ConnectionType = "friendship"
	ConnectionTypeDating     ConnectionType = "dating"
	ConnectionTypeCasual     ConnectionType = "casual"
)

// Connection represents the relationship between two users.
// The pair is stored in canonical order (UserAID < UserBID) with a unique
// index on the pair, so at most one record can exist per unordered pair
// and duplicate-request races land on the constraint.
type Connection struct {
	gorm.Model
	UserAID uint `gorm:"not null;uniqueIndex:idx_connection_pair,priority:1"`
	UserBID uint `gorm:"not null;uniqueIndex:idx_connection_pair,priority:2"`

	Status         ConnectionStatus `gorm:"type:varchar(20);not null;index"`
	InitiatedBy    uint             `gorm:"not null"`
	ConnectionType ConnectionType   `gorm:"type:varchar(20);not null"`

	UserA User `gorm:"foreignKey:UserAID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserB User `gorm:"foreignKey:UserBID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// OtherUserID returns the side of the pair that is not the given user.
func (c *Connection) OtherUserID(userID uint) uint {
	if c.UserAID == userID {
		return c.UserBID
	}
	return c.UserAID
}

// Involves reports whether the given user is one side of the pair.
func (c *Connection) Involves(userID uint) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// CanonicalPair orders two user ids so the smaller one comes first.
func CanonicalPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// ConversationID derives the canonical thread key for two users. It is
// symmetric: ConversationID(a, b) == ConversationID(b, a).
func ConversationID(a, b uint) string {
	lo, hi := CanonicalPair(a, b)
	return fmt.Sprintf("%d-%d", lo, hi)
}

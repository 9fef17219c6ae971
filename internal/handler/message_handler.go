package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"odishaconnect/backend/internal/cache"
	"odishaconnect/backend/internal/database"
	"odishaconnect/backend/internal/hub"
	"odishaconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type SendMessageInput struct {
	ReceiverID  uint    `json:"receiver_id" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	MessageType string  `json:"message_type" binding:"required,oneof=text voice image location"`
	FileID      *string `json:"file_id"`
	Language    string  `json:"language" binding:"required,oneof=odia english both"`
}

type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	ReceiverID     uint      `json:"receiver_id"`
	Content        string    `json:"content"`
	MessageType    string    `json:"message_type"`
	FileID         *string   `json:"file_id,omitempty"`
	IsRead         bool      `json:"is_read"`
	Language       string    `json:"language"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSummary is one row of the conversations list screen.
type ConversationSummary struct {
	ConversationID string          `json:"conversation_id"`
	OtherUser      UserResponse    `json:"other_user"`
	LastMessage    MessageResponse `json:"last_message"`
	UnreadCount    int64           `json:"unread_count"`
}

func newMessageResponse(msg models.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		ReceiverID:     msg.ReceiverID,
		Content:        msg.Content,
		MessageType:    string(msg.MessageType),
		FileID:         msg.FileID,
		IsRead:         msg.IsRead,
		Language:       string(msg.Language),
		CreatedAt:      msg.CreatedAt,
	}
}

// endregion

// SendMessage godoc
// @Summary      Send a direct message
// @Description  Delivers a message to a connected user. The pair must have an accepted connection.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendMessageInput true "Message"
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Users are not connected"
// @Router       /messages [post]
func SendMessage(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if viewerID.(uint) == input.ReceiverID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot message yourself"})
		return
	}

	conn, err := findConnection(database.DB, viewerID.(uint), input.ReceiverID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && conn.Status != models.ConnectionAccepted) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Users are not connected"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check connection"})
		return
	}

	msg := models.Message{
		ConversationID: models.ConversationID(viewerID.(uint), input.ReceiverID),
		SenderID:       viewerID.(uint),
		ReceiverID:     input.ReceiverID,
		Content:        input.Content,
		MessageType:    models.MessageType(input.MessageType),
		FileID:         input.FileID,
		Language:       models.Language(input.Language),
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	if cache.C != nil {
		_ = cache.C.IncrUnread(c.Request.Context(), input.ReceiverID)
	}

	hub.GlobalHub.Publish(hub.Event{Type: hub.EventMessageSent, Payload: gin.H{
		"conversation_id": msg.ConversationID,
		"message_id":      msg.ID,
		"sender":          msg.SenderID,
		"receiver":        msg.ReceiverID,
	}})

	c.JSON(http.StatusCreated, newMessageResponse(msg))
}

// GetConversation godoc
// @Summary      Get a conversation
// @Description  Returns the most recent messages with another user, in chronological order.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        userID path  int true  "Other user ID"
// @Param        limit  query int false "Max messages" default(50)
// @Success      200 {array}  MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /messages/conversation/{userID} [get]
func GetConversation(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	otherUserID, err := strconv.ParseUint(c.Param("userID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	conversationID := models.ConversationID(viewerID.(uint), uint(otherUserID))

	var messages []models.Message
	err = database.DB.
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversation"})
		return
	}

	// Newest N, returned oldest first.
	responses := make([]MessageResponse, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		responses = append(responses, newMessageResponse(messages[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// MarkConversationRead godoc
// @Summary      Mark a conversation as read
// @Description  Flags every unread message addressed to the caller in this conversation as read, in a single batched update.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        userID path int true "Other user ID"
// @Success      200 {object} map[string]interface{} "{"marked_read": 3}"
// @Failure      400 {object} ErrorResponse
// @Router       /messages/conversation/{userID}/read [post]
func MarkConversationRead(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	otherUserID, err := strconv.ParseUint(c.Param("userID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	conversationID := models.ConversationID(viewerID.(uint), uint(otherUserID))

	result := database.DB.Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationID, viewerID, false).
		Update("is_read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark messages as read"})
		return
	}

	if cache.C != nil {
		_ = cache.C.InvalidateUnread(c.Request.Context(), viewerID.(uint))
	}

	c.JSON(http.StatusOK, gin.H{"marked_read": result.RowsAffected})
}

// GetUnreadCount godoc
// @Summary      Get unread message count
// @Description  Returns the number of unread messages addressed to the caller. Cache-first with a database fallback.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int64 "{"unread": 4}"
// @Router       /messages/unread [get]
func GetUnreadCount(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	if cache.C != nil {
		if count, ok, err := cache.C.GetUnread(c.Request.Context(), viewerID.(uint)); err == nil && ok {
			c.JSON(http.StatusOK, gin.H{"unread": count})
			return
		}
	}

	var count int64
	err := database.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", viewerID, false).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count unread messages"})
		return
	}

	if cache.C != nil {
		_ = cache.C.SetUnread(c.Request.Context(), viewerID.(uint), count)
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// GetConversationsList godoc
// @Summary      List conversations
// @Description  Returns one entry per chat partner with the latest message, the partner's profile and a per-partner unread count, newest first.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} ConversationSummary
// @Router       /messages/conversations [get]
func GetConversationsList(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var messages []models.Message
	err := database.DB.
		Where("sender_id = ? OR receiver_id = ?", viewerID, viewerID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}

	// Messages arrive newest first, so the first message seen per partner
	// is the latest one; encounter order is the final sort order.
	latest := make(map[uint]models.Message)
	unread := make(map[uint]int64)
	var partnerOrder []uint
	for _, msg := range messages {
		otherUserID := msg.SenderID
		if msg.SenderID == viewerID.(uint) {
			otherUserID = msg.ReceiverID
		}
		if _, seen := latest[otherUserID]; !seen {
			latest[otherUserID] = msg
			partnerOrder = append(partnerOrder, otherUserID)
		}
		if msg.ReceiverID == viewerID.(uint) && !msg.IsRead {
			unread[otherUserID]++
		}
	}

	var partners []models.User
	if len(partnerOrder) > 0 {
		if err := database.DB.Where("id IN ?", partnerOrder).Find(&partners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve chat partners"})
			return
		}
	}
	partnerByID := make(map[uint]models.User, len(partners))
	for _, partner := range partners {
		partnerByID[partner.ID] = partner
	}

	summaries := make([]ConversationSummary, 0, len(partnerOrder))
	for _, otherUserID := range partnerOrder {
		partner, ok := partnerByID[otherUserID]
		if !ok {
			continue
		}
		msg := latest[otherUserID]
		summaries = append(summaries, ConversationSummary{
			ConversationID: msg.ConversationID,
			OtherUser:      buildUserResponse(partner),
			LastMessage:    newMessageResponse(msg),
			UnreadCount:    unread[otherUserID],
		})
	}
	c.JSON(http.StatusOK, summaries)
}

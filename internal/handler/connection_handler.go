package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"odishaconnect/backend/internal/database"
	"odishaconnect/backend/internal/hub"
	"odishaconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type ConnectionRequestInput struct {
	ToUserID       uint   `json:"to_user_id" binding:"required"`
	ConnectionType string `json:"connection_type" binding:"required,oneof=friendship dating casual"`
}

type ConnectionRespondInput struct {
	Response string `json:"response" binding:"required,oneof=accepted rejected"`
}

type BlockUserInput struct {
	ToUserID uint `json:"to_user_id" binding:"required"`
}

// ConnectionResponse decorates a connection with the resolved other party.
type ConnectionResponse struct {
	ID              uint         `json:"id"`
	Status          string       `json:"status"`
	ConnectionType  string       `json:"connection_type"`
	CreatedAt       time.Time    `json:"created_at"`
	OtherUser       UserResponse `json:"other_user"`
	IsInitiatedByMe bool         `json:"is_initiated_by_me"`
}

func newConnectionResponse(conn models.Connection, viewerID uint) ConnectionResponse {
	other := conn.UserA
	if conn.UserAID == viewerID {
		other = conn.UserB
	}
	return ConnectionResponse{
		ID:              conn.ID,
		Status:          string(conn.Status),
		ConnectionType:  string(conn.ConnectionType),
		CreatedAt:       conn.CreatedAt,
		OtherUser:       buildUserResponse(other),
		IsInitiatedByMe: conn.InitiatedBy == viewerID,
	}
}

// findConnection looks up the unique record for an unordered user pair.
func findConnection(db *gorm.DB, userID1, userID2 uint) (*models.Connection, error) {
	lo, hi := models.CanonicalPair(userID1, userID2)
	var conn models.Connection
	err := db.Where("user_a_id = ? AND user_b_id = ?", lo, hi).First(&conn).Error
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// endregion

// SendConnectionRequest godoc
// @Summary      Send a connection request
// @Description  Creates a pending connection to another user. At most one connection can exist per user pair, in either direction.
// @Tags         connections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ConnectionRequestInput true "Request Info"
// @Success      201  {object}  ConnectionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Failure      409  {object}  ErrorResponse "Connection already exists"
// @Router       /connections [post]
func SendConnectionRequest(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input ConnectionRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if viewerID.(uint) == input.ToUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a connection request to yourself"})
		return
	}

	var target models.User
	if err := database.DB.First(&target, input.ToUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
		return
	}

	if _, err := findConnection(database.DB, viewerID.(uint), input.ToUserID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Connection already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing connection"})
		return
	}

	lo, hi := models.CanonicalPair(viewerID.(uint), input.ToUserID)
	conn := models.Connection{
		UserAID:        lo,
		UserBID:        hi,
		Status:         models.ConnectionPending,
		InitiatedBy:    viewerID.(uint),
		ConnectionType: models.ConnectionType(input.ConnectionType),
	}

	// A concurrent duplicate lands on the unique pair index.
	if err := database.DB.Create(&conn).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Connection already exists"})
		return
	}

	hub.GlobalHub.Publish(hub.Event{Type: hub.EventConnectionRequested, Payload: gin.H{
		"connection_id": conn.ID,
		"from":          viewerID.(uint),
		"to":            input.ToUserID,
	}})

	database.DB.Preload("UserA").Preload("UserB").First(&conn, conn.ID)
	c.JSON(http.StatusCreated, newConnectionResponse(conn, viewerID.(uint)))
}

// RespondToConnection godoc
// @Summary      Respond to a connection request
// @Description  Accepts or rejects a connection. Only a participant of the connection may respond.
// @Tags         connections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int                    true "Connection ID"
// @Param        input body ConnectionRespondInput true "Response"
// @Success      200  {object}  map[string]string "{"message": "Connection accepted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not a participant"
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Router       /connections/{id}/respond [post]
func RespondToConnection(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	connectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid connection ID"})
		return
	}

	var input ConnectionRespondInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var conn models.Connection
	if err := database.DB.First(&conn, connectionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Connection not found"})
		return
	}

	if !conn.Involves(viewerID.(uint)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant in this connection"})
		return
	}

	status := models.ConnectionStatus(input.Response)
	if err := database.DB.Model(&conn).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to respond to connection"})
		return
	}

	if status == models.ConnectionAccepted {
		hub.GlobalHub.Publish(hub.Event{Type: hub.EventConnectionAccepted, Payload: gin.H{
			"connection_id": conn.ID,
			"user_a":        conn.UserAID,
			"user_b":        conn.UserBID,
		}})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Connection " + input.Response})
}

// GetMyConnections godoc
// @Summary      List my connections
// @Description  Returns every connection the caller is part of, optionally filtered by status, decorated with the other party's profile.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status (pending, accepted, rejected, blocked)"
// @Success      200 {array}  ConnectionResponse
// @Failure      401 {object} ErrorResponse
// @Router       /connections [get]
func GetMyConnections(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	query := database.DB.
		Where("user_a_id = ? OR user_b_id = ?", viewerID, viewerID).
		Preload("UserA").
		Preload("UserB")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var connections []models.Connection
	if err := query.Find(&connections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch connections"})
		return
	}

	responses := make([]ConnectionResponse, 0, len(connections))
	for _, conn := range connections {
		responses = append(responses, newConnectionResponse(conn, viewerID.(uint)))
	}
	c.JSON(http.StatusOK, responses)
}

// BlockUser godoc
// @Summary      Block a user
// @Description  Marks the connection with the target as blocked, creating one if none exists. Blocked is terminal.
// @Tags         connections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body BlockUserInput true "Target"
// @Success      200  {object}  map[string]string "{"message": "User blocked"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Router       /connections/block [post]
func BlockUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input BlockUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if viewerID.(uint) == input.ToUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot block yourself"})
		return
	}

	var target models.User
	if err := database.DB.First(&target, input.ToUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		conn, err := findConnection(tx, viewerID.(uint), input.ToUserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			lo, hi := models.CanonicalPair(viewerID.(uint), input.ToUserID)
			return tx.Create(&models.Connection{
				UserAID:     lo,
				UserBID:     hi,
				Status:      models.ConnectionBlocked,
				InitiatedBy: viewerID.(uint),
				// Block is type-agnostic; friendship is the placeholder type.
				ConnectionType: models.ConnectionTypeFriendship,
			}).Error
		} else if err != nil {
			return err
		}
		return tx.Model(conn).Update("status", models.ConnectionBlocked).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User blocked"})
}

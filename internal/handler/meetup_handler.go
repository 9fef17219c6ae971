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

type CreateMeetupInput struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	LocationName    string    `json:"location_name" binding:"required"`
	Address         string    `json:"address" binding:"required"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DateTime        time.Time `json:"date_time" binding:"required"`
	MaxParticipants int       `json:"max_participants" binding:"required,gte=2"`
	Category        string    `json:"category" binding:"required,oneof=cultural food sports social religious"`
	IsPublic        *bool     `json:"is_public"`
}

type MeetupResponse struct {
	ID               uint         `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	LocationName     string       `json:"location_name"`
	Address          string       `json:"address"`
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	DateTime         time.Time    `json:"date_time"`
	MaxParticipants  int          `json:"max_participants"`
	ParticipantCount int          `json:"participant_count"`
	Category         string       `json:"category"`
	IsPublic         bool         `json:"is_public"`
	SafetyVerified   bool         `json:"safety_verified"`
	Organizer        UserResponse `json:"organizer"`
}

type MeetupDetailsResponse struct {
	MeetupResponse
	Participants []UserResponse `json:"participants"`
}

type MyMeetupsResponse struct {
	Organized []MeetupResponse `json:"organized"`
	Joined    []MeetupResponse `json:"joined"`
}

func newMeetupResponse(meetup models.Meetup) MeetupResponse {
	return MeetupResponse{
		ID:               meetup.ID,
		Title:            meetup.Title,
		Description:      meetup.Description,
		LocationName:     meetup.LocationName,
		Address:          meetup.Address,
		Latitude:         meetup.Latitude,
		Longitude:        meetup.Longitude,
		DateTime:         meetup.DateTime,
		MaxParticipants:  meetup.MaxParticipants,
		ParticipantCount: len(meetup.Participants),
		Category:         string(meetup.Category),
		IsPublic:         meetup.IsPublic,
		SafetyVerified:   meetup.SafetyVerified,
		Organizer:        buildUserResponse(meetup.Organizer),
	}
}

// endregion

// CreateMeetup godoc
// @Summary      Create a meetup
// @Description  Creates a community meetup. The organizer is added as the first participant.
// @Tags         meetups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateMeetupInput true "Meetup"
// @Success      201  {object}  MeetupResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /meetups [post]
func CreateMeetup(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input CreateMeetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var organizer models.User
	if err := database.DB.First(&organizer, viewerID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load organizer"})
		return
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	meetup := models.Meetup{
		OrganizerID:     viewerID.(uint),
		Title:           input.Title,
		Description:     input.Description,
		LocationName:    input.LocationName,
		Address:         input.Address,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		DateTime:        input.DateTime,
		MaxParticipants: input.MaxParticipants,
		Category:        models.MeetupCategory(input.Category),
		IsPublic:        isPublic,
		Organizer:       organizer,
		Participants:    []*models.User{&organizer},
	}
	if err := database.DB.Create(&meetup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meetup"})
		return
	}

	c.JSON(http.StatusCreated, newMeetupResponse(meetup))
}

// JoinMeetup godoc
// @Summary      Join a meetup
// @Description  Adds the caller to a meetup. Fails once the participant limit is reached.
// @Tags         meetups
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Meetup ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse "Meetup not found"
// @Failure      409  {object}  ErrorResponse "Meetup is full"
// @Router       /meetups/{id}/join [post]
func JoinMeetup(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	meetupID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meetup ID"})
		return
	}

	var joined models.Meetup
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var meetup models.Meetup
		if err := tx.Preload("Organizer").Preload("Participants").First(&meetup, meetupID).Error; err != nil {
			return err
		}

		for _, participant := range meetup.Participants {
			if participant.ID == viewerID.(uint) {
				return errAlreadyJoined
			}
		}
		if len(meetup.Participants) >= meetup.MaxParticipants {
			return errMeetupFull
		}

		var user models.User
		if err := tx.First(&user, viewerID).Error; err != nil {
			return err
		}
		if err := tx.Model(&meetup).Association("Participants").Append(&user); err != nil {
			return err
		}
		joined = meetup
		return nil
	})

	switch {
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Meetup not found"})
		return
	case errors.Is(txErr, errAlreadyJoined):
		c.JSON(http.StatusConflict, gin.H{"error": "Already joined this meetup"})
		return
	case errors.Is(txErr, errMeetupFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Meetup is full"})
		return
	case txErr != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join meetup"})
		return
	}

	hub.GlobalHub.Publish(hub.Event{Type: hub.EventMeetupJoined, Payload: gin.H{
		"meetup_id": joined.ID,
		"user_id":   viewerID,
	}})

	c.JSON(http.StatusOK, gin.H{"message": "Joined meetup"})
}

var (
	errAlreadyJoined  = errors.New("already joined")
	errMeetupFull     = errors.New("meetup full")
	errOrganizerLeave = errors.New("organizer cannot leave")
)

// LeaveMeetup godoc
// @Summary      Leave a meetup
// @Tags         meetups
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Meetup ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Organizer cannot leave their own meetup"
// @Router       /meetups/{id}/leave [post]
func LeaveMeetup(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	meetupID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meetup ID"})
		return
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var meetup models.Meetup
		if err := tx.First(&meetup, meetupID).Error; err != nil {
			return err
		}
		if meetup.OrganizerID == viewerID.(uint) {
			return errOrganizerLeave
		}
		return tx.Model(&meetup).Association("Participants").Delete(&models.User{Model: gorm.Model{ID: viewerID.(uint)}})
	})

	switch {
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Meetup not found"})
		return
	case errors.Is(txErr, errOrganizerLeave):
		c.JSON(http.StatusConflict, gin.H{"error": "Organizer cannot leave their own meetup"})
		return
	case txErr != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave meetup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left meetup"})
}

// GetUpcomingMeetups godoc
// @Summary      List upcoming public meetups
// @Description  Returns public meetups with a future date, soonest first.
// @Tags         meetups
// @Produce      json
// @Param        category query string false "Filter by category" Enums(cultural, food, sports, social, religious)
// @Param        limit    query int    false "Max meetups" default(20)
// @Success      200 {array} MeetupResponse
// @Router       /meetups [get]
func GetUpcomingMeetups(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	query := database.DB.
		Preload("Organizer").
		Preload("Participants").
		Where("date_time > ? AND is_public = ?", time.Now(), true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var meetups []models.Meetup
	if err := query.Order("date_time ASC").Limit(limit).Find(&meetups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetups"})
		return
	}

	responses := make([]MeetupResponse, 0, len(meetups))
	for _, meetup := range meetups {
		responses = append(responses, newMeetupResponse(meetup))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMeetupDetails godoc
// @Summary      Get meetup details
// @Description  Returns a meetup with its organizer and the full participant list.
// @Tags         meetups
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Meetup ID"
// @Success      200 {object} MeetupDetailsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /meetups/{id} [get]
func GetMeetupDetails(c *gin.Context) {
	meetupID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meetup ID"})
		return
	}

	var meetup models.Meetup
	err = database.DB.Preload("Organizer").Preload("Participants").First(&meetup, meetupID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meetup not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetup"})
		return
	}

	details := MeetupDetailsResponse{MeetupResponse: newMeetupResponse(meetup)}
	details.Participants = make([]UserResponse, 0, len(meetup.Participants))
	for _, participant := range meetup.Participants {
		details.Participants = append(details.Participants, buildUserResponse(*participant))
	}
	c.JSON(http.StatusOK, details)
}

// GetMyMeetups godoc
// @Summary      List my meetups
// @Description  Returns meetups the caller organizes and meetups the caller joined.
// @Tags         meetups
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MyMeetupsResponse
// @Router       /meetups/mine [get]
func GetMyMeetups(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var organized []models.Meetup
	err := database.DB.
		Preload("Organizer").Preload("Participants").
		Where("organizer_id = ?", viewerID).
		Order("date_time ASC").
		Find(&organized).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetups"})
		return
	}

	var joined []models.Meetup
	err = database.DB.
		Preload("Organizer").Preload("Participants").
		Joins("JOIN meetup_participants mp ON mp.meetup_id = meetups.id").
		Where("mp.user_id = ? AND meetups.organizer_id <> ?", viewerID, viewerID).
		Order("date_time ASC").
		Find(&joined).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetups"})
		return
	}

	response := MyMeetupsResponse{
		Organized: make([]MeetupResponse, 0, len(organized)),
		Joined:    make([]MeetupResponse, 0, len(joined)),
	}
	for _, meetup := range organized {
		response.Organized = append(response.Organized, newMeetupResponse(meetup))
	}
	for _, meetup := range joined {
		response.Joined = append(response.Joined, newMeetupResponse(meetup))
	}
	c.JSON(http.StatusOK, response)
}

package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"odishaconnect/backend/internal/database"
	"odishaconnect/backend/internal/models"
	"odishaconnect/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for onboarding a new profile.
type RegisterInput struct {
	Name     string  `json:"name" binding:"required" example:"Ananya Das"`
	Email    string  `json:"email" binding:"required,email" example:"ananya@example.com"`
	Password string  `json:"password" binding:"required,min=8" example:"password123"`
	Phone    *string `json:"phone" example:"+91 9437000000"`
	Age      int     `json:"age" binding:"required,gte=18" example:"25"`
	Gender   string  `json:"gender" binding:"required,oneof=male female other" example:"female"`
	District string  `json:"district" binding:"required" example:"Puri"`
	City     string  `json:"city" binding:"required" example:"Puri"`
	Bio      string  `json:"bio" binding:"required" example:"Odissi dancer and foodie"`

	Interests  []string `json:"interests" binding:"required"`
	LookingFor string   `json:"looking_for" binding:"required,oneof=friendship dating casual serious" example:"friendship"`
	Language   string   `json:"language" binding:"required,oneof=odia english both" example:"both"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"ananya@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// SafetySettingsInput mirrors the safety toggles on a profile.
type SafetySettingsInput struct {
	ShareLocation       bool `json:"share_location"`
	AllowMessages       bool `json:"allow_messages"`
	RequireVerification bool `json:"require_verification"`
}

// UpdateProfileInput is a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	Bio            *string              `json:"bio"`
	Interests      *[]string            `json:"interests"`
	LookingFor     *string              `json:"looking_for" binding:"omitempty,oneof=friendship dating casual serious"`
	SafetySettings *SafetySettingsInput `json:"safety_settings"`
}

// OnlineStatusInput carries the presence flag from the client heartbeat.
type OnlineStatusInput struct {
	IsOnline *bool `json:"is_online" binding:"required"`
}

// UserResponse defines the structure for a user's public profile.
type UserResponse struct {
	ID         uint     `json:"id" example:"1"`
	Name       string   `json:"name" example:"Ananya Das"`
	Age        int      `json:"age" example:"25"`
	Gender     string   `json:"gender" example:"female"`
	District   string   `json:"district" example:"Puri"`
	City       string   `json:"city" example:"Puri"`
	Bio        string   `json:"bio"`
	Interests  []string `json:"interests"`
	LookingFor string   `json:"looking_for" example:"friendship"`
	Photos     []string `json:"photos"`

	ProfilePhoto *string `json:"profile_photo,omitempty"`
	Language     string  `json:"language" example:"both"`

	IsVerified bool      `json:"is_verified"`
	IsOnline   bool      `json:"is_online"`
	LastSeen   time.Time `json:"last_seen"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	UserResponse
	Email          string                `json:"email" example:"ananya@example.com"`
	Phone          *string               `json:"phone,omitempty"`
	SafetySettings models.SafetySettings `json:"safety_settings"`
	ReportCount    int                   `json:"report_count"`
	IsBlocked      bool                  `json:"is_blocked"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a full profile on onboarding completion and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Profile Info"
// @Success      201  {object}  map[string]interface{} "{"token": "...", "user_id": 1}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Email already registered"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Phone:        input.Phone,
		Age:          input.Age,
		Gender:       models.Gender(input.Gender),
		District:     input.District,
		City:         input.City,
		Bio:          input.Bio,
		Interests:    models.StringList(input.Interests),
		LookingFor:   models.LookingFor(input.LookingFor),
		Photos:       models.StringList(nil),
		Language:     models.Language(input.Language),
		IsOnline:     true,
		LastSeen:     time.Now(),
		SafetySettings: models.SafetySettings{
			ShareLocation:       false,
			AllowMessages:       true,
			RequireVerification: true,
		},
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user_id": user.ID})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]interface{} "{"token": "...", "user_id": 1}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": user.ID})
}

// endregion

// region --- User Handlers ---

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, viewerID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user by their ID.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func GetUserByID(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	// If target is the same as viewer, redirect to /me
	if viewerID.(uint) == uint(targetUserID) {
		GetMe(c)
		return
	}

	var targetUser models.User
	if err := database.DB.First(&targetUser, uint(targetUserID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildUserResponse(targetUser))
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Partially updates bio, interests, looking_for or safety settings. Fields left out stay untouched.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateProfileInput true "Fields to update"
// @Success      200  {object}  PrivateUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [put]
func UpdateProfile(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, viewerID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Interests != nil {
		updates["interests"] = models.StringList(*input.Interests)
	}
	if input.LookingFor != nil {
		updates["looking_for"] = *input.LookingFor
	}
	if input.SafetySettings != nil {
		updates["safety_share_location"] = input.SafetySettings.ShareLocation
		updates["safety_allow_messages"] = input.SafetySettings.AllowMessages
		updates["safety_require_verification"] = input.SafetySettings.RequireVerification
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	database.DB.First(&user, user.ID)
	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

// UpdateOnlineStatus godoc
// @Summary      Update presence
// @Description  Sets the online flag and unconditionally refreshes last_seen.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body OnlineStatusInput true "Presence flag"
// @Success      200  {object}  map[string]string "{"message": "Status updated"}"
// @Failure      400  {object}  ErrorResponse
// @Router       /users/me/online [put]
func UpdateOnlineStatus(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input OnlineStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Model(&models.User{}).Where("id = ?", viewerID).Updates(map[string]interface{}{
		"is_online": *input.IsOnline,
		"last_seen": time.Now(),
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DiscoverUsers godoc
// @Summary      Discover users
// @Description  Lists candidate profiles, excluding the caller and blocked users. Filters are conjunctive; the age range is inclusive.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        district    query string false "Filter by district"
// @Param        min_age     query int    false "Minimum age (inclusive)"
// @Param        max_age     query int    false "Maximum age (inclusive)"
// @Param        looking_for query string false "Filter by looking_for (friendship, dating, casual, serious)"
// @Param        limit       query int    false "Max results" default(20)
// @Success      200 {array} UserResponse
// @Failure      401 {object} ErrorResponse
// @Router       /users/discover [get]
func DiscoverUsers(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	query := database.DB.Model(&models.User{}).
		Where("id <> ?", viewerID).
		Where("is_blocked = ?", false)

	if district := c.Query("district"); district != "" {
		query = query.Where("district = ?", district)
	}
	if minAge, err := strconv.Atoi(c.Query("min_age")); err == nil {
		query = query.Where("age >= ?", minAge)
	}
	if maxAge, err := strconv.Atoi(c.Query("max_age")); err == nil {
		query = query.Where("age <= ?", maxAge)
	}
	if lookingFor := c.Query("looking_for"); lookingFor != "" {
		query = query.Where("looking_for = ?", lookingFor)
	}

	var users []models.User
	if err := query.Order("id").Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, buildUserResponse(user))
	}
	c.JSON(http.StatusOK, responses)
}

// SearchUsers godoc
// @Summary      Search for users
// @Description  Case-insensitive text search over name and bio, optionally filtered by district. Capped at 10 results.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q        query string true  "Search term"
// @Param        district query string false "Filter by district"
// @Success      200 {array}  UserResponse
// @Failure      400 {object} ErrorResponse
// @Router       /users [get]
func SearchUsers(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	searchTerm := c.Query("q")
	if searchTerm == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search term is required"})
		return
	}
	pattern := "%" + strings.ToLower(searchTerm) + "%"

	query := database.DB.Model(&models.User{}).
		Where("id <> ?", viewerID).
		Where("is_blocked = ?", false).
		Where("(LOWER(name) LIKE ? OR LOWER(bio) LIKE ?)", pattern, pattern)

	if district := c.Query("district"); district != "" {
		query = query.Where("district = ?", district)
	}

	var users []models.User
	if err := query.Limit(10).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, buildUserResponse(user))
	}
	c.JSON(http.StatusOK, responses)
}

// endregion

// region --- Helpers ---

func buildUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Age:          user.Age,
		Gender:       string(user.Gender),
		District:     user.District,
		City:         user.City,
		Bio:          user.Bio,
		Interests:    models.DecodeStringList(user.Interests),
		LookingFor:   string(user.LookingFor),
		Photos:       models.DecodeStringList(user.Photos),
		ProfilePhoto: user.ProfilePhoto,
		Language:     string(user.Language),
		IsVerified:   user.IsVerified,
		IsOnline:     user.IsOnline,
		LastSeen:     user.LastSeen,
	}
}

func buildPrivateUserResponse(user models.User) PrivateUserResponse {
	return PrivateUserResponse{
		UserResponse:   buildUserResponse(user),
		Email:          user.Email,
		Phone:          user.Phone,
		SafetySettings: user.SafetySettings,
		ReportCount:    user.ReportCount,
		IsBlocked:      user.IsBlocked,
	}
}

// endregion

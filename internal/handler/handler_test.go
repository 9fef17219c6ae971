package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"odishaconnect/backend/internal/auth"
	"odishaconnect/backend/internal/database"
	"odishaconnect/backend/internal/handler"
	"odishaconnect/backend/internal/models"
	"odishaconnect/backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupRouter builds a router with the same route table as cmd/server,
// backed by a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	testutil.SetupTestConfig(t)
	testutil.SetupTestDB(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", handler.RegisterUser)
	authRoutes.POST("/login", handler.LoginUser)

	referenceRoutes := apiV1.Group("/reference")
	referenceRoutes.GET("/districts", handler.GetDistricts)
	referenceRoutes.GET("/interests", handler.GetInterests)
	referenceRoutes.GET("/safety-tips", handler.GetSafetyTips)
	referenceRoutes.GET("/emergency-contacts", handler.GetEmergencyContacts)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("", handler.SearchUsers)
	userRoutes.GET("/discover", handler.DiscoverUsers)
	userRoutes.GET("/me", handler.GetMe)
	userRoutes.PUT("/me", handler.UpdateProfile)
	userRoutes.PUT("/me/online", handler.UpdateOnlineStatus)
	userRoutes.GET("/:id", handler.GetUserByID)

	connectionRoutes := apiV1.Group("/connections")
	connectionRoutes.Use(auth.AuthMiddleware())
	connectionRoutes.POST("", handler.SendConnectionRequest)
	connectionRoutes.GET("", handler.GetMyConnections)
	connectionRoutes.PUT("/:id/respond", handler.RespondToConnection)
	connectionRoutes.POST("/block", handler.BlockUser)

	messageRoutes := apiV1.Group("/messages")
	messageRoutes.Use(auth.AuthMiddleware())
	messageRoutes.POST("", handler.SendMessage)
	messageRoutes.GET("/unread", handler.GetUnreadCount)
	messageRoutes.GET("/conversations", handler.GetConversationsList)
	messageRoutes.GET("/conversation/:userID", handler.GetConversation)
	messageRoutes.POST("/conversation/:userID/read", handler.MarkConversationRead)

	meetupRoutes := apiV1.Group("/meetups")
	meetupRoutes.GET("", auth.OptionalAuthMiddleware(), handler.GetUpcomingMeetups)
	protected := meetupRoutes.Group("")
	protected.Use(auth.AuthMiddleware())
	protected.POST("", handler.CreateMeetup)
	protected.GET("/mine", handler.GetMyMeetups)
	protected.GET("/:id", handler.GetMeetupDetails)
	protected.POST("/:id/join", handler.JoinMeetup)
	protected.POST("/:id/leave", handler.LeaveMeetup)

	safetyRoutes := apiV1.Group("/safety")
	safetyRoutes.Use(auth.AuthMiddleware())
	safetyRoutes.POST("/report", handler.ReportUser)
	safetyRoutes.POST("/verification", handler.SubmitVerification)
	safetyRoutes.GET("/verification", handler.GetVerificationStatus)

	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	adminRoutes.GET("/reports", handler.ListReports)
	adminRoutes.PUT("/reports/:id", handler.ReviewReport)
	adminRoutes.PUT("/verifications/:id", handler.ReviewVerification)

	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser onboards a profile and returns its token and ID. The
// email is derived from the name, so names must be unique per test.
func registerUser(t *testing.T, router *gin.Engine, name, district string, age int) (string, uint) {
	t.Helper()

	input := gin.H{
		"name":        name,
		"email":       fmt.Sprintf("%s@example.com", name),
		"password":    "password123",
		"age":         age,
		"gender":      "female",
		"district":    district,
		"city":        district,
		"bio":         "Loves Odissi dance and pakhala.",
		"interests":   []string{"Odissi Dance", "Food"},
		"looking_for": "friendship",
		"language":    "both",
	}
	w := performRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token  string `json:"token"`
		UserID uint   `json:"user_id"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.UserID
}

// connectUsers sends a request from the first user to the second and
// accepts it, returning the connection ID.
func connectUsers(t *testing.T, router *gin.Engine, tokenA string, idB uint, tokenB string) uint {
	t.Helper()

	w := performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idB,
		"connection_type": "friendship",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var conn struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &conn)

	w = performRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/connections/%d/respond", conn.ID), tokenB, gin.H{
		"response": "accepted",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return conn.ID
}

// promoteToAdmin flips a user's role directly in the database.
func promoteToAdmin(t *testing.T, userID uint) {
	t.Helper()
	err := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", "admin").Error
	require.NoError(t, err)
}

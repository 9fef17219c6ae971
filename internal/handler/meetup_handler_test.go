package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMeetup(t *testing.T, router *gin.Engine, token, title, category string, maxParticipants int, at time.Time) uint {
	t.Helper()
	w := performRequest(t, router, http.MethodPost, "/api/v1/meetups", token, gin.H{
		"title":            title,
		"description":      "A community gathering.",
		"location_name":    "Marine Drive",
		"address":          "Puri beach road",
		"date_time":        at.Format(time.RFC3339),
		"max_participants": maxParticipants,
		"category":         category,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var meetup struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &meetup)
	return meetup.ID
}

func TestCreateMeetup(t *testing.T) {
	router := setupRouter(t)
	token, userID := registerUser(t, router, "ananya", "Puri", 25)

	at := time.Now().Add(48 * time.Hour)
	w := performRequest(t, router, http.MethodPost, "/api/v1/meetups", token, gin.H{
		"title":            "Beach cleanup",
		"description":      "Morning cleanup and chai.",
		"location_name":    "Puri Beach",
		"address":          "Near the lighthouse",
		"date_time":        at.Format(time.RFC3339),
		"max_participants": 10,
		"category":         "social",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var meetup struct {
		ParticipantCount int  `json:"participant_count"`
		SafetyVerified   bool `json:"safety_verified"`
		IsPublic         bool `json:"is_public"`
		Organizer        struct {
			ID uint `json:"id"`
		} `json:"organizer"`
	}
	decodeBody(t, w, &meetup)
	assert.Equal(t, 1, meetup.ParticipantCount, "organizer joins automatically")
	assert.False(t, meetup.SafetyVerified)
	assert.True(t, meetup.IsPublic)
	assert.Equal(t, userID, meetup.Organizer.ID)
}

func TestJoinMeetupCapacity(t *testing.T) {
	router := setupRouter(t)

	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, _ := registerUser(t, router, "bikash", "Puri", 27)
	tokenC, _ := registerUser(t, router, "chinmay", "Cuttack", 30)

	// Capacity 2: organizer plus one more.
	meetupID := createMeetup(t, router, tokenA, "Tiny meetup", "food", 2, time.Now().Add(24*time.Hour))
	joinPath := fmt.Sprintf("/api/v1/meetups/%d/join", meetupID)

	w := performRequest(t, router, http.MethodPost, joinPath, tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Joining twice conflicts.
	w = performRequest(t, router, http.MethodPost, joinPath, tokenB, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The meetup is now full.
	w = performRequest(t, router, http.MethodPost, joinPath, tokenC, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Meetup is full", resp.Error)

	// Unknown meetup.
	w = performRequest(t, router, http.MethodPost, "/api/v1/meetups/999/join", tokenC, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveMeetup(t *testing.T) {
	router := setupRouter(t)

	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, _ := registerUser(t, router, "bikash", "Puri", 27)

	meetupID := createMeetup(t, router, tokenA, "Evening walk", "social", 5, time.Now().Add(24*time.Hour))
	w := performRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/meetups/%d/join", meetupID), tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The organizer is pinned to their own meetup.
	w = performRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/meetups/%d/leave", meetupID), tokenA, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/meetups/%d/leave", meetupID), tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/meetups/%d", meetupID), tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var details struct {
		ParticipantCount int `json:"participant_count"`
	}
	decodeBody(t, w, &details)
	assert.Equal(t, 1, details.ParticipantCount)
}

func TestUpcomingMeetupsSortedAndFiltered(t *testing.T) {
	router := setupRouter(t)
	token, _ := registerUser(t, router, "ananya", "Puri", 25)

	createMeetup(t, router, token, "Next week", "cultural", 10, time.Now().Add(7*24*time.Hour))
	createMeetup(t, router, token, "Tomorrow", "cultural", 10, time.Now().Add(24*time.Hour))
	createMeetup(t, router, token, "Food crawl", "food", 10, time.Now().Add(48*time.Hour))

	// The listing needs no authentication.
	w := performRequest(t, router, http.MethodGet, "/api/v1/meetups", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meetups []struct {
		Title string `json:"title"`
	}
	decodeBody(t, w, &meetups)
	require.Len(t, meetups, 3)
	assert.Equal(t, "Tomorrow", meetups[0].Title, "soonest first")
	assert.Equal(t, "Food crawl", meetups[1].Title)
	assert.Equal(t, "Next week", meetups[2].Title)

	w = performRequest(t, router, http.MethodGet, "/api/v1/meetups?category=food", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &meetups)
	require.Len(t, meetups, 1)
	assert.Equal(t, "Food crawl", meetups[0].Title)

	// The soonest-first ordering holds under a limit.
	w = performRequest(t, router, http.MethodGet, "/api/v1/meetups?limit=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &meetups)
	require.Len(t, meetups, 1)
	assert.Equal(t, "Tomorrow", meetups[0].Title)
}

func TestGetMyMeetups(t *testing.T) {
	router := setupRouter(t)

	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, _ := registerUser(t, router, "bikash", "Puri", 27)

	organizedID := createMeetup(t, router, tokenA, "My own", "social", 5, time.Now().Add(24*time.Hour))
	joinedID := createMeetup(t, router, tokenB, "Their event", "sports", 5, time.Now().Add(48*time.Hour))

	w := performRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/meetups/%d/join", joinedID), tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodGet, "/api/v1/meetups/mine", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var mine struct {
		Organized []struct {
			ID uint `json:"id"`
		} `json:"organized"`
		Joined []struct {
			ID uint `json:"id"`
		} `json:"joined"`
	}
	decodeBody(t, w, &mine)
	require.Len(t, mine.Organized, 1)
	require.Len(t, mine.Joined, 1)
	assert.Equal(t, organizedID, mine.Organized[0].ID)
	assert.Equal(t, joinedID, mine.Joined[0].ID)
}

package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"odishaconnect/backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullUserJourney walks two freshly registered users from discovery
// through connecting, messaging and clearing the unread badge.
func TestFullUserJourney(t *testing.T) {
	router := setupRouter(t)
	testutil.SetupTestCache(t)

	tokenA, idA := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)

	// U1 discovers U2 through the district filter.
	w := performRequest(t, router, http.MethodGet, "/api/v1/users/discover?district=Puri", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var found []struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &found)
	require.Len(t, found, 1)
	require.Equal(t, idB, found[0].ID)

	// U1 requests, U2 accepts.
	w = performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idB,
		"connection_type": "friendship",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var conn struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &conn)

	w = performRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/connections/%d/respond", conn.ID), tokenB, gin.H{
		"response": "accepted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// U1 sends a greeting.
	w = performRequest(t, router, http.MethodPost, "/api/v1/messages", tokenA, gin.H{
		"receiver_id":  idB,
		"content":      "Hi",
		"message_type": "text",
		"language":     "english",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// U2 has one unread message.
	w = performRequest(t, router, http.MethodGet, "/api/v1/messages/unread", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var unread struct {
		Unread int64 `json:"unread"`
	}
	decodeBody(t, w, &unread)
	assert.Equal(t, int64(1), unread.Unread)

	// U2 opens the conversation and marks it read.
	w = performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/messages/conversation/%d", idA), tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var msgs []struct {
		Content string `json:"content"`
	}
	decodeBody(t, w, &msgs)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hi", msgs[0].Content)

	w = performRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/messages/conversation/%d/read", idA), tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodGet, "/api/v1/messages/unread", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &unread)
	assert.Zero(t, unread.Unread)
}

package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendConnectionRequest(t *testing.T) {
	router := setupRouter(t)

	tokenA, idA := registerUser(t, router, "ananya", "Puri", 25)
	_, idB := registerUser(t, router, "bikash", "Puri", 27)

	w := performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idB,
		"connection_type": "dating",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var conn struct {
		Status          string `json:"status"`
		ConnectionType  string `json:"connection_type"`
		IsInitiatedByMe bool   `json:"is_initiated_by_me"`
		OtherUser       struct {
			ID uint `json:"id"`
		} `json:"other_user"`
	}
	decodeBody(t, w, &conn)
	assert.Equal(t, "pending", conn.Status)
	assert.Equal(t, "dating", conn.ConnectionType)
	assert.True(t, conn.IsInitiatedByMe)
	assert.Equal(t, idB, conn.OtherUser.ID)

	// Self-connection is rejected.
	w = performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idA,
		"connection_type": "friendship",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown target.
	w = performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      999,
		"connection_type": "friendship",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateConnectionBothOrderings(t *testing.T) {
	router := setupRouter(t)

	tokenA, idA := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)

	w := performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idB,
		"connection_type": "friendship",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same direction again.
	w = performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idB,
		"connection_type": "friendship",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Reverse direction hits the same pair.
	w = performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenB, gin.H{
		"to_user_id":      idA,
		"connection_type": "friendship",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRespondToConnection(t *testing.T) {
	router := setupRouter(t)

	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)
	tokenC, _ := registerUser(t, router, "chinmay", "Cuttack", 30)

	w := performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idB,
		"connection_type": "friendship",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var conn struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &conn)
	respondPath := fmt.Sprintf("/api/v1/connections/%d/respond", conn.ID)

	// Outsiders cannot respond.
	w = performRequest(t, router, http.MethodPut, respondPath, tokenC, gin.H{"response": "accepted"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(t, router, http.MethodPut, respondPath, tokenB, gin.H{"response": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)

	// Both sides see the accepted connection, with initiator flags mirrored.
	var listA, listB []struct {
		Status          string `json:"status"`
		IsInitiatedByMe bool   `json:"is_initiated_by_me"`
	}

	w = performRequest(t, router, http.MethodGet, "/api/v1/connections?status=accepted", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &listA)
	require.Len(t, listA, 1)
	assert.True(t, listA[0].IsInitiatedByMe)

	w = performRequest(t, router, http.MethodGet, "/api/v1/connections?status=accepted", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &listB)
	require.Len(t, listB, 1)
	assert.False(t, listB[0].IsInitiatedByMe)
}

func TestRespondToUnknownConnection(t *testing.T) {
	router := setupRouter(t)
	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)

	w := performRequest(t, router, http.MethodPut, "/api/v1/connections/42/respond", tokenA, gin.H{"response": "rejected"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlockUser(t *testing.T) {
	router := setupRouter(t)

	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)

	// Blocking without a prior connection creates a blocked record.
	w := performRequest(t, router, http.MethodPost, "/api/v1/connections/block", tokenA, gin.H{
		"to_user_id": idB,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list []struct {
		Status string `json:"status"`
	}
	w = performRequest(t, router, http.MethodGet, "/api/v1/connections?status=blocked", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "blocked", list[0].Status)

	// The pair slot is taken, so a new request from either side conflicts.
	w = performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenB, gin.H{
		"to_user_id":      1,
		"connection_type": "friendship",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

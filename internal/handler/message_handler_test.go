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

func sendMessage(t *testing.T, router *gin.Engine, token string, receiverID uint, content string) {
	t.Helper()
	w := performRequest(t, router, http.MethodPost, "/api/v1/messages", token, gin.H{
		"receiver_id":  receiverID,
		"content":      content,
		"message_type": "text",
		"language":     "english",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestSendMessageRequiresConnection(t *testing.T) {
	router := setupRouter(t)

	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)
	_, idB := registerUser(t, router, "bikash", "Puri", 27)

	// No connection at all.
	w := performRequest(t, router, http.MethodPost, "/api/v1/messages", tokenA, gin.H{
		"receiver_id":  idB,
		"content":      "Hi",
		"message_type": "text",
		"language":     "english",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A pending connection is not enough.
	w = performRequest(t, router, http.MethodPost, "/api/v1/connections", tokenA, gin.H{
		"to_user_id":      idB,
		"connection_type": "friendship",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, router, http.MethodPost, "/api/v1/messages", tokenA, gin.H{
		"receiver_id":  idB,
		"content":      "Hi",
		"message_type": "text",
		"language":     "english",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConversationChronologicalOrder(t *testing.T) {
	router := setupRouter(t)

	tokenA, idA := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)
	connectUsers(t, router, tokenA, idB, tokenB)

	sendMessage(t, router, tokenA, idB, "first")
	sendMessage(t, router, tokenB, idA, "second")
	sendMessage(t, router, tokenA, idB, "third")

	// Both participants read the same conversation.
	for _, tc := range []struct {
		token string
		other uint
	}{
		{tokenA, idB},
		{tokenB, idA},
	} {
		w := performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/messages/conversation/%d", tc.other), tc.token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var msgs []struct {
			Content        string `json:"content"`
			ConversationID string `json:"conversation_id"`
		}
		decodeBody(t, w, &msgs)
		require.Len(t, msgs, 3)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, "second", msgs[1].Content)
		assert.Equal(t, "third", msgs[2].Content)
		assert.Equal(t, fmt.Sprintf("%d-%d", idA, idB), msgs[0].ConversationID)
	}
}

func TestConversationLimitKeepsNewest(t *testing.T) {
	router := setupRouter(t)

	tokenA, idA := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)
	connectUsers(t, router, tokenA, idB, tokenB)

	for i := 1; i <= 5; i++ {
		sendMessage(t, router, tokenA, idB, fmt.Sprintf("msg-%d", i))
	}

	w := performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/messages/conversation/%d?limit=2", idA), tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var msgs []struct {
		Content string `json:"content"`
	}
	decodeBody(t, w, &msgs)
	require.Len(t, msgs, 2)
	assert.Equal(t, "msg-4", msgs[0].Content)
	assert.Equal(t, "msg-5", msgs[1].Content)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	router := setupRouter(t)
	testutil.SetupTestCache(t)

	tokenA, idA := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)
	connectUsers(t, router, tokenA, idB, tokenB)

	sendMessage(t, router, tokenA, idB, "Hi")

	unread := func(token string) int64 {
		w := performRequest(t, router, http.MethodGet, "/api/v1/messages/unread", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Unread int64 `json:"unread"`
		}
		decodeBody(t, w, &resp)
		return resp.Unread
	}

	assert.Equal(t, int64(1), unread(tokenB))
	assert.Equal(t, int64(0), unread(tokenA))

	// A second message bumps the now-populated cached counter.
	sendMessage(t, router, tokenA, idB, "Hello again")
	assert.Equal(t, int64(2), unread(tokenB))

	w := performRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/messages/conversation/%d/read", idA), tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var marked struct {
		MarkedRead int64 `json:"marked_read"`
	}
	decodeBody(t, w, &marked)
	assert.Equal(t, int64(2), marked.MarkedRead)

	assert.Equal(t, int64(0), unread(tokenB))

	// Marking again is a no-op.
	w = performRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/messages/conversation/%d/read", idA), tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &marked)
	assert.Zero(t, marked.MarkedRead)
}

func TestUnreadCountWithoutCache(t *testing.T) {
	router := setupRouter(t)

	tokenA, _ := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)
	connectUsers(t, router, tokenA, idB, tokenB)

	sendMessage(t, router, tokenA, idB, "Hi")

	w := performRequest(t, router, http.MethodGet, "/api/v1/messages/unread", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Unread int64 `json:"unread"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(1), resp.Unread)
}

func TestConversationsList(t *testing.T) {
	router := setupRouter(t)

	tokenA, idA := registerUser(t, router, "ananya", "Puri", 25)
	tokenB, idB := registerUser(t, router, "bikash", "Puri", 27)
	tokenC, idC := registerUser(t, router, "chinmay", "Cuttack", 30)
	connectUsers(t, router, tokenA, idB, tokenB)
	connectUsers(t, router, tokenC, idA, tokenA)

	sendMessage(t, router, tokenB, idA, "from bikash")
	sendMessage(t, router, tokenC, idA, "from chinmay")
	sendMessage(t, router, tokenC, idA, "again from chinmay")

	w := performRequest(t, router, http.MethodGet, "/api/v1/messages/conversations", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []struct {
		OtherUser struct {
			ID uint `json:"id"`
		} `json:"other_user"`
		LastMessage struct {
			Content string `json:"content"`
		} `json:"last_message"`
		UnreadCount int64 `json:"unread_count"`
	}
	decodeBody(t, w, &summaries)
	require.Len(t, summaries, 2)

	// Most recent conversation first.
	assert.Equal(t, idC, summaries[0].OtherUser.ID)
	assert.Equal(t, "again from chinmay", summaries[0].LastMessage.Content)
	assert.Equal(t, int64(2), summaries[0].UnreadCount)

	assert.Equal(t, idB, summaries[1].OtherUser.ID)
	assert.Equal(t, int64(1), summaries[1].UnreadCount)
}

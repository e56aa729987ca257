package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"justco/internal/microservices/http-api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_CreateRoom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/create", r.URL.Path)

		var req dto.CreateRoomRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Team Standup", req.ChatName)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Room created"}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL).CreateRoom(&dto.CreateRoomRequest{ChatName: "Team Standup", SecretCode: "abc123"})

	require.NoError(t, err)
	assert.Equal(t, "Room created", resp.Message)
}

func TestHTTPClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Room not found"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL).JoinRoom("nope")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Room not found", apiErr.Message)
}

func TestHTTPClient_DeleteRoomSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/chat/room/abc123", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")

	assert.NoError(t, c.DeleteRoom("abc123"))
}

func TestHTTPClient_GetMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/messages/abc123", r.URL.Path)
		w.Write([]byte(`[{"userName":"alice","userLogo":"","text":"hi","createdAt":"2026-01-02T03:04:05Z"}]`))
	}))
	defer srv.Close()

	msgs, err := NewHTTPClient(srv.URL).GetMessages("abc123")

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice", msgs[0].UserName)
	assert.Equal(t, 2026, msgs[0].CreatedAt.Year())
}

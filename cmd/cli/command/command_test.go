package command

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adminjwt "justco/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { adminToken = "" })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAdminTokenCommand(t *testing.T) {
	secret := strings.Repeat("s", 32)

	out, err := run(t, "admin", "token", "--secret", secret, "--subject", "ops")
	require.NoError(t, err)

	claims, err := adminjwt.ParseAdminToken(secret, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
}

func TestRoomListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"chatName":"Team Standup","secretCode":"abc123","type":"public"}]`))
	}))
	defer srv.Close()

	out, err := run(t, "--api", srv.URL, "room", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Team Standup")
	assert.Contains(t, out, "abc123")
}

func TestRoomDeleteRequiresToken(t *testing.T) {
	_, err := run(t, "--api", "http://127.0.0.1:1", "--token", "", "room", "delete", "abc123")

	assert.Error(t, err)
}

func TestMessagePostReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Room not found"}`))
	}))
	defer srv.Close()

	_, err := run(t, "--api", srv.URL, "message", "post", "ghost", "hello", "there", "--user", "alice")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Room not found")
}

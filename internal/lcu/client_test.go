package lcu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeLockfile points a client at a test server.
func writeLockfile(t *testing.T, serverURL string) string {
	t.Helper()
	u, err := url.Parse(serverURL)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "lockfile")
	content := fmt.Sprintf("LeagueClient:1234:%s:sekrit:%s", u.Port(), u.Scheme)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseLockfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lockfile")
	require.NoError(t, os.WriteFile(path, []byte("LeagueClient:999:54321:token123:https"), 0o600))

	creds, err := parseLockfile(path)
	require.NoError(t, err)
	assert.Equal(t, 54321, creds.Port)
	assert.Equal(t, "token123", creds.Token)
	assert.Equal(t, "https", creds.Scheme)
}

func TestParseLockfileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lockfile")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	_, err := parseLockfile(path)
	assert.Error(t, err)
}

func TestCredentialsNotLoggedInString(t *testing.T) {
	creds := Credentials{Port: 1234, Token: "supersecret", Scheme: "https"}
	assert.NotContains(t, creds.String(), "supersecret")
}

func TestEnsureReadyTimesOut(t *testing.T) {
	c := NewClient([]string{filepath.Join(t.TempDir(), "nope")}, zap.NewNop())

	start := time.Now()
	err := c.EnsureReady(context.Background(), 100*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRequestSendsAuthAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "riot", user)
		assert.Equal(t, "sekrit", pass)
		_ = json.NewEncoder(w).Encode("ChampSelect")
	}))
	defer srv.Close()

	c := NewClient([]string{writeLockfile(t, srv.URL)}, zap.NewNop())
	phase, err := c.GameflowPhase(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ChampSelect", phase)
}

func TestRequestRetriesTransientStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode([]int{1, 2, 3})
	}))
	defer srv.Close()

	c := NewClient([]string{writeLockfile(t, srv.URL)}, zap.NewNop())
	ids, err := c.PickableChampionIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, int32(3), hits.Load())
}

func TestRequestDoesNotRetryValidationErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad champion id"}`))
	}))
	defer srv.Close()

	c := NewClient([]string{writeLockfile(t, srv.URL)}, zap.NewNop())
	err := c.HoverChampion(context.Background(), 1, -5)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Equal(t, int32(1), hits.Load(), "validation errors must not be retried")
}

func TestRequestGivesUpAfterRetryBudget(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient([]string{writeLockfile(t, srv.URL)}, zap.NewNop())
	err := c.CompleteAction(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(retryMaxAttempts), hits.Load())
}

func TestTransientStatus(t *testing.T) {
	assert.True(t, transientStatus(http.StatusNotFound))
	assert.True(t, transientStatus(http.StatusConflict))
	assert.True(t, transientStatus(http.StatusLocked))
	assert.True(t, transientStatus(http.StatusBadGateway))
	assert.False(t, transientStatus(http.StatusBadRequest))
	assert.False(t, transientStatus(http.StatusForbidden))
	assert.False(t, transientStatus(http.StatusUnprocessableEntity))
}

func TestForgetForcesRediscovery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode("Lobby")
	}))
	defer srv.Close()

	c := NewClient([]string{writeLockfile(t, srv.URL)}, zap.NewNop())
	_, err := c.Credentials()
	require.NoError(t, err)

	c.Forget()
	c.lockfilePaths = []string{filepath.Join(t.TempDir(), "gone")}
	_, err = c.Credentials()
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestLocalActions(t *testing.T) {
	sess := &ChampSelectSession{
		LocalPlayerCellID: 2,
		Actions: [][]Action{
			{
				{ID: 1, ActorCellID: 0, Type: "ban"},
				{ID: 2, ActorCellID: 2, Type: "ban", Completed: true},
			},
			{
				{ID: 3, ActorCellID: 2, Type: "pick"},
				{ID: 4, ActorCellID: 3, Type: "pick"},
			},
		},
	}
	local := sess.LocalActions()
	require.Len(t, local, 1)
	assert.Equal(t, 3, local[0].ID)
}

func TestSessionTimerFallbackFields(t *testing.T) {
	assert.Equal(t, int64(5000), SessionTimer{AdjustedTimeLeftInPhase: 5000, TimeLeftInPhase: 9000}.RemainingMillis())
	assert.Equal(t, int64(9000), SessionTimer{TimeLeftInPhase: 9000}.RemainingMillis())
}

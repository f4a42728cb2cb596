package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/lcu-autopick/internal/config"
)

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSettingsRoundtrip(t *testing.T) {
	store := config.NewStore(config.Settings{AutoPick: true, Region: "na"})

	rec := httptest.NewRecorder()
	GetSettings(store)(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got config.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.AutoPick)

	body := `{"autoPick":false,"autoBan":true,"ban":"zed","region":"euw"}`
	rec = httptest.NewRecorder()
	PutSettings(store)(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	current := store.Current()
	assert.False(t, current.AutoPick)
	assert.True(t, current.AutoBan)
	assert.Equal(t, "zed", current.Ban)
}

func TestPutSettingsRejectsBadInput(t *testing.T) {
	store := config.NewStore(config.Settings{})

	rec := httptest.NewRecorder()
	PutSettings(store)(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader("not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	PutSettings(store)(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"region":"atlantis"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

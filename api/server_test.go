package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matt-g-everett/tweentx/frame"
	"github.com/matt-g-everett/tweentx/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	m := frame.NewManual()
	a := tween.New(tween.Config{
		Duration: 100 * time.Millisecond,
		Range:    tween.Single{Start: 0, End: 10},
		OnUpdate: func(tween.Value) {},
	}, m)
	require.NoError(t, a.Start())
	m.Step(25 * time.Millisecond)

	srv := httptest.NewServer(NewApi(a, "").Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var snap tween.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "Running", snap.State)
	assert.InDelta(t, 0.25, snap.Progress, 1e-9)
	assert.InDelta(t, 2.5, snap.Value.Scalar, 1e-9)
	assert.False(t, snap.Value.IsGroup())
}

func TestStatusMethodNotAllowed(t *testing.T) {
	a := tween.New(tween.Config{}, frame.NewManual())
	rec := httptest.NewRecorder()

	NewApi(a, "").Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree.txt"), []byte("tree"), 0644))

	a := tween.New(tween.Config{}, frame.NewManual())
	rec := httptest.NewRecorder()
	NewApi(a, dir).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tree.txt", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tree", rec.Body.String())

	rec = httptest.NewRecorder()
	NewApi(a, "").Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tree.txt", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

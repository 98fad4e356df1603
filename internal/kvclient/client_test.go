package kvclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licitemos/internal/controller"
	"licitemos/internal/kvclient"
	"licitemos/internal/models"
	"licitemos/internal/repository"
	"licitemos/internal/router"
	"licitemos/internal/service"
)

const testToken = "client-test-token"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := controller.NewController(service.NewService(repository.NewMemoryStorage()))
	ts := httptest.NewServer(router.NewRouter(c, testToken))
	t.Cleanup(ts.Close)
	return ts
}

func TestRoundTripDeepEqual(t *testing.T) {
	ts := newServer(t)
	client := kvclient.New(ts.URL, testToken)
	ctx := context.Background()

	stored := map[string]any{
		"emailActivo": false,
		"frecuencia":  "diario",
		"palabrasClave": []any{
			map[string]any{"palabra": "pavimento", "montoMin": "1000000", "activa": true},
		},
		"nota": nil,
	}
	require.NoError(t, client.Set(ctx, "alertas_config", stored))

	raw, found, err := client.Get(ctx, "alertas_config")
	require.NoError(t, err)
	require.True(t, found)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, stored, got)
}

func TestGetAbsentIsNotAnError(t *testing.T) {
	ts := newServer(t)
	client := kvclient.New(ts.URL, testToken)

	raw, found, err := client.Get(context.Background(), "never_set")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, raw)
}

func TestValueSurvivesClientRestart(t *testing.T) {
	ts := newServer(t)
	ctx := context.Background()

	first := kvclient.New(ts.URL, testToken)
	require.NoError(t, first.Set(ctx, "user_profile", map[string]string{"nombre": "Ana"}))

	// A fresh client instance simulates a process restart; the value must
	// come back from the store, not from anything held in memory.
	second := kvclient.New(ts.URL, testToken)
	raw, found, err := second.Get(ctx, "user_profile")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"nombre":"Ana"}`, string(raw))
}

func TestDeleteIdempotentAndGetAfterDelete(t *testing.T) {
	ts := newServer(t)
	client := kvclient.New(ts.URL, testToken)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []int{1, 2, 3}))
	require.NoError(t, client.Delete(ctx, "k"))
	require.NoError(t, client.Delete(ctx, "k"))

	_, found, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTransportFailureIsNotAbsence(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer failing.Close()

	client := kvclient.New(failing.URL, testToken)
	_, found, err := client.Get(context.Background(), "alertas_config")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.False(t, found)
}

func TestUnreachableStore(t *testing.T) {
	ts := newServer(t)
	url := ts.URL
	ts.Close()

	client := kvclient.New(url, testToken)
	_, _, err := client.Get(context.Background(), "k")
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	err = client.Set(context.Background(), "k", 1)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestRejectedCredential(t *testing.T) {
	ts := newServer(t)
	client := kvclient.New(ts.URL, "wrong-token")

	err := client.Set(context.Background(), "k", 1)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestHealth(t *testing.T) {
	ts := newServer(t)
	client := kvclient.New(ts.URL, testToken)
	assert.NoError(t, client.Health(context.Background()))

	ts.Close()
	assert.Error(t, client.Health(context.Background()))
}

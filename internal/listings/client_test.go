package listings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buenrollo/spots-admin/internal/attachment"
	"github.com/buenrollo/spots-admin/internal/config"
	"github.com/buenrollo/spots-admin/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.ListingsConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	})
}

func testPayload(t *testing.T) *Payload {
	t.Helper()

	payload, err := BuildSpotPayload(domain.SpotDraft{
		SectionID:    3,
		Name:         "Café Sur",
		DisplayOrder: 1,
	}, attachment.LogoRef{Kind: attachment.RefNone})
	require.NoError(t, err)

	return payload
}

func TestClient_CreateSpot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/spots", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Café Sur", r.FormValue("nombre"))
		assert.Equal(t, "3", r.FormValue("seccion_id"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "seccion_id": 3, "nombre": "Café Sur"}`))
	})

	spot, err := client.CreateSpot(context.Background(), testPayload(t))

	require.NoError(t, err)
	assert.Equal(t, uint(7), spot.ID)
	assert.Equal(t, "Café Sur", spot.Name)
}

func TestClient_UpdateSpot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/spots/42", r.URL.Path)

		_, _ = w.Write([]byte(`{"id": 42, "seccion_id": 3, "nombre": "Café Sur"}`))
	})

	spot, err := client.UpdateSpot(context.Background(), 42, testPayload(t))

	require.NoError(t, err)
	assert.Equal(t, uint(42), spot.ID)
}

func TestClient_UpdateSpot_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.UpdateSpot(context.Background(), 42, testPayload(t))

	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestClient_CreateSpot_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.CreateSpot(context.Background(), testPayload(t))

	// No spot is addressed on create; a 404 means the endpoint itself is
	// wrong and must not read as a missing spot.
	assert.NotErrorIs(t, err, ErrSpotNotFound)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
}

func TestClient_CreateSpot_RemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.CreateSpot(context.Background(), testPayload(t))

	require.Error(t, err)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Contains(t, remoteErr.Message, "boom")
}

func TestClient_GetSpots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secciones/3/spots", r.URL.Path)

		_, _ = w.Write([]byte(`[{"id": 1, "seccion_id": 3, "nombre": "Café Sur"}, {"id": 2, "seccion_id": 3, "nombre": "La Parrilla"}]`))
	})

	spots, err := client.GetSpots(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, "La Parrilla", spots[1].Name)
}

func TestClient_GetSpots_SectionNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetSpots(context.Background(), 99)

	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestClient_GetSections(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secciones", r.URL.Path)

		_, _ = w.Write([]byte(`[{"id": 3, "nombre": "Gastronomía", "seccion_order": 1}]`))
	})

	sections, err := client.GetSections(context.Background())

	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Gastronomía", sections[0].Name)
}

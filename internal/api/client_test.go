package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"pg360/internal/api"
	"pg360/internal/api/apitest"
	"pg360/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFake() *apitest.Server {
	return apitest.NewServer(
		[]model.Category{{ID: 1, Name: "Música"}, {ID: 2, Name: "Teatro"}},
		[]model.Place{{ID: 7, Name: "Praça das Cabeças", Address: "Rua A"}},
		[]model.Event{
			{ID: 10, Name: "Festival", Description: "Anual", Images: []string{"https://img/1.png"}},
		},
	)
}

func TestClient_Lists(t *testing.T) {
	srv := newFake()
	defer srv.Close()
	c := api.NewClient(srv.URL)
	ctx := context.Background()

	categories, err := c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{{ID: 1, Name: "Música"}, {ID: 2, Name: "Teatro"}}, categories)

	places, err := c.ListPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Praça das Cabeças", places[0].Name)

	events, err := c.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "https://img/1.png", events[0].FirstImage())
}

func TestClient_CreateEventWireFormat(t *testing.T) {
	srv := newFake()
	defer srv.Close()
	c := api.NewClient(srv.URL + "/")

	err := c.CreateEvent(context.Background(), model.NewEvent{
		Name:      "Show",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-02",
		Place:     model.PlaceRef{ID: 7},
		Category:  model.CategoryRef{ID: 1},
		Images:    []string{},
	})
	require.NoError(t, err)

	posts := srv.Posts("/eventos")
	require.Len(t, posts, 1)
	assert.NotEmpty(t, posts[0].CorrelationID)

	var body map[string]any
	require.NoError(t, json.Unmarshal(posts[0].Body, &body))
	assert.Equal(t, "Show", body["nmEvento"])
	assert.Equal(t, "2025-06-01", body["dtInicioEvento"])
	assert.Equal(t, map[string]any{"cdLocal": float64(7)}, body["local"])
	assert.Equal(t, map[string]any{"cdCategoria": float64(1)}, body["categoria"])
}

func TestClient_CreatePlaceNullCoordinates(t *testing.T) {
	srv := newFake()
	defer srv.Close()
	c := api.NewClient(srv.URL)

	require.NoError(t, c.CreatePlace(context.Background(), model.NewPlace{
		Name:     "Teatro",
		Address:  "Rua B",
		Category: model.CategoryRef{ID: 2},
	}))

	posts := srv.Posts("/locais")
	require.Len(t, posts, 1)
	var body map[string]any
	require.NoError(t, json.Unmarshal(posts[0].Body, &body))
	lat, ok := body["latitude"]
	assert.True(t, ok)
	assert.Nil(t, lat)
}

func TestClient_ServerError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "json message", body: `{"message":"Categoria já existe"}`, wantMsg: "Categoria já existe"},
		{name: "json without message", body: `{"error":"boom"}`, wantMsg: ""},
		{name: "json string", body: `"Nome inválido"`, wantMsg: "Nome inválido"},
		{name: "json message with markup", body: `{"message":"<b>Nome</b>   inválido"}`, wantMsg: "Nome inválido"},
		{name: "plain text", body: "Falha ao salvar", wantMsg: ""},
		{name: "html page", body: "<html><body><h1>Whitelabel   Error</h1></body></html>", wantMsg: ""},
		{name: "empty", body: "", wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFake()
			defer srv.Close()
			srv.Fail(http.MethodPost, "/categorias", apitest.Failure{Status: http.StatusBadRequest, Body: tt.body})

			err := api.NewClient(srv.URL).CreateCategory(context.Background(), model.NewCategory{Name: "x"})
			var serverErr *api.ServerError
			require.True(t, errors.As(err, &serverErr), "got %T", err)
			assert.Equal(t, http.StatusBadRequest, serverErr.StatusCode)
			assert.Equal(t, tt.wantMsg, serverErr.Message())
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := api.NewClient(url).ListCategories(context.Background())
	var netErr *api.NetworkError
	require.True(t, errors.As(err, &netErr), "got %T", err)
	assert.NotEmpty(t, netErr.CorrelationID)
}

func imageServer(t *testing.T, img image.Image) (*httptest.Server, <-chan http.Header) {
	t.Helper()
	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, img)
	}))
	t.Cleanup(srv.Close)
	return srv, headers
}

func TestClient_FetchImage_HeadersByHost(t *testing.T) {
	cdn, headers := imageServer(t, image.NewRGBA(image.Rect(0, 0, 2, 3)))
	backend := newFake()
	defer backend.Close()

	img, err := api.NewClient(backend.URL).FetchImage(context.Background(), cdn.URL+"/capa.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())
	h := <-headers
	assert.Empty(t, h.Get("X-Correlation-ID"))
	assert.Empty(t, h.Get("X-Source"))

	_, err = api.NewClient(cdn.URL).FetchImage(context.Background(), cdn.URL+"/capa.png")
	require.NoError(t, err)
	h = <-headers
	assert.NotEmpty(t, h.Get("X-Correlation-ID"))
	assert.Equal(t, "pg360-admin", h.Get("X-Source"))
}

func TestClient_FetchImage_SizeCap(t *testing.T) {
	// Random pixels do not compress, so the encoded PNG exceeds the cap.
	noise := image.NewRGBA(image.Rect(0, 0, 1400, 1400))
	rand.New(rand.NewSource(1)).Read(noise.Pix)
	cdn, headers := imageServer(t, noise)

	_, err := api.NewClient(api.DefaultBaseURL).FetchImage(context.Background(), cdn.URL+"/grande.png")
	<-headers
	assert.ErrorContains(t, err, "image decode error")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, api.DefaultBaseURL, api.NewClient("  ").BaseURL())
	assert.Equal(t, "http://api.local", api.NewClient("http://api.local///").BaseURL())
}

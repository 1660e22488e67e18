package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		user, _, ok := r.BasicAuth()
		require.True(t, ok, "token request must use basic auth")
		assert.Equal(t, "client-id", user)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","expires_in":3600}`))
	})
	mux.HandleFunc("/", handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient("client-id", "client-secret")
	c.baseURL = srv.URL
	c.tokenURL = srv.URL + "/api/token"
	return c
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "album", r.URL.Query().Get("type"))
		assert.Equal(t, "ok computer", r.URL.Query().Get("q"))
		w.Write([]byte(`{"albums":{"items":[
			{"id":"ab1","name":"OK Computer","artists":[{"name":"Radiohead"}],
			 "images":[{"url":"http://img/1"}],"release_date":"1997-05-21"}
		]}}`))
	})

	albums, err := c.Search(context.Background(), "ok computer")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "ab1", albums[0].SpotifyID)
	assert.Equal(t, "Radiohead", albums[0].Artist)
	assert.Equal(t, "http://img/1", albums[0].ImageURL)
}

func TestGetAlbum(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/albums/ab1", r.URL.Path)
		w.Write([]byte(`{"id":"ab1","name":"OK Computer","artists":[{"name":"Radiohead"}],
			"images":[{"url":"http://img/1"}],"release_date":"1997-05-21",
			"tracks":{"items":[
				{"name":"Airbag","duration_ms":284000,"track_number":1},
				{"name":"Paranoid Android","duration_ms":383000,"track_number":2}
			]}}`))
	})

	album, err := c.GetAlbum(context.Background(), "ab1")
	require.NoError(t, err)
	assert.Equal(t, "OK Computer", album.Name)
	require.Len(t, album.Tracks, 2)
	assert.Equal(t, "Airbag", album.Tracks[0].Name)
	assert.Equal(t, 1, album.Tracks[0].Number)
}

func TestGetAlbum_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"status":404}}`, http.StatusNotFound)
	})

	_, err := c.GetAlbum(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokenIsReused(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"albums":{"items":[]}}`))
	})

	_, err := c.Search(context.Background(), "a")
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "test-token", c.accessToken)
}

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/publicacoes", 2*time.Second)
}

func TestListPublications(t *testing.T) {
	t.Parallel()

	want := []Publication{
		{ID: "a1", Titulo: "Primeira", Autor: "Kaique", DataPublicacao: "2026-08-01", Texto: "texto longo o suficiente", Publicado: true},
		{ID: "b2", Titulo: "Segunda", Autor: "Larissa", DataPublicacao: "2026-09-15", Texto: "outro texto de teste", Publicado: false},
	}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/publicacoes/listar", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))

	got, err := c.ListPublications(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestListPublicationsEmptyIsValid(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	got, err := c.ListPublications(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetPublicationNotFound(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "publicação não encontrada", http.StatusNotFound)
	}))

	_, err := c.GetPublication(context.Background(), "nope")
	require.Error(t, err)
	require.True(t, IsNotFound(err))
	require.Equal(t, "publicação não encontrada", err.Error())
}

func TestCreatePublicationStripsClientID(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/publicacoes/postar", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in Publication
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		// the client must never fabricate an id
		require.Empty(t, in.ID)

		in.ID = "42"
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(in))
	}))

	got, err := c.CreatePublication(context.Background(), Publication{
		ID:     "should-not-be-sent",
		Titulo: "Hi",
		Autor:  "Kaique",
		Texto:  "texto com mais de dez",
	})
	require.NoError(t, err)
	require.Equal(t, "42", got.ID)
}

func TestUpdatePublicationServerErrorBodyVerbatim(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/publicacoes/atualizar/7", r.URL.Path)
		http.Error(w, "duplicate title", http.StatusBadRequest)
	}))

	_, err := c.UpdatePublication(context.Background(), "7", Publication{Titulo: "Hi"})
	require.Error(t, err)
	require.False(t, IsNotFound(err))
	require.Equal(t, "duplicate title", err.Error())
}

func TestDeletePublication(t *testing.T) {
	t.Parallel()

	var gotPath string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeletePublication(context.Background(), "x9"))
	require.Equal(t, "/api/publicacoes/excluir/x9", gotPath)
}

func TestListAuthors(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/publicacoes/autores", r.URL.Path)
		_, _ = w.Write([]byte(`["Kaique","Admin","Larissa"]`))
	}))

	got, err := c.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Kaique", "Admin", "Larissa"}, got)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1/api/publicacoes", 200*time.Millisecond)
	_, err := c.ListPublications(context.Background())
	require.Error(t, err)
	var se *StatusError
	require.False(t, errors.As(err, &se), "transport failure must not be a StatusError")
}

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_String(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{name: "equal", query: QueryEqual("status", "open"), want: `{"method":"equal","attribute":"status","values":["open"]}`},
		{name: "lessThan", query: QueryLessThan("expiresAt", "2026-01-01T00:00:00Z"), want: `{"method":"lessThan","attribute":"expiresAt","values":["2026-01-01T00:00:00Z"]}`},
		{name: "limit", query: QueryLimit(12), want: `{"method":"limit","values":[12]}`},
		{name: "offset", query: QueryOffset(24), want: `{"method":"offset","values":[24]}`},
		{name: "orderDesc", query: QueryOrderDesc("$createdAt"), want: `{"method":"orderDesc","attribute":"$createdAt"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, tt.query.String())
		})
	}
}

func TestCreateDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/databases/market/collections/jobs/documents", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(headerKey))

		body := decodeBody(t, r)
		assert.Equal(t, "doc-1", body["documentId"])
		assert.Equal(t, map[string]any{"title": "ART"}, body["data"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$id":"doc-1","title":"ART"}`))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	raw, err := a.Documents.CreateDocument(context.Background(), "jobs", "doc-1", map[string]any{"title": "ART"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"$id":"doc-1","title":"ART"}`, string(raw))
}

func TestCreateDocument_GeneratedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "unique()", decodeBody(t, r)["documentId"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Documents.CreateDocument(context.Background(), "jobs", "", map[string]any{})
	require.NoError(t, err)
}

func TestGetDocument_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/market/collections/jobs/documents/missing", r.URL.Path)
		writeBackendError(w, http.StatusNotFound, "document_not_found", "Document with the requested ID could not be found.")
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Documents.GetDocument(context.Background(), "jobs", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListDocuments_SendsQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		queries := r.URL.Query()["queries[]"]
		require.Len(t, queries, 3)

		var first Query
		require.NoError(t, json.Unmarshal([]byte(queries[0]), &first))
		assert.Equal(t, "equal", first.Method)
		assert.Equal(t, "city", first.Attribute)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":42,"documents":[{"$id":"a"},{"$id":"b"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	list, err := a.Documents.ListDocuments(context.Background(), "jobs",
		QueryEqual("city", "Bandung"), QueryLimit(2), QueryOffset(0))

	require.NoError(t, err)
	assert.Equal(t, 42, list.Total)
	require.Len(t, list.Documents, 2)
	assert.JSONEq(t, `{"$id":"b"}`, string(list.Documents[1]))
}

func TestUpdateDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/databases/market/collections/jobs/documents/doc-1", r.URL.Path)
		assert.Equal(t, map[string]any{"status": "closed"}, decodeBody(t, r)["data"])
		_, _ = w.Write([]byte(`{"$id":"doc-1","status":"closed"}`))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Documents.UpdateDocument(context.Background(), "jobs", "doc-1", map[string]any{"status": "closed"})
	require.NoError(t, err)
}

func TestDeleteDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/databases/market/collections/reviews/documents/r1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	require.NoError(t, a.Documents.DeleteDocument(context.Background(), "reviews", "r1"))
}

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		query, err := BuildListQuery(httptest.NewRequest(http.MethodGet, "/providers", nil))

		require.NoError(t, err)
		assert.Equal(t, "", query.Search)
		assert.Equal(t, constvars.DefaultPage, query.Page)
		assert.Equal(t, constvars.DefaultPageSize, query.PageSize)
	})

	t.Run("Explicit Values", func(t *testing.T) {
		query, err := BuildListQuery(httptest.NewRequest(http.MethodGet, "/providers?search=+lab+&page=2&page_size=25", nil))

		require.NoError(t, err)
		assert.Equal(t, "lab", query.Search, "search should be trimmed")
		assert.Equal(t, 2, query.Page)
		assert.Equal(t, 25, query.PageSize)
	})

	t.Run("Negative Page", func(t *testing.T) {
		_, err := BuildListQuery(httptest.NewRequest(http.MethodGet, "/providers?page=-1", nil))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Page Beyond Bound", func(t *testing.T) {
		_, err := BuildListQuery(httptest.NewRequest(http.MethodGet, "/providers?page=92233720368547759&page_size=100", nil))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		assert.Equal(t, "page must be less than or equal to 1000000", exceptions.AsCustomError(err).ClientMessage)
	})

	t.Run("Last Allowed Page", func(t *testing.T) {
		query, err := BuildListQuery(httptest.NewRequest(http.MethodGet, "/providers?page=1000000&page_size=100", nil))

		require.NoError(t, err)
		assert.Equal(t, constvars.MaxPage, query.Page)
	})

	t.Run("Unsupported Page Size", func(t *testing.T) {
		_, err := BuildListQuery(httptest.NewRequest(http.MethodGet, "/providers?page_size=30", nil))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		assert.Equal(t, "pagesize must be one of [10, 25, 50, 100]", exceptions.AsCustomError(err).ClientMessage)
	})

	t.Run("Non Numeric Page", func(t *testing.T) {
		_, err := BuildListQuery(httptest.NewRequest(http.MethodGet, "/providers?page=first", nil))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestParseURLParamID(t *testing.T) {
	withID := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/providers/"+id, nil)
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add(constvars.URLParamID, id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	}

	id, err := ParseURLParamID(withID("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"0", "-3", "abc"} {
		_, err := ParseURLParamID(withID(raw))
		assert.Error(t, err, raw)
	}
}

func TestParseBoolQueryParam(t *testing.T) {
	assert.True(t, ParseBoolQueryParam(httptest.NewRequest(http.MethodDelete, "/x?confirm=true", nil), constvars.URLQueryParamConfirm))
	assert.False(t, ParseBoolQueryParam(httptest.NewRequest(http.MethodDelete, "/x?confirm=yes%20please", nil), constvars.URLQueryParamConfirm))
	assert.False(t, ParseBoolQueryParam(httptest.NewRequest(http.MethodDelete, "/x", nil), constvars.URLQueryParamConfirm))
}

func TestBuildEntityForm(t *testing.T) {
	t.Run("Keeps Numbers Exact", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/providers", strings.NewReader(`{"nombre":"Acueducto XYZ","id_ubicacion":7}`))

		form, err := BuildEntityForm(req)

		require.NoError(t, err)
		assert.Equal(t, "Acueducto XYZ", form["nombre"])
		assert.Equal(t, json.Number("7"), form["id_ubicacion"])
	})

	t.Run("Empty Body", func(t *testing.T) {
		form, err := BuildEntityForm(httptest.NewRequest(http.MethodPost, "/providers", nil))

		require.NoError(t, err)
		assert.Empty(t, form)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		_, err := BuildEntityForm(httptest.NewRequest(http.MethodPost, "/providers", strings.NewReader(`{"nombre":`)))

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Body Over Limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/providers", strings.NewReader(`{"nombre":"`+strings.Repeat("a", 64)+`"}`))
		req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, 16)

		_, err := BuildEntityForm(req)

		require.Error(t, err)
		assert.Equal(t, constvars.StatusRequestEntityTooLarge, exceptions.StatusCodeOf(err))
	})
}

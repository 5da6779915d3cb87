// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/core/category"
)

type envelope struct {
	Success      bool            `json:"success"`
	ErrorOccured bool            `json:"errorOccured"`
	ErrorMessage string          `json:"errorMessage"`
	Data         json.RawMessage `json:"data"`
}

func newRouter(service *category.Service) http.Handler {
	router := chi.NewRouter()
	router.Mount("/Category", category.NewHandler(service).Routes())
	return router
}

func serve(t *testing.T, handler http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return recorder, env
}

/*
TestHTTP_GetTree returns the nested forest inside the envelope.
*/
func TestHTTP_GetTree(t *testing.T) {
	service, _ := seededService()

	recorder, env := serve(t, newRouter(service), http.MethodGet, "/Category", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, env.Success)

	var forest []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &forest))
	require.Len(t, forest, 1)
	assert.Equal(t, "A", forest[0]["name"])
	assert.Nil(t, forest[0]["parentId"])

	children := forest[0]["children"].([]any)
	require.Len(t, children, 2)
	leaf := children[1].(map[string]any)
	assert.Equal(t, float64(3), leaf["id"])
	assert.NotContains(t, leaf, "children")
}

/*
TestHTTP_AddOrUpdate covers insert, rename and the not-found envelope.
*/
func TestHTTP_AddOrUpdate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"insert", `{"parentId":1,"name":"Audio"}`, http.StatusOK, ""},
		{"rename", `{"id":3,"name":"Cables"}`, http.StatusOK, ""},
		{"unknown", `{"id":77,"name":"Nope"}`, http.StatusNotFound, "Category Id: 77 not found"},
		{"invalid json", `{"name":`, http.StatusBadRequest, "Invalid JSON payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := seededService()

			recorder, env := serve(t, newRouter(service), http.MethodPost, "/Category", tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMsg, env.ErrorMessage)
			assert.Equal(t, tt.wantStatus == http.StatusOK, env.Success)
			assert.Equal(t, tt.wantStatus != http.StatusOK, env.ErrorOccured)
		})
	}
}

/*
TestHTTP_Delete accepts repeated and comma-separated ids.
*/
func TestHTTP_Delete(t *testing.T) {
	service, repo := seededService()
	router := newRouter(service)

	recorder, env := serve(t, router, http.MethodDelete, "/Category?categoryIds=2&CategoryIds=3,4", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
	for _, id := range []int{2, 3, 4} {
		assert.False(t, repo.find(id).IsActive, "category %d", id)
	}
	assert.True(t, repo.find(1).IsActive)

	_, env = serve(t, router, http.MethodDelete, "/Category", "")
	assert.True(t, env.Success)
	assert.Equal(t, 1, repo.deleteCalls)
}

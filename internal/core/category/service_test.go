// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/core/category"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func seededService() (*category.Service, *memoryRepository) {
	records := sampleForest()
	records = append(records, &category.Category{ID: 5, ParentID: pointer.To(1), Name: "Gone", IsActive: false})
	repo := newMemoryRepository(records...)
	return category.NewService(repo, discardLogger()), repo
}

/*
TestService_GetTree excludes inactive categories from the forest.
*/
func TestService_GetTree(t *testing.T) {
	service, _ := seededService()

	forest, err := service.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, []int{2, 3}, ids(forest[0].Children))
}

/*
TestService_GetTree_RepositoryError propagates storage failures.
*/
func TestService_GetTree_RepositoryError(t *testing.T) {
	service, repo := seededService()
	repo.failWith = errors.New("connection reset")

	_, err := service.GetTree(context.Background())

	assert.EqualError(t, err, "connection reset")
}

/*
TestService_DescendantIDs expands over the active snapshot only.
*/
func TestService_DescendantIDs(t *testing.T) {
	service, _ := seededService()

	got, err := service.DescendantIDs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 3}, got)

	got, err = service.DescendantIDs(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, got)
}

/*
TestService_AddOrUpdate covers insert and rename routing.
*/
func TestService_AddOrUpdate(t *testing.T) {
	tests := []struct {
		name  string
		input category.SaveInput
		check func(t *testing.T, saved *category.Category, repo *memoryRepository)
	}{
		{
			name:  "nil id inserts",
			input: category.SaveInput{ParentID: pointer.To(2), Name: "  Tablets "},
			check: func(t *testing.T, saved *category.Category, repo *memoryRepository) {
				assert.Equal(t, 6, saved.ID)
				assert.Equal(t, "Tablets", saved.Name)
				assert.True(t, saved.IsActive)
				assert.Equal(t, 2, *repo.find(6).ParentID)
			},
		},
		{
			name:  "zero id inserts root",
			input: category.SaveInput{ID: pointer.To(0), Name: "Garden"},
			check: func(t *testing.T, saved *category.Category, repo *memoryRepository) {
				assert.Equal(t, 6, saved.ID)
				assert.Nil(t, repo.find(6).ParentID)
			},
		},
		{
			name:  "existing id renames and keeps parent",
			input: category.SaveInput{ID: pointer.To(4), ParentID: pointer.To(3), Name: "Desks"},
			check: func(t *testing.T, saved *category.Category, repo *memoryRepository) {
				assert.Equal(t, 4, saved.ID)
				assert.Equal(t, "Desks", repo.find(4).Name)
				assert.Equal(t, 2, *repo.find(4).ParentID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := seededService()

			saved, err := service.AddOrUpdate(context.Background(), tt.input)

			require.NoError(t, err)
			tt.check(t, saved, repo)
		})
	}
}

/*
TestService_AddOrUpdate_NotFound reports unknown and inactive ids by number.
*/
func TestService_AddOrUpdate_NotFound(t *testing.T) {
	for _, id := range []int{5, 99} {
		service, _ := seededService()

		_, err := service.AddOrUpdate(context.Background(), category.SaveInput{ID: pointer.To(id), Name: "X"})

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
		assert.Contains(t, appError.Message, "Category Id:")
	}
}

/*
TestService_AddOrUpdate_Validation rejects blank and oversized names and bad ids.
*/
func TestService_AddOrUpdate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input category.SaveInput
		field string
	}{
		{"blank", category.SaveInput{Name: " \t "}, category.FieldName},
		{"too long", category.SaveInput{Name: string(make([]rune, 256))}, category.FieldName},
		{"bad parent", category.SaveInput{Name: "ok", ParentID: pointer.To(-1)}, category.FieldParentID},
		{"negative id", category.SaveInput{ID: pointer.To(-3), Name: "ok"}, category.FieldID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := seededService()

			_, err := service.AddOrUpdate(context.Background(), tt.input)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tt.field, appError.Details[0].Field)
		})
	}
}

/*
TestService_Delete soft-deletes and skips empty batches.
*/
func TestService_Delete(t *testing.T) {
	service, repo := seededService()

	require.NoError(t, service.Delete(context.Background(), nil))
	assert.Zero(t, repo.deleteCalls)

	require.NoError(t, service.Delete(context.Background(), []int{2, 3}))
	assert.Equal(t, 1, repo.deleteCalls)
	assert.False(t, repo.find(2).IsActive)
	assert.False(t, repo.find(3).IsActive)

	// Node 4 is now an orphan and surfaces as a root.
	forest, err := service.GetTree(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, ids(forest))
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/catalog/internal/core/category"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// memoryRepository is an in-memory [category.Repository].
type memoryRepository struct {
	mu          sync.Mutex
	records     []*category.Category
	nextID      int
	deleteCalls int
	failWith    error
}

func newMemoryRepository(records ...*category.Category) *memoryRepository {
	repo := &memoryRepository{nextID: 1}
	for _, record := range records {
		copied := *record
		repo.records = append(repo.records, &copied)
		repo.nextID = max(repo.nextID, record.ID+1)
	}
	return repo
}

func (repo *memoryRepository) ListActive(_ context.Context) ([]*category.Category, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.failWith != nil {
		return nil, repo.failWith
	}

	active := make([]*category.Category, 0, len(repo.records))
	for _, record := range repo.records {
		if record.IsActive {
			copied := *record
			active = append(active, &copied)
		}
	}
	return active, nil
}

func (repo *memoryRepository) Create(_ context.Context, c *category.Category) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	c.ID = repo.nextID
	c.IsActive = true
	repo.nextID++

	copied := *c
	repo.records = append(repo.records, &copied)
	return nil
}

func (repo *memoryRepository) Rename(_ context.Context, id int, name string) (*category.Category, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, record := range repo.records {
		if record.ID == id && record.IsActive {
			record.Name = name
			copied := *record
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) SoftDelete(_ context.Context, ids []int) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.deleteCalls++
	var affected int64
	for _, record := range repo.records {
		if record.IsActive && slices.Contains(ids, record.ID) {
			record.IsActive = false
			affected++
		}
	}
	return affected, nil
}

func (repo *memoryRepository) find(id int) *category.Category {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, record := range repo.records {
		if record.ID == id {
			return record
		}
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country_test

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/catalog/internal/core/country"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

type memoryRepository struct {
	mu        sync.Mutex
	countries []*country.Country
	nextID    int
	listCalls int

	// afterList runs once the snapshot is taken, outside the lock.
	afterList func()
}

func newMemoryRepository(countries ...*country.Country) *memoryRepository {
	repo := &memoryRepository{nextID: 1}
	for _, c := range countries {
		copied := *c
		repo.countries = append(repo.countries, &copied)
		repo.nextID = max(repo.nextID, c.ID+1)
	}
	return repo
}

func (repo *memoryRepository) ListActive(_ context.Context) ([]*country.Country, error) {
	active, hook := repo.snapshot()
	if hook != nil {
		hook()
	}
	return active, nil
}

func (repo *memoryRepository) snapshot() ([]*country.Country, func()) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.listCalls++
	active := make([]*country.Country, 0)
	for _, c := range repo.countries {
		if c.IsActive {
			copied := *c
			active = append(active, &copied)
		}
	}
	slices.SortFunc(active, func(a, b *country.Country) int { return cmp.Compare(a.Name, b.Name) })

	hook := repo.afterList
	repo.afterList = nil
	return active, hook
}

func (repo *memoryRepository) Create(_ context.Context, c *country.Country) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	c.ID = repo.nextID
	c.IsActive = true
	repo.nextID++

	copied := *c
	repo.countries = append(repo.countries, &copied)
	return nil
}

func (repo *memoryRepository) Rename(_ context.Context, id int, name string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, c := range repo.countries {
		if c.ID == id && c.IsActive {
			c.Name = name
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (repo *memoryRepository) SoftDelete(_ context.Context, id int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, c := range repo.countries {
		if c.ID == id && c.IsActive {
			c.IsActive = false
			return nil
		}
	}
	return dberr.ErrNotFound
}

// memoryCache is a [country.ListCache] that can be told to fail.
type memoryCache struct {
	mu            sync.Mutex
	entry         []*country.Country
	present       bool
	failWith      error
	generation    int64
	stores        int
	skipped       int
	invalidations int
}

func (cache *memoryCache) Load(_ context.Context) ([]*country.Country, bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failWith != nil {
		return nil, false, cache.failWith
	}
	return cache.entry, cache.present, nil
}

func (cache *memoryCache) Generation(_ context.Context) (int64, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failWith != nil {
		return 0, cache.failWith
	}
	return cache.generation, nil
}

func (cache *memoryCache) Store(_ context.Context, generation int64, countries []*country.Country) (bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failWith != nil {
		return false, cache.failWith
	}
	if generation != cache.generation {
		cache.skipped++
		return false, nil
	}
	cache.stores++
	cache.entry, cache.present = countries, true
	return true, nil
}

func (cache *memoryCache) Invalidate(_ context.Context) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.invalidations++
	if cache.failWith != nil {
		return cache.failWith
	}
	cache.generation++
	cache.entry, cache.present = nil, false
	return nil
}

func sampleCountries() []*country.Country {
	return []*country.Country{
		{ID: 1, Name: "Japan", IsActive: true},
		{ID: 2, Name: "Georgia", IsActive: true},
		{ID: 3, Name: "Atlantis", IsActive: false},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func names(countries []*country.Country) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name)
	}
	return out
}

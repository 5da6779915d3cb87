// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/catalog/internal/core/category"
	"github.com/taibuivan/catalog/internal/core/product"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/pkg/pointer"
)

// memoryRepository is an in-memory [product.Repository] that records the
// last filter it was asked to list.
type memoryRepository struct {
	mu          sync.Mutex
	products    []*product.Product
	nextID      int
	lastFilter  *product.Filter
	deleteCalls int
}

func newMemoryRepository(products ...*product.Product) *memoryRepository {
	repo := &memoryRepository{nextID: 1}
	for _, p := range products {
		copied := *p
		repo.products = append(repo.products, &copied)
		repo.nextID = max(repo.nextID, p.ID+1)
	}
	return repo
}

// List applies the id, category and activity criteria, which is enough to
// observe category scoping from the outside.
func (repo *memoryRepository) List(_ context.Context, filter product.Filter) (*product.Result, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.lastFilter = &filter

	result := &product.Result{Products: make([]*product.View, 0)}
	for _, p := range repo.products {
		if !p.IsActive {
			continue
		}
		if len(filter.IDs) > 0 && !slices.Contains(filter.IDs, p.ID) {
			continue
		}
		if len(filter.CategoryIDs) > 0 && !slices.Contains(filter.CategoryIDs, p.CategoryID) {
			continue
		}
		result.Products = append(result.Products, &product.View{Product: *p})
	}
	result.Count = len(result.Products)

	return result, nil
}

func (repo *memoryRepository) Create(_ context.Context, p *product.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	p.ID = repo.nextID
	p.IsActive = true
	repo.nextID++

	copied := *p
	repo.products = append(repo.products, &copied)
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, p *product.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, existing := range repo.products {
		if existing.ID == p.ID && existing.IsActive {
			p.IsActive = true
			copied := *p
			repo.products[i] = &copied
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (repo *memoryRepository) SoftDelete(_ context.Context, ids []int) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.deleteCalls++
	var affected int64
	for _, p := range repo.products {
		if p.IsActive && slices.Contains(ids, p.ID) {
			p.IsActive = false
			affected++
		}
	}
	return affected, nil
}

func (repo *memoryRepository) find(id int) *product.Product {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, p := range repo.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// treeScope expands ids over a fixed active category index.
type treeScope struct {
	index category.ParentIndex
	calls []int
}

func (scope *treeScope) DescendantIDs(_ context.Context, id int) ([]int, error) {
	scope.calls = append(scope.calls, id)
	return category.ExpandDescendantIDs(id, scope.index), nil
}

// sampleScope is A(1) → {B(2) → {D(4)}, C(3)}.
func sampleScope() *treeScope {
	return &treeScope{index: category.ParentIndex{
		1: nil,
		2: pointer.To(1),
		3: pointer.To(1),
		4: pointer.To(2),
	}}
}

// sampleProducts places one active product in each category plus an inactive one.
func sampleProducts() []*product.Product {
	return []*product.Product{
		{ID: 10, CategoryID: 1, Code: "A-1", Name: "Alpha", Price: 10, IsActive: true},
		{ID: 20, CategoryID: 2, Code: "B-1", Name: "Bravo", Price: 20, IsActive: true},
		{ID: 30, CategoryID: 3, Code: "C-1", Name: "Charlie", Price: 30, IsActive: true},
		{ID: 40, CategoryID: 4, Code: "D-1", Name: "Delta", Price: 40, IsActive: true},
		{ID: 50, CategoryID: 4, Code: "D-2", Name: "Retired", Price: 50, IsActive: false},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func productIDs(result *product.Result) []int {
	out := make([]int, 0, len(result.Products))
	for _, view := range result.Products {
		out = append(out, view.ID)
	}
	return out
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pointer"
	"github.com/taibuivan/catalog/pkg/slice"
	"github.com/taibuivan/catalog/pkg/textnorm"
)

// resourceName is the label used in not-found messages.
const resourceName = "Category"

// SaveInput is the add-or-update payload. A nil or zero ID inserts.
type SaveInput struct {
	ID       *int   `json:"id"`
	ParentID *int   `json:"parentId"`
	Name     string `json:"name"`
}

// Service orchestrates category reads and mutations around the tree engine.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetTree loads the active snapshot and nests it with [BuildTree].
func (service *Service) GetTree(context context.Context) ([]*TreeNode, error) {
	records, err := service.repo.ListActive(context)
	if err != nil {
		return nil, err
	}
	return BuildTree(records), nil
}

/*
DescendantIDs expands id into itself plus every active descendant.

Parameters:
  - context: context.Context
  - id: int (Category to expand)

Returns:
  - []int: id first, then descendants (see [ExpandDescendantIDs])
  - error: Repository failures
*/
func (service *Service) DescendantIDs(context context.Context, id int) ([]int, error) {
	records, err := service.repo.ListActive(context)
	if err != nil {
		return nil, err
	}
	return ExpandDescendantIDs(id, IndexParents(records)), nil
}

/*
AddOrUpdate inserts a new category or renames an existing one.

Description: When input.ID is nil or zero a new active category is created
under input.ParentID. Otherwise only the name of the active category is
changed; the parent is left untouched.

Returns:
  - *Category: The saved record
  - error: Validation failures (including a negative id), or NotFound for an
    unknown or inactive id
*/
func (service *Service) AddOrUpdate(context context.Context, input SaveInput) (*Category, error) {
	name := textnorm.Clean(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, nameMaxLen)
	if input.ID != nil {
		validator.Custom(FieldID, *input.ID < 0, "Must not be negative")
	}
	if input.ParentID != nil {
		validator.Positive(FieldParentID, *input.ParentID)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.ID == nil || *input.ID == 0 {
		record := &Category{ParentID: input.ParentID, Name: name}
		if err := service.repo.Create(context, record); err != nil {
			return nil, err
		}

		service.logger.Info("category_created",
			slog.Int("category_id", record.ID),
			slog.Int("parent_id", pointer.Val(record.ParentID)),
			slog.String("name", record.Name),
		)
		return record, nil
	}

	id := *input.ID
	record, err := service.repo.Rename(context, id, name)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFoundID(resourceName, id)
		}
		return nil, err
	}

	service.logger.Info("category_updated", slog.Int("category_id", id), slog.String("name", name))
	return record, nil
}

// Delete soft-deletes every listed category. Non-positive ids are ignored and an
// empty list does nothing.
func (service *Service) Delete(context context.Context, ids []int) error {
	ids = slice.Filter(ids, func(id int) bool { return id > 0 })
	if len(ids) == 0 {
		return nil
	}

	affected, err := service.repo.SoftDelete(context, ids)
	if err != nil {
		return err
	}

	service.logger.Warn("categories_deleted", slog.Any("category_ids", ids), slog.Int64("affected", affected))
	return nil
}

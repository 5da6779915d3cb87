// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/slice"
	"github.com/taibuivan/catalog/pkg/textnorm"
)

// resourceName is the label used in not-found messages.
const resourceName = "Product"

// CategoryScope expands a category id into itself plus its active descendants.
// It is satisfied by the category service.
type CategoryScope interface {
	DescendantIDs(context context.Context, id int) ([]int, error)
}

// SaveInput is the add-or-update payload. A nil or non-positive ID inserts.
type SaveInput struct {
	ID         *int       `json:"id"`
	CategoryID int        `json:"categoryId"`
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	CountryID  *int       `json:"countryId"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
}

// Service implements product listing and maintenance.
type Service struct {
	repo       Repository
	categories CategoryScope
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryScope, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

/*
List returns one window of active products matching filter.

Description: A single category id is widened to the whole active subtree
below it. Two or more ids are matched literally, without expansion. Text
criteria are normalized the same way stored names are.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - *Result: Page of products and the unpaged count
  - error: Repository failures
*/
func (service *Service) List(context context.Context, filter Filter) (*Result, error) {
	filter.Code = textnorm.Clean(filter.Code)
	filter.Name = textnorm.Clean(filter.Name)

	if len(filter.CategoryIDs) == 1 {
		scope, err := service.categories.DescendantIDs(context, filter.CategoryIDs[0])
		if err != nil {
			return nil, err
		}
		filter.CategoryIDs = scope
	}

	return service.repo.List(context, filter)
}

/*
AddOrUpdate inserts a product or overwrites an active one.

Returns:
  - *Product: The saved record with its id
  - error: Validation failures, NotFound for an unknown id, or Unprocessable
    when the category or country does not exist
*/
func (service *Service) AddOrUpdate(context context.Context, input SaveInput) (*Product, error) {
	record := &Product{
		CategoryID: input.CategoryID,
		Code:       textnorm.Clean(input.Code),
		Name:       textnorm.Clean(input.Name),
		Price:      input.Price,
		CountryID:  input.CountryID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	if err := validateProduct(record); err != nil {
		return nil, err
	}

	if input.ID == nil || *input.ID < 1 {
		if err := service.repo.Create(context, record); err != nil {
			return nil, err
		}

		service.logger.Info("product_created", slog.Int("product_id", record.ID), slog.String("code", record.Code))
		return record, nil
	}

	record.ID = *input.ID
	if err := service.repo.Update(context, record); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFoundID(resourceName, record.ID)
		}
		return nil, err
	}

	service.logger.Info("product_updated", slog.Int("product_id", record.ID))
	return record, nil
}

func validateProduct(record *Product) error {
	validator := &validate.Validator{}

	validator.Positive(FieldCategoryID, record.CategoryID)
	validator.Required(FieldCode, record.Code).MaxLen(FieldCode, record.Code, codeMaxLen)
	validator.Required(FieldName, record.Name).MaxLen(FieldName, record.Name, nameMaxLen)
	validator.NonNegative(FieldPrice, record.Price)

	if record.StartDate != nil && record.EndDate != nil {
		validator.Custom(FieldEndDate, record.EndDate.Before(*record.StartDate), "Must not be before startDate")
	}

	return validator.Err()
}

// Delete soft-deletes every listed product. Non-positive ids are ignored and an
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

	service.logger.Warn("products_deleted", slog.Any("product_ids", ids), slog.Int64("affected", affected))
	return nil
}

// DeleteOne soft-deletes a single active product.
func (service *Service) DeleteOne(context context.Context, id int) error {
	if err := (&validate.Validator{}).Positive(FieldID, id).Err(); err != nil {
		return err
	}

	affected, err := service.repo.SoftDelete(context, []int{id})
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperr.NotFoundID(resourceName, id)
	}

	service.logger.Warn("product_deleted", slog.Int("product_id", id))
	return nil
}

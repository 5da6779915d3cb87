// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/textnorm"
)

const resourceName = "Country"

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

func (service *Service) List(context context.Context) ([]*Country, error) {
	return service.repo.ListActive(context)
}

func (service *Service) Create(context context.Context, input SaveInput) (*Country, error) {
	name := textnorm.Clean(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	record := &Country{Name: name}
	if err := service.repo.Create(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("country_created", slog.Int("country_id", record.ID), slog.String("name", name))
	return record, nil
}

// Update renames an active country. The id is required.
func (service *Service) Update(context context.Context, input SaveInput) (*Country, error) {
	name := textnorm.Clean(input.Name)

	validator := &validate.Validator{}
	validator.Custom(FieldID, input.ID == nil || *input.ID <= 0, "Must be a positive number")
	validator.Required(FieldName, name).MaxLen(FieldName, name, nameMaxLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	id := *input.ID
	if err := service.repo.Rename(context, id, name); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFoundID(resourceName, id)
		}
		return nil, err
	}

	service.logger.Info("country_updated", slog.Int("country_id", id), slog.String("name", name))
	return &Country{ID: id, Name: name, IsActive: true}, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFoundID(resourceName, id)
		}
		return err
	}

	service.logger.Warn("country_deleted", slog.Int("country_id", id))
	return nil
}

func validateName(name string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, nameMaxLen)
	return validator.Err()
}

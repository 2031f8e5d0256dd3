// internal/core/services/reference.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// ReferenceService serves accessory categories and phone types
type ReferenceService struct {
	repo   ports.ReferenceRepository
	cache  ports.Cache
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.ReferenceService = (*ReferenceService)(nil)

// NewReferenceService creates a new reference data service
func NewReferenceService(repo ports.ReferenceRepository, cache ports.Cache, ttl time.Duration, logger *slog.Logger) *ReferenceService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ReferenceService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "reference")),
	}
}

// Categories lists accessory categories.
func (s *ReferenceService) Categories(ctx context.Context) ([]domain.AccessoryCategory, error) {
	var categories []domain.AccessoryCategory
	load := func(ctx context.Context) (interface{}, error) {
		return s.repo.ListCategories(ctx)
	}

	if err := s.cache.Remember(ctx, keyCategories, s.ttl, &categories, load); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

// PhoneTypes lists known models, optionally for one brand.
func (s *ReferenceService) PhoneTypes(ctx context.Context, brand string) ([]domain.PhoneType, error) {
	brand = strings.TrimSpace(brand)
	key := keyPhoneTypes
	if brand != "" {
		key = cacheKey(keyPhoneTypes, strings.ToLower(brand))
	}

	var types []domain.PhoneType
	load := func(ctx context.Context) (interface{}, error) {
		return s.repo.ListPhoneTypes(ctx, brand)
	}

	if err := s.cache.Remember(ctx, key, s.ttl, &types, load); err != nil {
		return nil, fmt.Errorf("failed to load phone types: %w", err)
	}
	return types, nil
}

// Import upserts reference rows and drops their cached lists.
func (s *ReferenceService) Import(ctx context.Context, categories []domain.AccessoryCategory, types []domain.PhoneType) (*domain.ImportResult, error) {
	result := &domain.ImportResult{}

	if len(categories) > 0 {
		n, err := s.repo.UpsertCategories(ctx, categories)
		if err != nil {
			return nil, fmt.Errorf("failed to import categories: %w", err)
		}
		result.Categories = n
	}
	if len(types) > 0 {
		n, err := s.repo.UpsertPhoneTypes(ctx, types)
		if err != nil {
			return nil, fmt.Errorf("failed to import phone types: %w", err)
		}
		result.PhoneTypes = n
	}

	if err := s.cache.Invalidate(ctx, keyReferencePattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate reference cache",
			slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "reference data imported",
		slog.Int("categories", result.Categories),
		slog.Int("phone_types", result.PhoneTypes))
	return result, nil
}

// ImportWorkbook reads a workbook with a "Categories" sheet (name, Arabic
// name) and a "PhoneTypes" sheet (brand, model) and imports both. The first
// row of each sheet is a header.
func (s *ReferenceService) ImportWorkbook(ctx context.Context, data []byte) (*domain.ImportResult, error) {
	categories, types, err := ParseReferenceWorkbook(data)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, categories, types)
}

// ParseReferenceWorkbook extracts reference rows from an xlsx file.
func ParseReferenceWorkbook(data []byte) ([]domain.AccessoryCategory, []domain.PhoneType, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: not a readable workbook: %v", domain.ErrInvalidInput, err)
	}

	var (
		categories []domain.AccessoryCategory
		types      []domain.PhoneType
	)

	for _, sheet := range file.Sheets {
		var rows [][2]string
		err := sheet.ForEachRow(func(row *xlsx.Row) error {
			if row.GetCoordinate() == 0 {
				return nil
			}
			a := strings.TrimSpace(row.GetCell(0).Value)
			b := strings.TrimSpace(row.GetCell(1).Value)
			if a != "" {
				rows = append(rows, [2]string{a, b})
			}
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheet.Name, err)
		}

		switch normalizeSheetName(sheet.Name) {
		case "categories":
			for _, r := range rows {
				categories = append(categories, domain.AccessoryCategory{Name: r[0], ArabicName: r[1]})
			}
		case "phonetypes":
			for _, r := range rows {
				if r[1] == "" {
					continue
				}
				types = append(types, domain.PhoneType{Brand: r[0], Model: r[1]})
			}
		}
	}

	if len(categories) == 0 && len(types) == 0 {
		return nil, nil, fmt.Errorf("%w: workbook has no Categories or PhoneTypes rows", domain.ErrInvalidInput)
	}
	return categories, types, nil
}

func normalizeSheetName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "")
	return strings.ReplaceAll(name, " ", "")
}

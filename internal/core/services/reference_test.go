// internal/core/services/reference_test.go
package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/services"
	"github.com/alsaqri/phoneshop/test/helpers"
	"github.com/alsaqri/phoneshop/test/mocks"
)

func TestReferenceService_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReferenceRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)
	svc := services.NewReferenceService(repo, cache, 0, helpers.TestLogger())

	cache.EXPECT().Remember(gomock.Any(), "ref:categories", time.Hour, gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
	repo.EXPECT().ListCategories(gomock.Any()).Return([]domain.AccessoryCategory{
		{ID: 1, Name: "chargers", ArabicName: "شواحن"},
		{ID: 2, Name: "cases", ArabicName: "كفرات"},
	}, nil)

	categories, err := svc.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "شواحن", categories[0].ArabicName)
}

func TestReferenceService_PhoneTypes(t *testing.T) {
	tests := []struct {
		name        string
		brand       string
		expectedKey string
	}{
		{name: "all_brands", brand: "", expectedKey: "ref:phone-types"},
		{name: "one_brand_keyed_case_insensitively", brand: " Apple ", expectedKey: "ref:phone-types:apple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockReferenceRepository(ctrl)
			cache := mocks.NewMockCache(ctrl)
			svc := services.NewReferenceService(repo, cache, time.Minute, helpers.TestLogger())

			cache.EXPECT().Remember(gomock.Any(), tt.expectedKey, time.Minute, gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
			repo.EXPECT().ListPhoneTypes(gomock.Any(), gomock.Any()).Return([]domain.PhoneType{{ID: 1, Brand: "Apple", Model: "iPhone 15"}}, nil)

			types, err := svc.PhoneTypes(context.Background(), tt.brand)

			require.NoError(t, err)
			require.Len(t, types, 1)
			assert.Equal(t, "iPhone 15", types[0].Model)
		})
	}
}

func TestReferenceService_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReferenceRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)
	svc := services.NewReferenceService(repo, cache, time.Minute, helpers.TestLogger())

	cache.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
	repo.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := svc.Categories(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load categories")
}

func referenceWorkbook(t *testing.T, sheets map[string][][]string) []byte {
	t.Helper()

	file := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := file.AddSheet(name)
		require.NoError(t, err)
		for _, values := range rows {
			row := sheet.AddRow()
			for _, v := range values {
				row.AddCell().SetString(v)
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func TestParseReferenceWorkbook(t *testing.T) {
	data := referenceWorkbook(t, map[string][][]string{
		"Categories": {
			{"name", "arabic_name"},
			{"chargers", "شواحن"},
			{"", "ignored"},
			{"cases", "كفرات"},
		},
		"Phone Types": {
			{"brand", "model"},
			{"Apple", "iPhone 15"},
			{"Samsung", ""},
		},
	})

	categories, types, err := services.ParseReferenceWorkbook(data)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, domain.AccessoryCategory{Name: "chargers", ArabicName: "شواحن"}, categories[0])
	require.Len(t, types, 1)
	assert.Equal(t, "iPhone 15", types[0].Model)
}

func TestParseReferenceWorkbook_Rejects(t *testing.T) {
	_, _, err := services.ParseReferenceWorkbook([]byte("not a zip"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	empty := referenceWorkbook(t, map[string][][]string{"Other": {{"a", "b"}, {"c", "d"}}})
	_, _, err = services.ParseReferenceWorkbook(empty)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReferenceService_ImportWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReferenceRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)
	svc := services.NewReferenceService(repo, cache, time.Minute, helpers.TestLogger())

	data := referenceWorkbook(t, map[string][][]string{
		"categories":  {{"name", "arabic_name"}, {"chargers", "شواحن"}},
		"phone_types": {{"brand", "model"}, {"Apple", "iPhone 15"}, {"Apple", "iPhone 15 Pro"}},
	})

	repo.EXPECT().UpsertCategories(gomock.Any(), gomock.Len(1)).Return(1, nil)
	repo.EXPECT().UpsertPhoneTypes(gomock.Any(), gomock.Len(2)).Return(2, nil)
	cache.EXPECT().Invalidate(gomock.Any(), "ref:*").Return(errors.New("redis down"))

	result, err := svc.ImportWorkbook(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Categories)
	assert.Equal(t, 2, result.PhoneTypes)
}

package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
)

// CaseCategoryService quản lý danh mục phân loại case
type CaseCategoryService struct {
	*BaseServiceMongoImpl[models.CaseCategory]
}

// NewCaseCategoryService tạo mới một CaseCategoryService
func NewCaseCategoryService() *CaseCategoryService {
	return &CaseCategoryService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.CaseCategory](mustCollection(global.MongoDB_ColNames.CaseCategories)),
	}
}

// Create tạo danh mục mới, tên danh mục phải chưa tồn tại
func (s *CaseCategoryService) Create(ctx context.Context, input *dto.CaseCategoryCreateInput) (models.CaseCategory, error) {
	var zero models.CaseCategory

	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Tên danh mục đã tồn tại", common.StatusConflict, nil)
	}

	return s.InsertOne(ctx, models.CaseCategory{
		Name: input.Name,
		Lob:  input.Lob,
	})
}

// BulkCreate tạo nhiều danh mục trong một lần, tên không được lặp
// trong danh sách và chưa được dùng
func (s *CaseCategoryService) BulkCreate(ctx context.Context, inputs []dto.CaseCategoryCreateInput) ([]models.CaseCategory, error) {
	if len(inputs) == 0 {
		return nil, common.ErrRequiredField
	}

	seen := make(map[string]struct{}, len(inputs))
	names := make([]string, 0, len(inputs))
	categories := make([]models.CaseCategory, 0, len(inputs))

	for i := range inputs {
		input := &inputs[i]
		if _, dup := seen[input.Name]; dup {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Tên danh mục bị lặp trong danh sách", common.StatusConflict, input.Name)
		}
		seen[input.Name] = struct{}{}
		names = append(names, input.Name)

		categories = append(categories, models.CaseCategory{
			Name: input.Name,
			Lob:  input.Lob,
		})
	}

	count, err := s.CountDocuments(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Tên danh mục đã tồn tại", common.StatusConflict, nil)
	}

	return s.InsertMany(ctx, categories)
}

// FindByLob lấy danh sách danh mục theo nhóm dịch vụ
func (s *CaseCategoryService) FindByLob(ctx context.Context, lob string) ([]models.CaseCategory, error) {
	if !models.IsValidEnum(lob, models.Lobs) {
		return nil, common.ErrInvalidInput
	}
	return s.Find(ctx, bson.M{"lob": lob}, nil)
}

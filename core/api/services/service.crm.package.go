package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
)

// PackageService quản lý gói dịch vụ có thể bán cho khách hàng
type PackageService struct {
	*BaseServiceMongoImpl[models.Package]
}

// NewPackageService tạo mới một PackageService
func NewPackageService() *PackageService {
	return &PackageService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Package](mustCollection(global.MongoDB_ColNames.Packages)),
	}
}

// Create tạo gói dịch vụ mới, tên gói phải chưa tồn tại
func (s *PackageService) Create(ctx context.Context, input *dto.PackageCreateInput) (models.Package, error) {
	var zero models.Package

	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Tên gói dịch vụ đã tồn tại", common.StatusConflict, nil)
	}

	return s.InsertOne(ctx, models.Package{
		Name:  input.Name,
		Lob:   input.Lob,
		Price: input.Price,
	})
}

// BulkCreate tạo nhiều gói dịch vụ trong một lần, tên gói không được
// lặp trong danh sách và chưa được dùng
func (s *PackageService) BulkCreate(ctx context.Context, inputs []dto.PackageCreateInput) ([]models.Package, error) {
	if len(inputs) == 0 {
		return nil, common.ErrRequiredField
	}

	seen := make(map[string]struct{}, len(inputs))
	names := make([]string, 0, len(inputs))
	packages := make([]models.Package, 0, len(inputs))

	for i := range inputs {
		input := &inputs[i]
		if _, dup := seen[input.Name]; dup {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Tên gói bị lặp trong danh sách", common.StatusConflict, input.Name)
		}
		seen[input.Name] = struct{}{}
		names = append(names, input.Name)

		packages = append(packages, models.Package{
			Name:  input.Name,
			Lob:   input.Lob,
			Price: input.Price,
		})
	}

	count, err := s.CountDocuments(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Tên gói dịch vụ đã tồn tại", common.StatusConflict, nil)
	}

	return s.InsertMany(ctx, packages)
}

// FindByLob lấy danh sách gói dịch vụ theo nhóm dịch vụ
func (s *PackageService) FindByLob(ctx context.Context, lob string) ([]models.Package, error) {
	if !models.IsValidEnum(lob, models.Lobs) {
		return nil, common.ErrInvalidInput
	}
	return s.Find(ctx, bson.M{"lob": lob}, nil)
}

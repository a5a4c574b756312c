package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
)

// ContactService quản lý người liên hệ của khách hàng
type ContactService struct {
	*BaseServiceMongoImpl[models.Contact]
}

// NewContactService tạo mới một ContactService
func NewContactService() *ContactService {
	return &ContactService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Contact](mustCollection(global.MongoDB_ColNames.Contacts)),
	}
}

// Create tạo người liên hệ mới, email phải chưa tồn tại
func (s *ContactService) Create(ctx context.Context, input *dto.ContactCreateInput) (models.Contact, error) {
	var zero models.Contact

	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Email người liên hệ đã tồn tại", common.StatusConflict, nil)
	}

	contact := models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		PhoneList: make([]models.Phone, 0, len(input.PhoneList)),
	}
	for _, p := range input.PhoneList {
		contact.PhoneList = append(contact.PhoneList, models.Phone{
			Category: p.Category,
			Number:   p.Number,
		})
	}

	return s.InsertOne(ctx, contact)
}

// BulkCreate tạo nhiều người liên hệ trong một lần, email không được
// lặp trong danh sách và chưa được dùng
func (s *ContactService) BulkCreate(ctx context.Context, inputs []dto.ContactCreateInput) ([]models.Contact, error) {
	if len(inputs) == 0 {
		return nil, common.ErrRequiredField
	}

	seen := make(map[string]struct{}, len(inputs))
	emails := make([]string, 0, len(inputs))
	contacts := make([]models.Contact, 0, len(inputs))

	for i := range inputs {
		input := &inputs[i]
		if _, dup := seen[input.Email]; dup {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Email bị lặp trong danh sách", common.StatusConflict, input.Email)
		}
		seen[input.Email] = struct{}{}
		emails = append(emails, input.Email)

		contact := models.Contact{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			PhoneList: make([]models.Phone, 0, len(input.PhoneList)),
		}
		for _, p := range input.PhoneList {
			contact.PhoneList = append(contact.PhoneList, models.Phone{
				Category: p.Category,
				Number:   p.Number,
			})
		}
		contacts = append(contacts, contact)
	}

	count, err := s.CountDocuments(ctx, bson.M{"email": bson.M{"$in": emails}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Email người liên hệ đã tồn tại", common.StatusConflict, nil)
	}

	return s.InsertMany(ctx, contacts)
}

// Search tìm người liên hệ bằng wildcard text index trên mọi trường chuỗi
func (s *ContactService) Search(ctx context.Context, term string) ([]models.Contact, error) {
	if term == "" {
		return nil, common.ErrRequiredField
	}
	return s.Find(ctx, bson.M{"$text": bson.M{"$search": term}}, nil)
}

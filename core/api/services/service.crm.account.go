package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
	"github.com/bnlarose/touchpoint-api/core/utility"
)

// AccountService quản lý tài khoản khách hàng, aggregate root của cây case
type AccountService struct {
	*BaseServiceMongoImpl[models.Account]
	sequenceService *SequenceService
	packageService  *PackageService
	contactService  *ContactService
}

// NewAccountService tạo mới một AccountService
func NewAccountService() *AccountService {
	return &AccountService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Account](mustCollection(global.MongoDB_ColNames.Accounts)),
		sequenceService:      NewSequenceService(mustCollection(global.MongoDB_ColNames.Counters)),
		packageService:       NewPackageService(),
		contactService:       NewContactService(),
	}
}

// toObjectIDs chuyển danh sách hex string thành ObjectID, bỏ qua giá trị rỗng
func toObjectIDs(hexIDs []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		id := utility.String2ObjectID(hex)
		if id != primitive.NilObjectID {
			ids = append(ids, id)
		}
	}
	return ids
}

// Create tạo tài khoản khách hàng mới.
// Số tài khoản do bộ cấp số tự sinh, các tham chiếu gói dịch vụ và
// người liên hệ phải tồn tại trước.
func (s *AccountService) Create(ctx context.Context, input *dto.AccountCreateInput) (models.Account, error) {
	var zero models.Account

	serviceIDs := toObjectIDs(input.ServiceList)
	if len(serviceIDs) > 0 {
		count, err := s.packageService.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": serviceIDs}})
		if err != nil {
			return zero, err
		}
		if count != int64(len(serviceIDs)) {
			return zero, common.NewError(common.ErrCodeDatabaseQuery, "Gói dịch vụ tham chiếu không tồn tại", common.StatusNotFound, nil)
		}
	}

	contactIDs := toObjectIDs(input.Contacts)
	if len(contactIDs) > 0 {
		count, err := s.contactService.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": contactIDs}})
		if err != nil {
			return zero, err
		}
		if count != int64(len(contactIDs)) {
			return zero, common.NewError(common.ErrCodeDatabaseQuery, "Người liên hệ tham chiếu không tồn tại", common.StatusNotFound, nil)
		}
	}

	accountNumber, err := s.sequenceService.NextAccountNumber(ctx)
	if err != nil {
		return zero, err
	}

	account := models.Account{
		AccountNumber: accountNumber,
		Address: models.Address{
			Street: input.Address.Street,
			City:   input.Address.City,
			Island: input.Address.Island,
		},
		CreatedDate: time.Now().UnixMilli(),
		ServiceList: serviceIDs,
		Contacts:    contactIDs,
		Cases:       []models.Case{},
	}

	return s.InsertOne(ctx, account)
}

// BulkCreate tạo nhiều tài khoản trong một lần. Mỗi tài khoản cần một
// số tài khoản riêng từ bộ cấp số nên tạo tuần tự, dừng ở lỗi đầu tiên.
func (s *AccountService) BulkCreate(ctx context.Context, inputs []dto.AccountCreateInput) ([]models.Account, error) {
	if len(inputs) == 0 {
		return nil, common.ErrRequiredField
	}

	accounts := make([]models.Account, 0, len(inputs))
	for i := range inputs {
		account, err := s.Create(ctx, &inputs[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// FindByNumber tìm tài khoản theo số tài khoản
func (s *AccountService) FindByNumber(ctx context.Context, accountNumber int64) (models.Account, error) {
	return s.FindOne(ctx, bson.M{"account_number": accountNumber}, nil)
}

// FindByContact lấy các tài khoản có gắn một người liên hệ
func (s *AccountService) FindByContact(ctx context.Context, contactID primitive.ObjectID) ([]models.Account, error) {
	return s.Find(ctx, bson.M{"contacts": contactID}, nil)
}

// AttachContact gắn thêm người liên hệ vào tài khoản, không thêm trùng
func (s *AccountService) AttachContact(ctx context.Context, accountNumber int64, contactID primitive.ObjectID) (models.Account, error) {
	var zero models.Account

	exists, err := s.contactService.DocumentExists(ctx, bson.M{"_id": contactID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Người liên hệ tham chiếu không tồn tại", common.StatusNotFound, nil)
	}

	return s.FindOneAndUpdate(
		ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$addToSet": bson.M{"contacts": contactID}},
		nil,
	)
}

// AttachService gắn thêm gói dịch vụ vào tài khoản, không thêm trùng
func (s *AccountService) AttachService(ctx context.Context, accountNumber int64, packageID primitive.ObjectID) (models.Account, error) {
	var zero models.Account

	exists, err := s.packageService.DocumentExists(ctx, bson.M{"_id": packageID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Gói dịch vụ tham chiếu không tồn tại", common.StatusNotFound, nil)
	}

	return s.FindOneAndUpdate(
		ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$addToSet": bson.M{"service_list": packageID}},
		nil,
	)
}

package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
	"github.com/bnlarose/touchpoint-api/core/utility"
)

// UserService quản lý người dùng nội bộ và xác thực đăng nhập
type UserService struct {
	*BaseServiceMongoImpl[models.User]
	tokenService *TokenService
}

// NewUserService tạo mới một UserService
func NewUserService() *UserService {
	return &UserService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.User](mustCollection(global.MongoDB_ColNames.Users)),
		tokenService:         NewTokenService(global.ServerConfig.JwtSecret),
	}
}

// newUserFromInput dựng model User từ input, hash password bằng bcrypt
func newUserFromInput(input *dto.UserCreateInput) (models.User, error) {
	var zero models.User

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Username:   input.Username,
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Password:   string(hashed),
		Site:       input.Site,
		Department: input.Department,
		Position:   input.Position,
	}

	if input.ReportsTo != "" {
		reportsTo := utility.String2ObjectID(input.ReportsTo)
		if reportsTo != primitive.NilObjectID {
			user.ReportsTo = &reportsTo
		}
	}

	return user, nil
}

// Create tạo người dùng mới.
// Kiểm tra trùng username trước khi insert để trả về thông báo rõ ràng,
// unique index trên username và email vẫn là chốt chặn cuối cùng.
func (s *UserService) Create(ctx context.Context, input *dto.UserCreateInput) (models.User, error) {
	var zero models.User

	exists, err := s.DocumentExists(ctx, bson.M{"username": input.Username})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Tên đăng nhập đã tồn tại", common.StatusConflict, nil)
	}

	user, err := newUserFromInput(input)
	if err != nil {
		return zero, err
	}

	return s.InsertOne(ctx, user)
}

// BulkCreate tạo nhiều người dùng trong một lần gọi.
// Toàn bộ input phải hợp lệ và không trùng username thì mới insert.
func (s *UserService) BulkCreate(ctx context.Context, inputs []dto.UserCreateInput) ([]models.User, error) {
	if len(inputs) == 0 {
		return nil, common.ErrRequiredField
	}

	seen := make(map[string]struct{}, len(inputs))
	usernames := make([]string, 0, len(inputs))
	users := make([]models.User, 0, len(inputs))

	for i := range inputs {
		input := &inputs[i]
		if _, dup := seen[input.Username]; dup {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Tên đăng nhập bị lặp trong danh sách", common.StatusConflict, input.Username)
		}
		seen[input.Username] = struct{}{}
		usernames = append(usernames, input.Username)

		user, err := newUserFromInput(input)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	count, err := s.CountDocuments(ctx, bson.M{"username": bson.M{"$in": usernames}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Tên đăng nhập đã tồn tại", common.StatusConflict, nil)
	}

	return s.InsertMany(ctx, users)
}

// LoginResult kết quả đăng nhập thành công
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login xác thực username/password và phát hành token.
// Sai username hay sai password đều trả về cùng một lỗi để không lộ
// thông tin tài khoản nào tồn tại.
func (s *UserService) Login(ctx context.Context, input *dto.UserLoginInput) (*LoginResult, error) {
	user, err := s.FindOne(ctx, bson.M{"username": input.Username}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// FindByDepartment lấy danh sách người dùng theo bộ phận
func (s *UserService) FindByDepartment(ctx context.Context, department string) ([]models.User, error) {
	if !models.IsValidEnum(department, models.Departments) {
		return nil, common.ErrInvalidInput
	}
	return s.Find(ctx, bson.M{"department": department}, nil)
}

// Tokens trả về TokenService dùng chung của service
func (s *UserService) Tokens() *TokenService {
	return s.tokenService
}

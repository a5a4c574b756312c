package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
	"github.com/bnlarose/touchpoint-api/core/logger"
	"github.com/bnlarose/touchpoint-api/core/notification"
)

// CaseService quản lý cây case nhúng trong Account:
// Account -> Case -> Interaction -> ActionRequest.
// Mọi thao tác sửa node nhúng đều là một lệnh update duy nhất dùng
// arrayFilters để định vị, nên hai request song song trên hai node khác
// nhau không ghi đè lẫn nhau.
type CaseService struct {
	*BaseServiceMongoImpl[models.Account]
	sequenceService *SequenceService
	categoryService *CaseCategoryService
}

// NewCaseService tạo mới một CaseService
func NewCaseService() *CaseService {
	return &CaseService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Account](mustCollection(global.MongoDB_ColNames.Accounts)),
		sequenceService:      NewSequenceService(mustCollection(global.MongoDB_ColNames.Counters)),
		categoryService:      NewCaseCategoryService(),
	}
}

// ====================================
// CÁC HÀM DỰNG FILTER / UPDATE
// ====================================
// Tách thành hàm thuần để kiểm thử được cấu trúc lệnh mà không cần database.

// FilterAccountByCaseID định vị account chứa một case theo id của case,
// không cần biết trước số tài khoản
func FilterAccountByCaseID(caseID primitive.ObjectID) bson.M {
	return bson.M{"cases._id": caseID}
}

// FilterAccountByInteractionID định vị account chứa một interaction theo id
func FilterAccountByInteractionID(interactionID primitive.ObjectID) bson.M {
	return bson.M{"cases.interactions._id": interactionID}
}

// FilterAccountByActionRequestID định vị account chứa một action request theo id
func FilterAccountByActionRequestID(actionRequestID primitive.ObjectID) bson.M {
	return bson.M{"cases.interactions.action_requests._id": actionRequestID}
}

// PushCaseUpdate dựng lệnh thêm case mới vào account
func PushCaseUpdate(newCase models.Case) bson.M {
	return bson.M{"$push": bson.M{"cases": newCase}}
}

// PullCaseUpdate dựng lệnh gỡ case khỏi account theo id
func PullCaseUpdate(caseID primitive.ObjectID) bson.M {
	return bson.M{"$pull": bson.M{"cases": bson.M{"_id": caseID}}}
}

// PushInteractionUpdate dựng lệnh thêm interaction vào đúng case và
// làm mới last_updated của case đó
func PushInteractionUpdate(caseID primitive.ObjectID, interaction models.Interaction, now int64) (bson.M, *options.UpdateOptions) {
	update := bson.M{
		"$push": bson.M{"cases.$[c].interactions": interaction},
		"$set":  bson.M{"cases.$[c].last_updated": now},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"c._id": caseID},
		},
	})
	return update, opts
}

// PushActionRequestUpdate dựng lệnh thêm action request vào đúng interaction,
// định vị bằng id của interaction ở cả hai tầng arrayFilters
func PushActionRequestUpdate(interactionID primitive.ObjectID, ar models.ActionRequest, now int64) (bson.M, *options.UpdateOptions) {
	update := bson.M{
		"$push": bson.M{"cases.$[c].interactions.$[i].action_requests": ar},
		"$set":  bson.M{"cases.$[c].last_updated": now},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"c.interactions._id": interactionID},
			bson.M{"i._id": interactionID},
		},
	})
	return update, opts
}

// SetActionRequestFieldUpdate dựng lệnh sửa đúng một trường của action
// request, định vị node bằng id ở cả ba tầng arrayFilters. Không đụng
// tới bất kỳ trường nào khác của account, kể cả last_updated của case.
func SetActionRequestFieldUpdate(actionRequestID primitive.ObjectID, field string, value interface{}) (bson.M, *options.UpdateOptions) {
	update := bson.M{
		"$set": bson.M{
			"cases.$[c].interactions.$[i].action_requests.$[a]." + field: value,
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"c.interactions.action_requests._id": actionRequestID},
			bson.M{"i.action_requests._id": actionRequestID},
			bson.M{"a._id": actionRequestID},
		},
	})
	return update, opts
}

// ====================================
// CÁC THAO TÁC TRÊN CÂY CASE
// ====================================

// CreateCase mở case mới trên tài khoản.
// Idempotent theo cặp (số tài khoản, tiêu đề): nếu tài khoản đã có case
// cùng tiêu đề thì trả về case hiện có thay vì tạo bản sao. Điều kiện
// "cases.title != title" nằm ngay trong filter của lệnh update nên hai
// request song song cùng tiêu đề chỉ có một request chèn được.
func (s *CaseService) CreateCase(ctx context.Context, accountNumber int64, openedBy primitive.ObjectID, input *dto.CaseCreateInput) (models.Case, error) {
	var zero models.Case

	categoryID, err := primitive.ObjectIDFromHex(input.Category)
	if err != nil {
		return zero, common.ErrInvalidInput
	}
	exists, err := s.categoryService.DocumentExists(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Danh mục case không tồn tại", common.StatusNotFound, nil)
	}

	caseNumber, err := s.sequenceService.NextCaseNumber(ctx, accountNumber)
	if err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	newCase := models.Case{
		ID:           primitive.NewObjectID(),
		CaseNumber:   caseNumber,
		Title:        input.Title,
		Lob:          input.Lob,
		Category:     categoryID,
		Opened:       now,
		LastUpdated:  now,
		OpenedBy:     openedBy,
		Status:       models.StatusOpen,
		Interactions: []models.Interaction{},
	}

	filter := bson.M{
		"account_number": accountNumber,
		"cases.title":    bson.M{"$ne": input.Title},
	}
	result, err := s.Collection().UpdateOne(ctx, filter, PushCaseUpdate(newCase))
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	if result.MatchedCount > 0 {
		return newCase, nil
	}

	// Không match: tài khoản không tồn tại hoặc case cùng tiêu đề đã có
	account, err := s.FindByNumber(ctx, accountNumber)
	if err != nil {
		return zero, err
	}
	for _, c := range account.Cases {
		if c.Title == input.Title {
			return c, nil
		}
	}

	return zero, common.ErrInvalidOperation
}

// FindByNumber tìm tài khoản theo số tài khoản
func (s *CaseService) FindByNumber(ctx context.Context, accountNumber int64) (models.Account, error) {
	return s.FindOne(ctx, bson.M{"account_number": accountNumber}, nil)
}

// FindCaseByID tìm một case theo id, không cần biết số tài khoản
func (s *CaseService) FindCaseByID(ctx context.Context, caseID primitive.ObjectID) (models.Case, error) {
	var zero models.Case

	account, err := s.FindOne(ctx, FilterAccountByCaseID(caseID), nil)
	if err != nil {
		return zero, err
	}
	for _, c := range account.Cases {
		if c.ID == caseID {
			return c, nil
		}
	}
	return zero, common.ErrNotFound
}

// DeleteCase gỡ case khỏi tài khoản theo id.
// Không có gì để gỡ (case hay cả tài khoản không tồn tại) vẫn trả về
// thành công: trạng thái đích (case không còn trên tài khoản) đã đạt được.
func (s *CaseService) DeleteCase(ctx context.Context, accountNumber int64, caseID primitive.ObjectID) error {
	filter := bson.M{"account_number": accountNumber}
	_, err := s.Collection().UpdateOne(ctx, filter, PullCaseUpdate(caseID))
	if err != nil {
		return common.ConvertMongoError(err)
	}

	return nil
}

// CreateInteraction ghi nhận một lần tiếp xúc khách hàng vào case.
// Case được định vị theo id của chính nó, không cần số tài khoản.
// Không có case khớp thì không ghi gì và trả về nil.
func (s *CaseService) CreateInteraction(ctx context.Context, caseID primitive.ObjectID, recordedBy primitive.ObjectID, input *dto.InteractionCreateInput) (*models.Interaction, error) {
	now := time.Now().UnixMilli()
	interaction := models.Interaction{
		ID:             primitive.NewObjectID(),
		Date:           now,
		Channel:        input.Channel,
		InteractedWith: input.InteractedWith,
		Contact:        input.Contact,
		RecordedBy:     recordedBy,
		Details:        input.Details,
		ActionRequests: []models.ActionRequest{},
	}

	update, opts := PushInteractionUpdate(caseID, interaction, now)
	result, err := s.Collection().UpdateOne(ctx, FilterAccountByCaseID(caseID), update, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return &interaction, nil
}

// CreateActionRequest tạo yêu cầu xử lý trong một interaction và phát
// thông báo cho bộ phận được gán qua kênh escalation.
// Không có interaction khớp thì không ghi gì, không phát thông báo và
// trả về nil.
func (s *CaseService) CreateActionRequest(ctx context.Context, interactionID primitive.ObjectID, requestedBy primitive.ObjectID, input *dto.ActionRequestCreateInput) (*models.ActionRequest, error) {
	now := time.Now().UnixMilli()
	ar := models.ActionRequest{
		ID:          primitive.NewObjectID(),
		Created:     now,
		Due:         input.Due,
		RequestedBy: requestedBy,
		AssignedTo:  input.AssignedTo,
		RequestType: input.RequestType,
		Details:     input.Details,
		Status:      models.StatusOpen,
	}

	update, opts := PushActionRequestUpdate(interactionID, ar, now)
	result, err := s.Collection().UpdateOne(ctx, FilterAccountByInteractionID(interactionID), update, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	// Thông báo best-effort: kênh đầy hay không có subscriber đều không
	// ảnh hưởng tới kết quả ghi dữ liệu
	if global.EscalationHub != nil {
		global.EscalationHub.Publish(notification.EscalationEvent{
			Department:    ar.AssignedTo,
			ActionRequest: ar,
		})
	} else {
		logger.GetAppLogger().Warn("EscalationHub chưa được khởi tạo, bỏ qua thông báo")
	}

	return &ar, nil
}

// ChangeActionRequestStatus đổi trạng thái một action request theo id.
// Chỉ ghi đúng trường status của node khớp, không có node khớp thì
// không ghi gì và trả về nil.
func (s *CaseService) ChangeActionRequestStatus(ctx context.Context, actionRequestID primitive.ObjectID, status string) (*models.ActionRequest, error) {
	if !models.IsValidEnum(status, models.Statuses) {
		return nil, common.ErrInvalidState
	}

	update, opts := SetActionRequestFieldUpdate(actionRequestID, "status", status)
	result, err := s.Collection().UpdateOne(ctx, FilterAccountByActionRequestID(actionRequestID), update, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return s.findActionRequestByID(ctx, actionRequestID)
}

// ClaimActionRequest ghi nhận người dùng nhận xử lý một action request.
// Chỉ ghi đúng một trường claimed_by nên không đụng tới các sửa đổi song
// song trên những node khác của cùng account; không có node khớp thì
// không ghi gì và trả về nil.
func (s *CaseService) ClaimActionRequest(ctx context.Context, actionRequestID primitive.ObjectID, claimedBy primitive.ObjectID) (*models.ActionRequest, error) {
	update, opts := SetActionRequestFieldUpdate(actionRequestID, "claimed_by", claimedBy)
	result, err := s.Collection().UpdateOne(ctx, FilterAccountByActionRequestID(actionRequestID), update, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return s.findActionRequestByID(ctx, actionRequestID)
}

// findActionRequestByID lấy lại action request sau khi cập nhật
func (s *CaseService) findActionRequestByID(ctx context.Context, actionRequestID primitive.ObjectID) (*models.ActionRequest, error) {
	account, err := s.FindOne(ctx, FilterAccountByActionRequestID(actionRequestID), nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	for _, c := range account.Cases {
		for _, i := range c.Interactions {
			for _, a := range i.ActionRequests {
				if a.ID == actionRequestID {
					return &a, nil
				}
			}
		}
	}

	return nil, common.ErrNotFound
}

package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
)

// AccountNumberBase là mốc bắt đầu của số tài khoản khách hàng
const AccountNumberBase int64 = 80000000

// SequenceService cấp số tuần tự qua collection counters.
// Mỗi scope là một document, tăng bằng $inc trong FindOneAndUpdate nên
// hai request song song không bao giờ nhận cùng một số.
type SequenceService struct {
	collection *mongo.Collection
}

// NewSequenceService tạo mới một SequenceService
func NewSequenceService(collection *mongo.Collection) *SequenceService {
	return &SequenceService{collection: collection}
}

// Next cấp số tiếp theo cho một scope, bắt đầu từ 1.
// Document counter được tạo tự động (upsert) ở lần cấp đầu tiên.
func (s *SequenceService) Next(ctx context.Context, scope string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": scope},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return counter.Seq, nil
}

// NextAccountNumber cấp số tài khoản tiếp theo, tài khoản đầu tiên nhận đúng mốc cơ sở
func (s *SequenceService) NextAccountNumber(ctx context.Context) (int64, error) {
	seq, err := s.Next(ctx, "account_number")
	if err != nil {
		return 0, err
	}
	return AccountNumberBase + seq - 1, nil
}

// NextCaseNumber cấp số case tiếp theo trong phạm vi một tài khoản, bắt đầu từ 1
func (s *SequenceService) NextCaseNumber(ctx context.Context, accountNumber int64) (int64, error) {
	return s.Next(ctx, CaseNumberScope(accountNumber))
}

// CaseNumberScope trả về scope cấp số case của một tài khoản
func CaseNumberScope(accountNumber int64) string {
	return fmt.Sprintf("case_number:%d", accountNumber)
}

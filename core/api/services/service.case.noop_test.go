package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
)

// Các thao tác sửa/gỡ node nhúng coi "không có node khớp" là thành công
// không làm gì, không phải lỗi. Mock deployment của driver trả về kết
// quả update với n=0 để kiểm chứng hành vi đó mà không cần database.

func newMockCaseService(mt *mtest.T) *CaseService {
	return &CaseService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Account](mt.Coll),
	}
}

// noMatchUpdateResponse giả lập kết quả UpdateOne không khớp document nào
func noMatchUpdateResponse() bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: 0},
		bson.E{Key: "nModified", Value: 0},
	)
}

func TestDeleteCase_NoMatchIsNoop(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("tài khoản không tồn tại vẫn thành công", func(mt *mtest.T) {
		mt.AddMockResponses(noMatchUpdateResponse())

		svc := newMockCaseService(mt)
		err := svc.DeleteCase(context.Background(), 80000123, primitive.NewObjectID())
		assert.NoError(mt, err)
	})
}

func TestCreateInteraction_NoMatchingCase(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("không có case khớp thì trả về nil, không lỗi", func(mt *mtest.T) {
		mt.AddMockResponses(noMatchUpdateResponse())

		svc := newMockCaseService(mt)
		input := &dto.InteractionCreateInput{
			Channel:        models.ChannelPhone,
			InteractedWith: "Jane Doe",
			Contact:        "868-555-0100",
			Details:        "Khách hàng báo mất kết nối",
		}

		interaction, err := svc.CreateInteraction(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), input)
		assert.NoError(mt, err)
		assert.Nil(mt, interaction)
	})
}

func TestCreateActionRequest_NoMatchingInteraction(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("không có interaction khớp thì trả về nil, không lỗi", func(mt *mtest.T) {
		mt.AddMockResponses(noMatchUpdateResponse())

		svc := newMockCaseService(mt)
		input := &dto.ActionRequestCreateInput{
			Due:         1700000000000,
			AssignedTo:  models.DeptDispatch,
			RequestType: models.RequestCallback,
			Details:     "Gọi lại khách hàng",
		}

		ar, err := svc.CreateActionRequest(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), input)
		assert.NoError(mt, err)
		assert.Nil(mt, ar)
	})
}

func TestChangeActionRequestStatus_NoMatchingRequest(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("không có action request khớp thì trả về nil, không lỗi", func(mt *mtest.T) {
		mt.AddMockResponses(noMatchUpdateResponse())

		svc := newMockCaseService(mt)
		ar, err := svc.ChangeActionRequestStatus(context.Background(), primitive.NewObjectID(), models.StatusResolving)
		assert.NoError(mt, err)
		assert.Nil(mt, ar)
	})
}

func TestClaimActionRequest_NoMatchingRequest(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("không có action request khớp thì trả về nil, không lỗi", func(mt *mtest.T) {
		mt.AddMockResponses(noMatchUpdateResponse())

		svc := newMockCaseService(mt)
		ar, err := svc.ClaimActionRequest(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		assert.NoError(mt, err)
		assert.Nil(mt, ar)
	})
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
)

func TestFilterAccountByDescendantID(t *testing.T) {
	caseID := primitive.NewObjectID()
	interactionID := primitive.NewObjectID()
	arID := primitive.NewObjectID()

	// Filter định vị theo id của node con, không kèm số tài khoản
	assert.Equal(t, bson.M{"cases._id": caseID}, FilterAccountByCaseID(caseID))
	assert.Equal(t, bson.M{"cases.interactions._id": interactionID}, FilterAccountByInteractionID(interactionID))
	assert.Equal(t, bson.M{"cases.interactions.action_requests._id": arID}, FilterAccountByActionRequestID(arID))
}

func TestPushCaseUpdate(t *testing.T) {
	newCase := models.Case{
		ID:     primitive.NewObjectID(),
		Title:  "Mất kết nối internet",
		Status: models.StatusOpen,
	}

	update := PushCaseUpdate(newCase)

	push, ok := update["$push"].(bson.M)
	assert.True(t, ok, "lệnh phải là $push")
	assert.Equal(t, newCase, push["cases"])
}

func TestPullCaseUpdate(t *testing.T) {
	caseID := primitive.NewObjectID()

	update := PullCaseUpdate(caseID)

	pull, ok := update["$pull"].(bson.M)
	assert.True(t, ok, "lệnh phải là $pull")
	assert.Equal(t, bson.M{"_id": caseID}, pull["cases"])
}

func TestPushInteractionUpdate(t *testing.T) {
	caseID := primitive.NewObjectID()
	interaction := models.Interaction{
		ID:      primitive.NewObjectID(),
		Channel: models.ChannelPhone,
	}
	now := int64(1700000000000)

	update, opts := PushInteractionUpdate(caseID, interaction, now)

	push := update["$push"].(bson.M)
	assert.Equal(t, interaction, push["cases.$[c].interactions"])

	set := update["$set"].(bson.M)
	assert.Equal(t, now, set["cases.$[c].last_updated"])

	// arrayFilters định vị case theo id
	assert.NotNil(t, opts.ArrayFilters)
	assert.Equal(t, []interface{}{bson.M{"c._id": caseID}}, opts.ArrayFilters.Filters)
}

func TestPushActionRequestUpdate(t *testing.T) {
	interactionID := primitive.NewObjectID()
	ar := models.ActionRequest{
		ID:         primitive.NewObjectID(),
		AssignedTo: models.DeptDispatch,
		Status:     models.StatusOpen,
	}
	now := int64(1700000000000)

	update, opts := PushActionRequestUpdate(interactionID, ar, now)

	push := update["$push"].(bson.M)
	assert.Equal(t, ar, push["cases.$[c].interactions.$[i].action_requests"])

	// Cả hai tầng arrayFilters đều định vị bằng id của interaction
	assert.Equal(t, []interface{}{
		bson.M{"c.interactions._id": interactionID},
		bson.M{"i._id": interactionID},
	}, opts.ArrayFilters.Filters)
}

func TestSetActionRequestFieldUpdate(t *testing.T) {
	arID := primitive.NewObjectID()

	update, opts := SetActionRequestFieldUpdate(arID, "status", models.StatusResolving)

	// Lệnh chỉ được ghi đúng một trường của node khớp, mọi trường khác
	// của account (kể cả last_updated của case) phải giữ nguyên
	assert.Len(t, update, 1)
	set := update["$set"].(bson.M)
	assert.Len(t, set, 1)
	assert.Equal(t, models.StatusResolving, set["cases.$[c].interactions.$[i].action_requests.$[a].status"])

	// Ba tầng arrayFilters đều định vị bằng id của action request
	assert.Equal(t, []interface{}{
		bson.M{"c.interactions.action_requests._id": arID},
		bson.M{"i.action_requests._id": arID},
		bson.M{"a._id": arID},
	}, opts.ArrayFilters.Filters)
}

func TestSetActionRequestFieldUpdate_ClaimedBy(t *testing.T) {
	arID := primitive.NewObjectID()
	claimedBy := primitive.NewObjectID()

	update, _ := SetActionRequestFieldUpdate(arID, "claimed_by", claimedBy)

	set := update["$set"].(bson.M)
	assert.Len(t, set, 1)
	assert.Equal(t, claimedBy, set["cases.$[c].interactions.$[i].action_requests.$[a].claimed_by"])
}

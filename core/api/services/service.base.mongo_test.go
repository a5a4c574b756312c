package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_PlainMapWrapsInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"name": "Gói Internet 100Mbps",
		"lob":  "internet",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Gói Internet 100Mbps", update.Set["name"])
	assert.Equal(t, "internet", update.Set["lob"])
	assert.Nil(t, update.Push)
	assert.Nil(t, update.Unset)
}

func TestToUpdateData_KeepsMongoOperators(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$set":   bson.M{"status": "resolving"},
		"$unset": bson.M{"claimed_by": ""},
	})

	assert.NoError(t, err)
	assert.Equal(t, "resolving", update.Set["status"])
	assert.Contains(t, update.Unset, "claimed_by")
}

func TestToUpdateData_OperatorWithoutSet(t *testing.T) {
	// Update chỉ có $push vẫn phải giữ nguyên operator, không được wrap trong $set
	update, err := ToUpdateData(bson.M{
		"$push": bson.M{"cases": bson.M{"title": "Case mới"}},
	})

	assert.NoError(t, err)
	assert.Nil(t, update.Set)
	assert.Contains(t, update.Push, "cases")
}

func TestToUpdateData_AddToSetPreserved(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$addToSet": bson.M{"contacts": "abc"},
	})

	assert.NoError(t, err)
	assert.Contains(t, update.AddToSet, "contacts")
}

func TestToUpdateData_PassthroughUpdateData(t *testing.T) {
	original := &UpdateData{
		Set: map[string]interface{}{"status": "closed"},
	}

	update, err := ToUpdateData(original)

	assert.NoError(t, err)
	assert.Same(t, original, update)
}

func TestHasMongoOperator(t *testing.T) {
	assert.True(t, hasMongoOperator(map[string]interface{}{"$inc": 1}))
	assert.False(t, hasMongoOperator(map[string]interface{}{"price": 1}))
	assert.False(t, hasMongoOperator(map[string]interface{}{}))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
)

// stageName trả về tên operator của một stage trong pipeline
func stageName(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

// stageNames trả về danh sách tên operator theo thứ tự của pipeline
func stageNames(pipeline mongo.Pipeline) []string {
	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		names = append(names, stageName(stage))
	}
	return names
}

// findStage trả về stage đầu tiên có tên cho trước, nil nếu không có
func findStage(pipeline mongo.Pipeline, name string) bson.D {
	for _, stage := range pipeline {
		if stageName(stage) == name {
			return stage
		}
	}
	return nil
}

func TestEscalationQueuePipeline_StageOrder(t *testing.T) {
	pipeline := EscalationQueuePipeline(models.DeptDispatch, "users")

	// Match thô -> trải phẳng ba tầng -> match lại -> project -> lookup
	assert.Equal(t, []string{
		"$match",
		"$unwind", "$unwind", "$unwind",
		"$match",
		"$project", "$lookup", "$project", "$sort",
	}, stageNames(pipeline))
}

func TestEscalationQueuePipeline_PostUnwindRematch(t *testing.T) {
	pipeline := EscalationQueuePipeline(models.DeptDispatch, "users")

	// Match sau unwind phải lọc lại: unwind thải ra cả các action request
	// không liên quan của account đã khớp match thô
	rematch := pipeline[4]
	assert.Equal(t, "$match", stageName(rematch))

	// Và chỉ lặp lại đúng điều kiện bộ phận: yêu cầu đã có người nhận
	// hay đã đóng vẫn phải nằm trong hàng đợi
	cond := rematch[0].Value.(bson.M)
	assert.Equal(t, bson.M{
		"cases.interactions.action_requests.assigned_to": models.DeptDispatch,
	}, cond)
}

func TestEscalationQueuePipeline_UnwindOrder(t *testing.T) {
	pipeline := EscalationQueuePipeline(models.DeptCare, "users")

	// Unwind phải đi từ ngoài vào trong theo cây case
	assert.Equal(t, "$cases", pipeline[1][0].Value)
	assert.Equal(t, "$cases.interactions", pipeline[2][0].Value)
	assert.Equal(t, "$cases.interactions.action_requests", pipeline[3][0].Value)
}

func TestEscalationQueuePipeline_LookupUsers(t *testing.T) {
	pipeline := EscalationQueuePipeline(models.DeptCare, "users")

	lookup := findStage(pipeline, "$lookup")
	assert.NotNil(t, lookup)

	spec := lookup[0].Value.(bson.M)
	assert.Equal(t, "users", spec["from"])
	assert.Equal(t, "action_request.requested_by", spec["localField"])
	assert.Equal(t, "_id", spec["foreignField"])
	assert.Equal(t, "requested_by", spec["as"])
}

func TestClaimedQueuePipeline_FiltersByUser(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := ClaimedQueuePipeline(userID, "users")

	first := pipeline[0]
	assert.Equal(t, "$match", stageName(first))
	assert.Equal(t, userID, first[0].Value.(bson.M)["cases.interactions.action_requests.claimed_by"])

	// Match lại chỉ lặp đúng điều kiện người nhận, không lọc thêm trạng thái
	rematch := pipeline[4]
	assert.Equal(t, bson.M{
		"cases.interactions.action_requests.claimed_by": userID,
	}, rematch[0].Value.(bson.M))
}

func TestManagerDashboardPipeline_FacetKeys(t *testing.T) {
	pipeline := ManagerDashboardPipeline(models.DeptCare, "users")

	// Facet phải là stage cuối cùng và các nhánh đếm chạy song song
	facet := pipeline[len(pipeline)-1]
	assert.Equal(t, "$facet", stageName(facet))

	facets := facet[0].Value.(bson.M)
	for _, key := range []string{"by_channel", "by_date", "by_request_type", "by_status"} {
		assert.Contains(t, facets, key)
	}
	assert.NotContains(t, facets, "by_agent", "nhánh theo nhân viên chỉ có ở dashboard supervisor")

	// Nhánh theo action request phải trải tiếp mảng trước khi group
	byStatus := facets["by_status"].(mongo.Pipeline)
	assert.Equal(t, "$unwind", stageName(byStatus[0]))
	assert.Equal(t, "$action_requests", byStatus[0][0].Value)

	group := byStatus[1][0].Value.(bson.M)
	assert.Equal(t, "$action_requests.status", group["_id"])
}

func TestManagerDashboardPipeline_FiltersByRecorderDepartment(t *testing.T) {
	pipeline := ManagerDashboardPipeline(models.DeptHelpdesk, "users")

	// Lookup người ghi nhận trước, match theo bộ phận của họ sau
	lookup := findStage(pipeline, "$lookup")
	assert.NotNil(t, lookup)

	spec := lookup[0].Value.(bson.M)
	assert.Equal(t, "users", spec["from"])
	assert.Equal(t, "cases.interactions.recorded_by", spec["localField"])
	assert.Equal(t, "recorder", spec["as"])

	match := findStage(pipeline, "$match")
	assert.NotNil(t, match)
	assert.Equal(t, models.DeptHelpdesk, match[0].Value.(bson.M)["recorder.department"])
}

func TestManagerDashboardPipeline_DateBucketsByCalendarDay(t *testing.T) {
	pipeline := ManagerDashboardPipeline(models.DeptCare, "users")

	facets := pipeline[len(pipeline)-1][0].Value.(bson.M)
	byDate := facets["by_date"].(mongo.Pipeline)

	group := byDate[0][0].Value.(bson.M)
	dateKey := group["_id"].(bson.M)["$dateToString"].(bson.M)
	assert.Equal(t, "%Y-%m-%d", dateKey["format"])
}

func TestSupervisorDashboardPipeline_AddsAgentFacet(t *testing.T) {
	pipeline := SupervisorDashboardPipeline(models.DeptDispatch, "users")

	facet := pipeline[len(pipeline)-1]
	assert.Equal(t, "$facet", stageName(facet))

	facets := facet[0].Value.(bson.M)
	for _, key := range []string{"by_channel", "by_date", "by_request_type", "by_status", "by_agent"} {
		assert.Contains(t, facets, key)
	}

	byAgent := facets["by_agent"].(mongo.Pipeline)
	group := byAgent[0][0].Value.(bson.M)
	assert.Equal(t, "$recorded_by", group["_id"])
}

func TestProjectItemStages_HidesPassword(t *testing.T) {
	pipeline := projectItemStages("users")

	// Project sau lookup phải loại password của người yêu cầu
	var found bool
	for _, stage := range pipeline {
		if stageName(stage) != "$project" {
			continue
		}
		if spec, ok := stage[0].Value.(bson.M); ok {
			if _, has := spec["requested_by.password"]; has {
				found = true
			}
		}
	}
	assert.True(t, found, "pipeline phải loại trường password khỏi kết quả lookup")
}

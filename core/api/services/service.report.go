package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
)

// EscalationItem là một action request đã được trải phẳng khỏi cây case,
// kèm ngữ cảnh account/case và thông tin người yêu cầu
type EscalationItem struct {
	AccountNumber int64                `json:"account_number" bson:"account_number"`
	CaseID        primitive.ObjectID   `json:"case_id" bson:"case_id"`
	CaseNumber    int64                `json:"case_number" bson:"case_number"`
	CaseTitle     string               `json:"case_title" bson:"case_title"`
	InteractionID primitive.ObjectID   `json:"interaction_id" bson:"interaction_id"`
	ActionRequest models.ActionRequest `json:"action_request" bson:"action_request"`
	RequestedBy   []models.User        `json:"requested_by" bson:"requested_by"`
}

// FacetCount một dòng kết quả đếm theo nhóm trong $facet
type FacetCount struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// AgentCount số interaction được ghi nhận bởi một nhân viên
type AgentCount struct {
	AgentID primitive.ObjectID `json:"agent_id" bson:"_id"`
	Agent   string             `json:"agent" bson:"agent"`
	Count   int64              `json:"count" bson:"count"`
}

// DashboardResult kết quả $facet của dashboard manager: các nhánh đếm
// độc lập chạy song song trên cùng tập interaction đã lọc theo bộ phận
type DashboardResult struct {
	ByChannel     []FacetCount `json:"by_channel" bson:"by_channel"`
	ByDate        []FacetCount `json:"by_date" bson:"by_date"`
	ByRequestType []FacetCount `json:"by_request_type" bson:"by_request_type"`
	ByStatus      []FacetCount `json:"by_status" bson:"by_status"`
}

// TeamDashboardResult kết quả dashboard supervisor: như manager cộng
// thêm nhánh đếm theo từng nhân viên ghi nhận
type TeamDashboardResult struct {
	DashboardResult `bson:",inline"`
	ByAgent         []AgentCount `json:"by_agent" bson:"by_agent"`
}

// ====================================
// CÁC HÀM DỰNG PIPELINE
// ====================================
// Các stage dùng bson.D để giữ thứ tự. Mẫu chung của mọi pipeline:
// match thô trên account -> unwind ba tầng -> match lại trên document đã
// trải phẳng (unwind thải ra cả các node không liên quan của account
// khớp thô) -> project về EscalationItem -> lookup người yêu cầu.

// flattenStages trải cây case thành một document mỗi action request
func flattenStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$cases"}},
		bson.D{{Key: "$unwind", Value: "$cases.interactions"}},
		bson.D{{Key: "$unwind", Value: "$cases.interactions.action_requests"}},
	}
}

// projectItemStages chuẩn hóa document đã trải phẳng về EscalationItem
// và gắn thông tin người yêu cầu từ collection users
func projectItemStages(usersCollection string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.M{
			"_id":            0,
			"account_number": "$account_number",
			"case_id":        "$cases._id",
			"case_number":    "$cases.case_number",
			"case_title":     "$cases.title",
			"interaction_id": "$cases.interactions._id",
			"action_request": "$cases.interactions.action_requests",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "action_request.requested_by",
			"foreignField": "_id",
			"as":           "requested_by",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"requested_by.password": 0,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "action_request.due", Value: 1}}}},
	}
}

// EscalationQueuePipeline dựng pipeline lấy mọi action request gán cho
// một bộ phận, kể cả đã có người nhận hoặc đã đóng.
// Match sau unwind lặp lại đúng điều kiện của match thô, không thêm
// điều kiện nào khác: thêm là bỏ sót kết quả so với quét toàn bộ.
func EscalationQueuePipeline(department string, usersCollection string) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"cases.interactions.action_requests.assigned_to": department,
		}}},
	}
	pipeline = append(pipeline, flattenStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
		"cases.interactions.action_requests.assigned_to": department,
	}}})
	return append(pipeline, projectItemStages(usersCollection)...)
}

// ClaimedQueuePipeline dựng pipeline lấy mọi action request một người
// dùng đã nhận xử lý, lặp lại cùng một điều kiện ở cả hai tầng match
func ClaimedQueuePipeline(userID primitive.ObjectID, usersCollection string) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"cases.interactions.action_requests.claimed_by": userID,
		}}},
	}
	pipeline = append(pipeline, flattenStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
		"cases.interactions.action_requests.claimed_by": userID,
	}}})
	return append(pipeline, projectItemStages(usersCollection)...)
}

// interactionRowStages trải cây case thành một document mỗi interaction,
// lookup người ghi nhận (sub-document nhúng không populate tham chiếu
// được nên phải join tường minh) và lọc theo bộ phận của người đó
func interactionRowStages(department string, usersCollection string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$cases"}},
		bson.D{{Key: "$unwind", Value: "$cases.interactions"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "cases.interactions.recorded_by",
			"foreignField": "_id",
			"as":           "recorder",
		}}},
		bson.D{{Key: "$unwind", Value: "$recorder"}},
		bson.D{{Key: "$match", Value: bson.M{"recorder.department": department}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":             0,
			"channel":         "$cases.interactions.channel",
			"date":            "$cases.interactions.date",
			"recorded_by":     "$cases.interactions.recorded_by",
			"agent":           bson.M{"$concat": bson.A{"$recorder.first_name", " ", "$recorder.last_name"}},
			"action_requests": "$cases.interactions.action_requests",
		}}},
	}
}

// countBy dựng nhánh facet đếm số interaction theo một trường
func countBy(field string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
}

// countByDay dựng nhánh facet đếm interaction theo ngày lịch
func countByDay() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$date"},
			}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// requestCountBy dựng nhánh facet trải tiếp action request rồi đếm theo
// một trường của action request
func requestCountBy(field string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$action_requests"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
}

// dashboardFacets các nhánh đếm chung của cả hai dashboard
func dashboardFacets() bson.M {
	return bson.M{
		"by_channel":      countBy("$channel"),
		"by_date":         countByDay(),
		"by_request_type": requestCountBy("$action_requests.request_type"),
		"by_status":       requestCountBy("$action_requests.status"),
	}
}

// ManagerDashboardPipeline dựng pipeline dashboard của manager: một
// $facet duy nhất chạy song song các nhánh đếm trên tập interaction
// của bộ phận
func ManagerDashboardPipeline(department string, usersCollection string) mongo.Pipeline {
	pipeline := interactionRowStages(department, usersCollection)
	return append(pipeline, bson.D{{Key: "$facet", Value: dashboardFacets()}})
}

// SupervisorDashboardPipeline dựng pipeline dashboard của supervisor:
// các nhánh của manager cộng thêm nhánh đếm theo nhân viên ghi nhận
func SupervisorDashboardPipeline(department string, usersCollection string) mongo.Pipeline {
	facets := dashboardFacets()
	facets["by_agent"] = mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$recorded_by",
			"agent": bson.M{"$first": "$agent"},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	pipeline := interactionRowStages(department, usersCollection)
	return append(pipeline, bson.D{{Key: "$facet", Value: facets}})
}

// ====================================
// REPORT SERVICE
// ====================================

// ReportService chạy các pipeline báo cáo trên collection accounts
type ReportService struct {
	*BaseServiceMongoImpl[models.Account]
	userService *UserService
}

// NewReportService tạo mới một ReportService
func NewReportService() *ReportService {
	return &ReportService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Account](mustCollection(global.MongoDB_ColNames.Accounts)),
		userService:          NewUserService(),
	}
}

// runItems chạy pipeline trả về danh sách EscalationItem
func (s *ReportService) runItems(ctx context.Context, pipeline mongo.Pipeline) ([]EscalationItem, error) {
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []EscalationItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if items == nil {
		items = []EscalationItem{}
	}
	return items, nil
}

// EscalationQueue lấy toàn bộ action request gán cho một bộ phận
func (s *ReportService) EscalationQueue(ctx context.Context, department string) ([]EscalationItem, error) {
	if !models.IsValidEnum(department, models.Departments) {
		return nil, common.ErrInvalidInput
	}
	return s.runItems(ctx, EscalationQueuePipeline(department, global.MongoDB_ColNames.Users))
}

// ClaimedQueue lấy các action request một người dùng đã nhận xử lý
func (s *ReportService) ClaimedQueue(ctx context.Context, userID primitive.ObjectID) ([]EscalationItem, error) {
	return s.runItems(ctx, ClaimedQueuePipeline(userID, global.MongoDB_ColNames.Users))
}

// ManagerDashboard chạy dashboard trên bộ phận của chính người gọi
func (s *ReportService) ManagerDashboard(ctx context.Context, managerID primitive.ObjectID) (*DashboardResult, error) {
	manager, err := s.userService.FindOneById(ctx, managerID)
	if err != nil {
		return nil, err
	}

	pipeline := ManagerDashboardPipeline(manager.Department, global.MongoDB_ColNames.Users)
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []DashboardResult
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return &DashboardResult{}, nil
	}
	return &results[0], nil
}

// SupervisorDashboard như ManagerDashboard nhưng thêm nhánh đếm theo
// từng nhân viên trong bộ phận
func (s *ReportService) SupervisorDashboard(ctx context.Context, supervisorID primitive.ObjectID) (*TeamDashboardResult, error) {
	supervisor, err := s.userService.FindOneById(ctx, supervisorID)
	if err != nil {
		return nil, err
	}

	pipeline := SupervisorDashboardPipeline(supervisor.Department, global.MongoDB_ColNames.Users)
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []TeamDashboardResult
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return &TeamDashboardResult{}, nil
	}
	return &results[0], nil
}

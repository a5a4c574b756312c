// Package router đăng ký toàn bộ route của API.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bnlarose/touchpoint-api/core/api/handler"
	"github.com/bnlarose/touchpoint-api/core/api/middleware"
	"github.com/bnlarose/touchpoint-api/core/api/services"
)

// LƯU Ý VỀ MIDDLEWARE TRONG FIBER V3:
// Không đăng ký middleware trực tiếp trong route kiểu
// router.Get(path, middleware, handler) vì middleware sẽ không được gọi.
// Phải đăng ký qua Group().Use() như trong registerRouteWithMiddleware.

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// registerRouteWithMiddleware đăng ký route với middleware qua Group().Use()
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, h fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, h)
	case "POST":
		routeGroup.Post(path, h)
	case "PUT":
		routeGroup.Put(path, h)
	case "PATCH":
		routeGroup.Patch(path, h)
	case "DELETE":
		routeGroup.Delete(path, h)
	}
}

// SetupRoutes đăng ký toàn bộ route của ứng dụng.
// Chỉ nhóm auth (tạo user, đăng nhập) và health check là public,
// mọi route còn lại đều yêu cầu token hợp lệ.
func (r *Router) SetupRoutes() {
	prefix := NewRoutePrefix()
	v1 := r.app.Group(prefix.V1)

	// Services dùng chung
	userService := services.NewUserService()
	contactService := services.NewContactService()
	packageService := services.NewPackageService()
	categoryService := services.NewCaseCategoryService()
	accountService := services.NewAccountService()
	caseService := services.NewCaseService()
	reportService := services.NewReportService()

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	packageHandler := handler.NewPackageHandler(packageService)
	categoryHandler := handler.NewCaseCategoryHandler(categoryService)
	accountHandler := handler.NewAccountHandler(accountService)
	caseHandler := handler.NewCaseHandler(caseService)
	reportHandler := handler.NewReportHandler(reportService)
	subscriptionHandler := handler.NewSubscriptionHandler(userService)
	systemHandler := handler.NewSystemHandler()

	auth := middleware.NewAuthManager(userService).RequireAuth()
	authed := []fiber.Handler{auth}
	public := []fiber.Handler{}

	// System routes (public)
	registerRouteWithMiddleware(v1, "/system", "GET", "/health", public, systemHandler.Health)

	// Auth routes (public)
	registerRouteWithMiddleware(v1, "/auth", "POST", "/users", public, userHandler.Create)
	registerRouteWithMiddleware(v1, "/auth", "POST", "/users/bulk", public, userHandler.BulkCreate)
	registerRouteWithMiddleware(v1, "/auth", "POST", "/login", public, userHandler.Login)

	// User routes
	registerRouteWithMiddleware(v1, "/users", "GET", "/me", authed, userHandler.Me)
	registerRouteWithMiddleware(v1, "/users", "GET", "/department/:department", authed, userHandler.ListByDepartment)
	registerRouteWithMiddleware(v1, "/users", "GET", "/:id", authed, userHandler.GetById)

	// Contact routes
	registerRouteWithMiddleware(v1, "/contacts", "POST", "/", authed, contactHandler.Create)
	registerRouteWithMiddleware(v1, "/contacts", "POST", "/bulk", authed, contactHandler.BulkCreate)
	registerRouteWithMiddleware(v1, "/contacts", "GET", "/search", authed, contactHandler.Search)
	registerRouteWithMiddleware(v1, "/contacts", "GET", "/:id", authed, contactHandler.GetById)

	// Package routes
	registerRouteWithMiddleware(v1, "/packages", "POST", "/", authed, packageHandler.Create)
	registerRouteWithMiddleware(v1, "/packages", "POST", "/bulk", authed, packageHandler.BulkCreate)
	registerRouteWithMiddleware(v1, "/packages", "GET", "/", authed, packageHandler.List)
	registerRouteWithMiddleware(v1, "/packages", "GET", "/:id", authed, packageHandler.GetById)

	// Case category routes
	registerRouteWithMiddleware(v1, "/case-categories", "POST", "/", authed, categoryHandler.Create)
	registerRouteWithMiddleware(v1, "/case-categories", "POST", "/bulk", authed, categoryHandler.BulkCreate)
	registerRouteWithMiddleware(v1, "/case-categories", "GET", "/", authed, categoryHandler.List)

	// Account routes
	registerRouteWithMiddleware(v1, "/accounts", "POST", "/", authed, accountHandler.Create)
	registerRouteWithMiddleware(v1, "/accounts", "POST", "/bulk", authed, accountHandler.BulkCreate)
	registerRouteWithMiddleware(v1, "/accounts", "GET", "/contact/:contactId", authed, accountHandler.GetByContact)
	registerRouteWithMiddleware(v1, "/accounts", "GET", "/id/:id", authed, accountHandler.GetById)
	registerRouteWithMiddleware(v1, "/accounts", "GET", "/:number", authed, accountHandler.GetByNumber)
	registerRouteWithMiddleware(v1, "/accounts", "POST", "/:number/contacts/:contactId", authed, accountHandler.AttachContact)
	registerRouteWithMiddleware(v1, "/accounts", "POST", "/:number/services/:packageId", authed, accountHandler.AttachService)

	// Case tree routes
	registerRouteWithMiddleware(v1, "/accounts", "POST", "/:number/cases", authed, caseHandler.CreateCase)
	registerRouteWithMiddleware(v1, "/accounts", "DELETE", "/:number/cases/:id", authed, caseHandler.DeleteCase)
	registerRouteWithMiddleware(v1, "/cases", "GET", "/:id", authed, caseHandler.GetCase)
	registerRouteWithMiddleware(v1, "/cases", "POST", "/:id/interactions", authed, caseHandler.CreateInteraction)
	registerRouteWithMiddleware(v1, "/interactions", "POST", "/:id/action-requests", authed, caseHandler.CreateActionRequest)
	registerRouteWithMiddleware(v1, "/action-requests", "PATCH", "/:id/status", authed, caseHandler.ChangeActionRequestStatus)
	registerRouteWithMiddleware(v1, "/action-requests", "PATCH", "/:id/claim", authed, caseHandler.ClaimActionRequest)

	// Report routes
	registerRouteWithMiddleware(v1, "/escalations", "GET", "/claimed/me", authed, reportHandler.MyQueue)
	registerRouteWithMiddleware(v1, "/escalations", "GET", "/:department", authed, reportHandler.EscalationQueue)
	registerRouteWithMiddleware(v1, "/dashboard", "GET", "/manager", authed, reportHandler.ManagerDashboard)
	registerRouteWithMiddleware(v1, "/dashboard", "GET", "/supervisor", authed, reportHandler.SupervisorDashboard)

	// Subscription routes: token đi qua query param nên không dùng auth middleware
	registerRouteWithMiddleware(v1, "/subscriptions", "GET", "/escalations", public, subscriptionHandler.Escalations)
}

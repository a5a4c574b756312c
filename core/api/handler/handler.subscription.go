package handler

import (
	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/api/services"
	"github.com/bnlarose/touchpoint-api/core/common"
	"github.com/bnlarose/touchpoint-api/core/global"
	"github.com/bnlarose/touchpoint-api/core/logger"
)

// SubscriptionHandler xử lý kênh websocket nhận thông báo escalation
type SubscriptionHandler struct {
	userService *services.UserService
	upgrader    websocket.FastHTTPUpgrader
}

// NewSubscriptionHandler tạo mới một SubscriptionHandler
func NewSubscriptionHandler(userService *services.UserService) *SubscriptionHandler {
	return &SubscriptionHandler{
		userService: userService,
		upgrader: websocket.FastHTTPUpgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser gửi Origin, client nội bộ thì không; CORS đã chặn ở tầng HTTP
			CheckOrigin: func(ctx *fasthttp.RequestCtx) bool { return true },
		},
	}
}

// Escalations xử lý GET /subscriptions/escalations?token=<jwt>&department=<dept>.
// Websocket không gửi được header Authorization từ browser nên token đi
// qua query param. Department mặc định là bộ phận của người dùng,
// department=all nhận mọi thông báo.
func (h *SubscriptionHandler) Escalations(c fiber.Ctx) error {
	userID, err := h.userService.Tokens().Verify(c.Query("token", ""))
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	user, err := h.userService.FindOneById(c.Context(), userID)
	if err != nil {
		return HandleResponse(c, nil, common.ErrNotAuthenticated)
	}

	department := c.Query("department", user.Department)
	if department == "all" {
		department = ""
	}
	if department != "" && !models.IsValidEnum(department, models.Departments) {
		return HandleResponse(c, nil, common.ErrInvalidInput)
	}

	log := logger.GetAppLogger().WithField("user_id", userID.Hex()).WithField("department", department)

	err = h.upgrader.Upgrade(c.Context(), func(conn *websocket.Conn) {
		defer conn.Close()

		sub := global.EscalationHub.Subscribe(department)
		defer global.EscalationHub.Unsubscribe(sub)

		// Đọc để phát hiện client đóng kết nối, nội dung gửi lên bị bỏ qua
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		log.Info("Client đăng ký kênh escalation")
		for {
			select {
			case event, ok := <-sub.C:
				if !ok {
					return
				}
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
	if err != nil {
		log.WithError(err).Warn("Upgrade websocket thất bại")
		return common.NewError(common.ErrCodeValidationInput, "Yêu cầu không phải websocket hợp lệ", common.StatusBadRequest, nil)
	}

	return nil
}

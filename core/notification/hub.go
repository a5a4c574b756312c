// Package notification cung cấp kênh thông báo in-memory theo mô hình publish/subscribe.
// Kênh chỉ có một topic duy nhất (escalation mới) và giao tin theo kiểu at-most-once:
// subscriber đăng ký sau thời điểm publish sẽ không nhận được event đã phát.
package notification

import (
	"sync"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
	"github.com/bnlarose/touchpoint-api/core/logger"
)

// defaultBufferSize là kích thước buffer mặc định cho mỗi subscriber
const defaultBufferSize = 16

// EscalationEvent là payload phát cho subscriber khi một action request mới được tạo
type EscalationEvent struct {
	Department    string               `json:"department"`    // Bộ phận được gán xử lý
	ActionRequest models.ActionRequest `json:"actionRequest"` // Action request vừa tạo
}

// Subscriber đại diện cho một bên đăng ký nhận event.
// Events chỉ được nhận qua channel C; channel sẽ bị đóng khi Unsubscribe hoặc hub Close.
type Subscriber struct {
	Department string               // Filter theo bộ phận, rỗng = nhận tất cả
	C          chan EscalationEvent // Channel nhận event (buffered)
}

// Hub quản lý danh sách subscriber và fan-out event tới từng subscriber.
// Thread-safety được đảm bảo thông qua sync.RWMutex.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	closed      bool
}

// NewHub tạo một hub mới
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
	}
}

// Subscribe đăng ký nhận event cho một bộ phận.
// Truyền department rỗng để nhận event của tất cả các bộ phận.
func (h *Hub) Subscribe(department string) *Subscriber {
	sub := &Subscriber{
		Department: department,
		C:          make(chan EscalationEvent, defaultBufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(sub.C)
		return sub
	}

	h.subscribers[sub] = struct{}{}
	return sub
}

// Unsubscribe gỡ subscriber khỏi hub và đóng channel của nó
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.subscribers[sub]; !exists {
		return
	}

	delete(h.subscribers, sub)
	close(sub.C)
}

// Publish phát event tới tất cả subscriber khớp bộ phận.
// Gửi non-blocking: nếu buffer của subscriber đầy, event bị bỏ qua cho subscriber đó
// (giao tin at-most-once, subscriber chậm không được phép chặn publisher).
func (h *Hub) Publish(event EscalationEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for sub := range h.subscribers {
		if sub.Department != "" && sub.Department != event.Department {
			continue
		}

		select {
		case sub.C <- event:
		default:
			logger.GetAppLogger().WithField("department", sub.Department).
				Warn("Subscriber buffer đầy, bỏ qua event escalation")
		}
	}
}

// SubscriberCount trả về số subscriber đang đăng ký
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close đóng hub và giải phóng tất cả subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		close(sub.C)
	}
}

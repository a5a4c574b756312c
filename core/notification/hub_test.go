package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
)

func newEvent(department string) EscalationEvent {
	return EscalationEvent{
		Department: department,
		ActionRequest: models.ActionRequest{
			ID:         primitive.NewObjectID(),
			AssignedTo: department,
			Status:     models.StatusOpen,
		},
	}
}

func TestHub_PublishToMatchingDepartment(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	dispatch := hub.Subscribe(models.DeptDispatch)
	care := hub.Subscribe(models.DeptCare)

	event := newEvent(models.DeptDispatch)
	hub.Publish(event)

	// Subscriber cùng bộ phận nhận được event
	received := <-dispatch.C
	assert.Equal(t, event.ActionRequest.ID, received.ActionRequest.ID)

	// Subscriber khác bộ phận không nhận được gì
	select {
	case ev := <-care.C:
		t.Fatalf("subscriber bộ phận care không được nhận event của dispatch, nhận: %+v", ev)
	default:
	}
}

func TestHub_EmptyDepartmentReceivesAll(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	all := hub.Subscribe("")

	hub.Publish(newEvent(models.DeptDispatch))
	hub.Publish(newEvent(models.DeptCare))

	first := <-all.C
	second := <-all.C
	assert.Equal(t, models.DeptDispatch, first.Department)
	assert.Equal(t, models.DeptCare, second.Department)
}

func TestHub_LateSubscriberMissesEarlierEvents(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	// Publish trước khi có subscriber: event biến mất (at-most-once)
	hub.Publish(newEvent(models.DeptCare))

	late := hub.Subscribe(models.DeptCare)
	select {
	case ev := <-late.C:
		t.Fatalf("subscriber đăng ký muộn không được nhận event cũ, nhận: %+v", ev)
	default:
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub := hub.Subscribe(models.DeptRetail)
	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-sub.C
	assert.False(t, open, "channel phải bị đóng sau khi unsubscribe")

	// Unsubscribe lần hai không panic
	hub.Unsubscribe(sub)
}

func TestHub_PublishDoesNotBlockOnFullBuffer(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub := hub.Subscribe(models.DeptSales)

	// Đổ đầy buffer rồi publish thêm: publisher không được treo
	for i := 0; i < defaultBufferSize+5; i++ {
		hub.Publish(newEvent(models.DeptSales))
	}

	// Buffer chỉ giữ đúng defaultBufferSize event
	count := 0
	for {
		select {
		case <-sub.C:
			count++
			continue
		default:
		}
		break
	}
	assert.Equal(t, defaultBufferSize, count)
}

func TestHub_CloseReleasesSubscribers(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(models.DeptCare)
	hub.Close()

	_, open := <-sub.C
	assert.False(t, open, "channel phải bị đóng khi hub close")
	assert.Equal(t, 0, hub.SubscriberCount())

	// Publish sau khi close là no-op
	hub.Publish(newEvent(models.DeptCare))

	// Subscribe sau khi close trả về channel đã đóng
	late := hub.Subscribe(models.DeptCare)
	_, open = <-late.C
	assert.False(t, open)
}

package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("key", "value")
	assert.NoError(t, err)
	assert.True(t, isNew)

	value, exists := r.Get("key")
	assert.True(t, exists)
	assert.Equal(t, "value", value)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterOverwrite(t *testing.T) {
	r := NewRegistry[int]()

	isNew, _ := r.Register("count", 1)
	assert.True(t, isNew)

	isNew, _ = r.Register("count", 2)
	assert.False(t, isNew, "ghi đè item cũ phải trả về isNew=false")

	value, _ := r.Get("count")
	assert.Equal(t, 2, value)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "value")
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	value, err := r.GetOrCreate("key", creator)
	assert.NoError(t, err)
	assert.Equal(t, "created", value)

	// Lần hai trả về item có sẵn, không gọi lại creator
	value, err = r.GetOrCreate("key", creator)
	assert.NoError(t, err)
	assert.Equal(t, "created", value)
	assert.Equal(t, 1, calls)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("key", "value")

	cleaned := false
	deleted, err := r.Clear("key", func(s string) error {
		cleaned = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)

	_, exists := r.Get("key")
	assert.False(t, exists)

	// Clear item không tồn tại trả về deleted=false, không lỗi
	deleted, err = r.Clear("key", nil)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	_, exists := r.Get("a")
	assert.False(t, exists)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("key-%d", n), n)
			r.Get(fmt.Sprintf("key-%d", n))
		}(i)
	}
	wg.Wait()

	count, _ := r.ClearAll(nil)
	assert.Equal(t, 50, count)
}

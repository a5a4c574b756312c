package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEnum(t *testing.T) {
	assert.True(t, IsValidEnum(DeptDispatch, Departments))
	assert.True(t, IsValidEnum(StatusEscalated, Statuses))
	assert.False(t, IsValidEnum("finance", Departments))
	assert.False(t, IsValidEnum("", Statuses))
}

func TestEnumWireValues(t *testing.T) {
	// Giá trị lưu trong database là chuỗi thường, có dấu gạch nối
	assert.Equal(t, "port-of-spain", SitePortOfSpain)
	assert.Equal(t, "walkin", ChannelWalkin)
	assert.Equal(t, "investigation", RequestInvestigation)

	assert.Len(t, Sites, 8)
	assert.Len(t, Departments, 7)
	assert.Len(t, Positions, 7)
	assert.Len(t, Lobs, 5)
	assert.Len(t, PhoneTypes, 3)
	assert.Len(t, Channels, 5)
	assert.Len(t, RequestTypes, 4)
	assert.Len(t, Statuses, 4)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnlarose/touchpoint-api/core/global"
)

func TestInitColNames(t *testing.T) {
	initColNames()

	assert.Equal(t, "users", global.MongoDB_ColNames.Users)
	assert.Equal(t, "contacts", global.MongoDB_ColNames.Contacts)
	assert.Equal(t, "packages", global.MongoDB_ColNames.Packages)
	assert.Equal(t, "accounts", global.MongoDB_ColNames.Accounts)
	// Tên collection danh mục viết liền, không có dấu gạch dưới
	assert.Equal(t, "casecategories", global.MongoDB_ColNames.CaseCategories)
	assert.Equal(t, "counters", global.MongoDB_ColNames.Counters)
}

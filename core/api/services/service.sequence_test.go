package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseNumberScope(t *testing.T) {
	assert.Equal(t, "case_number:80000000", CaseNumberScope(80000000))
	assert.Equal(t, "case_number:80000042", CaseNumberScope(80000042))
}

func TestAccountNumberBase(t *testing.T) {
	// Seq đầu tiên là 1, tài khoản đầu tiên phải nhận đúng mốc cơ sở
	assert.Equal(t, int64(80000000), AccountNumberBase+1-1)
	assert.Equal(t, int64(80000009), AccountNumberBase+10-1)
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	assert.Equal(t, 1, parseOrder("single"))
	assert.Equal(t, 1, parseOrder("single,order:1"))
	assert.Equal(t, -1, parseOrder("single,order:-1"))
}

func TestParseIndexTag_Simple(t *testing.T) {
	configs := parseIndexTag("unique")

	assert.Len(t, configs, 1)
	_, hasUnique := configs[0]["unique"]
	assert.True(t, hasUnique)
}

func TestParseIndexTag_MultipleIndexes(t *testing.T) {
	configs := parseIndexTag("text;compound:account_case_unique")

	assert.Len(t, configs, 2)

	_, hasText := configs[0]["text"]
	assert.True(t, hasText)
	assert.Equal(t, "account_case_unique", configs[1]["compound"])
}

func TestParseIndexTag_OptionsWithComma(t *testing.T) {
	configs := parseIndexTag("unique,sparse")

	assert.Len(t, configs, 1)
	_, hasUnique := configs[0]["unique"]
	_, hasSparse := configs[0]["sparse"]
	assert.True(t, hasUnique)
	assert.True(t, hasSparse)
}

func TestParseIndexTag_TTL(t *testing.T) {
	configs := parseIndexTag("ttl:3600")

	assert.Len(t, configs, 1)
	assert.Equal(t, "3600", configs[0]["ttl"])
}

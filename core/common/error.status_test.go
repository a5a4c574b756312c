package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_Is(t *testing.T) {
	// Sentinel errors nhận diện được qua errors.Is
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrDuplicate))

	// Wrapped error vẫn nhận diện được sentinel gốc
	wrapped := fmt.Errorf("tìm account: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestError_CarriesStatusCode(t *testing.T) {
	var customErr *Error

	assert.True(t, errors.As(ErrNotFound, &customErr))
	assert.Equal(t, StatusNotFound, customErr.StatusCode)

	assert.True(t, errors.As(ErrInvalidCredentials, &customErr))
	assert.Equal(t, StatusUnauthorized, customErr.StatusCode)

	assert.True(t, errors.As(ErrDuplicate, &customErr))
	assert.Equal(t, StatusConflict, customErr.StatusCode)

	assert.True(t, errors.As(ErrInvalidInput, &customErr))
	assert.Equal(t, StatusBadRequest, customErr.StatusCode)
}

func TestConvertMongoError_Nil(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
}

func TestConvertMongoError_KeepsNotFound(t *testing.T) {
	// ErrNotFound đi qua không bị convert thành lỗi hệ thống
	err := ConvertMongoError(ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	assert.ErrorIs(t, ConvertMongoError(wrapped), ErrNotFound)
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	err := ConvertMongoError(dupErr)
	assert.ErrorIs(t, err, ErrMongoDuplicate)

	var customErr *Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, StatusConflict, customErr.StatusCode)
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	tests := []struct {
		code     int32
		expected error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}

	for _, tc := range tests {
		err := ConvertMongoError(mongo.CommandError{Code: tc.code})
		assert.ErrorIs(t, err, tc.expected, "code %d", tc.code)
	}
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	err := ConvertMongoError(errors.New("lỗi lạ"))

	var customErr *Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
}

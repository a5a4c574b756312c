package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnlarose/touchpoint-api/core/api/dto"
	models "github.com/bnlarose/touchpoint-api/core/api/models/mongodb"
)

func TestNewUserFromInput_HashesPassword(t *testing.T) {
	input := &dto.UserCreateInput{
		Username:   "jdoe",
		Email:      "jdoe@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Password:   "super-secret-1",
		Site:       models.SiteArima,
		Department: models.DeptCare,
		Position:   models.PositionCSR,
	}

	user, err := newUserFromInput(input)
	assert.NoError(t, err)

	// Password lưu dạng bcrypt hash, không bao giờ là plaintext
	assert.NotEqual(t, input.Password, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("sai-mat-khau")))
}

func TestNewUserFromInput_ReportsToOptional(t *testing.T) {
	input := &dto.UserCreateInput{
		Username:   "jdoe",
		Email:      "jdoe@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Password:   "super-secret-1",
		Site:       models.SiteTobago,
		Department: models.DeptHelpdesk,
		Position:   models.PositionHelpdesk,
	}

	user, err := newUserFromInput(input)
	assert.NoError(t, err)
	assert.Nil(t, user.ReportsTo)

	input.ReportsTo = "507f1f77bcf86cd799439011"
	user, err = newUserFromInput(input)
	assert.NoError(t, err)
	assert.NotNil(t, user.ReportsTo)
	assert.Equal(t, "507f1f77bcf86cd799439011", user.ReportsTo.Hex())
}

func TestNewUserFromInput_CopiesEnumFields(t *testing.T) {
	input := &dto.UserCreateInput{
		Username:   "supervisor1",
		Email:      "sup@example.com",
		FirstName:  "Sam",
		LastName:   "Lee",
		Password:   "super-secret-1",
		Site:       models.SiteBackOffice,
		Department: models.DeptEscalations,
		Position:   models.PositionSupervisor,
	}

	user, err := newUserFromInput(input)
	assert.NoError(t, err)
	assert.Equal(t, models.SiteBackOffice, user.Site)
	assert.Equal(t, models.DeptEscalations, user.Department)
	assert.Equal(t, models.PositionSupervisor, user.Position)
}

package validator

import (
	"testing"
	"time"

	"hotelinfo/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" binding:"required,max=5"`
	Stars int    `json:"starRating" binding:"gte=0,lte=5"`
	URL   string `json:"url" binding:"omitempty,url"`
}

func TestValidateStruct_FieldNames(t *testing.T) {
	Setup()

	err := ValidateStruct(&sample{Name: "toolong", Stars: 9, URL: "nope"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)

	fields := map[string]string{}
	for _, f := range appErr.Fields {
		fields[f.Field] = f.Error
	}
	assert.Equal(t, "must be at most 5 characters", fields["name"])
	assert.Equal(t, "must be less than or equal to 5", fields["starRating"])
	assert.Equal(t, "must be a valid URL", fields["url"])

	assert.NoError(t, ValidateStruct(&sample{Name: "ok", Stars: 3}))
}

func TestValidateStay(t *testing.T) {
	in := time.Date(2024, 7, 1, 14, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateStay(in, in.Add(time.Hour)))
	assert.ErrorIs(t, ValidateStay(in, in), errors.ErrInvalidStay)
	assert.ErrorIs(t, ValidateStay(in, in.Add(-time.Hour)), errors.ErrInvalidStay)

	err := ValidateStay(time.Time{}, in)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)
}

func TestValidateHotelType(t *testing.T) {
	assert.NoError(t, ValidateHotelType(2))
	assert.Error(t, ValidateHotelType(3))
}

type hotelInput struct {
	HotelType int `json:"hotelType" binding:"hoteltype"`
}

func TestHotelTypeRule(t *testing.T) {
	assert.NoError(t, ValidateStruct(&hotelInput{HotelType: 1}))

	err := ValidateStruct(&hotelInput{HotelType: 7})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "hotelType", appErr.Fields[0].Field)
	assert.Equal(t, "must be one of [0 1 2]", appErr.Fields[0].Error)

	err = ValidateStruct(&hotelInput{HotelType: -1})
	assert.Error(t, err)
}

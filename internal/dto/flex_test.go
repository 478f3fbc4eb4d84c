package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTraineeRequestAcceptsStringsAndNumbers(t *testing.T) {
	var fromStrings SubmitTraineeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"TraineeId":"7","TraineeName":"A","Class":"5","Number":"0123","Age":" 10 ","Dob":"2015-01-01","Gender":"F"}`), &fromStrings))

	var fromNumbers SubmitTraineeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"TraineeId":7,"TraineeName":"A","Class":5,"Number":123,"Age":10,"Dob":"2015-01-01","Gender":"F"}`), &fromNumbers))

	assert.Equal(t, 7, fromStrings.Profile().TraineeID)
	assert.Equal(t, 10, fromStrings.Profile().Age)
	assert.Equal(t, "0123", fromStrings.Profile().Number)
	assert.Equal(t, "5", fromNumbers.Profile().Class)
	assert.Equal(t, "123", fromNumbers.Profile().Number)
}

func TestFlexStringKeepsLiteralText(t *testing.T) {
	var payload SubmitTraineeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"TraineeId":0,"TraineeName":"A","Class":" 5B ","Number":"  0123 "}`), &payload))

	profile := payload.Profile()
	assert.Equal(t, 0, profile.TraineeID)
	assert.Equal(t, " 5B ", profile.Class)
	assert.Equal(t, "  0123 ", profile.Number)
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var v FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"seven"`), &v))
	assert.Error(t, json.Unmarshal([]byte(`7.5`), &v))

	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.Equal(t, FlexInt(0), v)
}

func TestUpdateTrainerRequestPhoneFallback(t *testing.T) {
	assert.Equal(t, "0800", UpdateTrainerRequest{Number: "0800"}.Phone())
	assert.Equal(t, "0811", UpdateTrainerRequest{Mobile: "0811", Number: "0800"}.Phone())
}

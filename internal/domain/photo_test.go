package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhotoStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    PhotoStatus
		wantErr bool
	}{
		{"pending", PhotoStatusPending, false},
		{"PENDING", PhotoStatusPending, false},
		{"Processing", PhotoStatusProcessing, false},
		{"completed", PhotoStatusCompleted, false},
		{"failed", PhotoStatusFailed, false},
		{"archived", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePhotoStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, ValidationError{}, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhotoStatus_CanTransitionTo(t *testing.T) {
	// Forward transitions are allowed
	assert.True(t, PhotoStatusPending.CanTransitionTo(PhotoStatusProcessing))
	assert.True(t, PhotoStatusPending.CanTransitionTo(PhotoStatusCompleted))
	assert.True(t, PhotoStatusPending.CanTransitionTo(PhotoStatusFailed))
	assert.True(t, PhotoStatusProcessing.CanTransitionTo(PhotoStatusCompleted))
	assert.True(t, PhotoStatusProcessing.CanTransitionTo(PhotoStatusFailed))

	// Same status is a no-op, not a regression
	assert.True(t, PhotoStatusProcessing.CanTransitionTo(PhotoStatusProcessing))
	assert.True(t, PhotoStatusCompleted.CanTransitionTo(PhotoStatusCompleted))

	// Backward transitions are rejected
	assert.False(t, PhotoStatusProcessing.CanTransitionTo(PhotoStatusPending))
	assert.False(t, PhotoStatusCompleted.CanTransitionTo(PhotoStatusPending))
	assert.False(t, PhotoStatusCompleted.CanTransitionTo(PhotoStatusProcessing))
	assert.False(t, PhotoStatusFailed.CanTransitionTo(PhotoStatusProcessing))

	// Sideways moves between terminal states are rejected
	assert.False(t, PhotoStatusCompleted.CanTransitionTo(PhotoStatusFailed))
	assert.False(t, PhotoStatusFailed.CanTransitionTo(PhotoStatusCompleted))

	// Unknown statuses never transition
	assert.False(t, PhotoStatus("archived").CanTransitionTo(PhotoStatusPending))
	assert.False(t, PhotoStatusPending.CanTransitionTo(PhotoStatus("archived")))
}

func TestPhotoStatus_IsValid(t *testing.T) {
	assert.True(t, PhotoStatusPending.IsValid())
	assert.True(t, PhotoStatusFailed.IsValid())
	assert.False(t, PhotoStatus("archived").IsValid())
}

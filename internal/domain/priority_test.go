package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
	}{
		{"h", PriorityHigh},
		{"high", PriorityHigh},
		{"H", PriorityHigh},
		{"m", PriorityMedium},
		{"med", PriorityMedium},
		{"medium", PriorityMedium},
		{"l", PriorityLow},
		{"low", PriorityLow},
		{"", DefaultPriority},
		{"urgent", DefaultPriority},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePriority(tt.input))
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("urgent").IsValid())
	assert.False(t, Priority("").IsValid())
}

func TestPriority_Display(t *testing.T) {
	assert.Equal(t, "Low", PriorityLow.Display())
	assert.Equal(t, "Medium", PriorityMedium.Display())
	assert.Equal(t, "High", PriorityHigh.Display())
}

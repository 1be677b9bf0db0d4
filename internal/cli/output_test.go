package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tempo/internal/service"
)

func TestRenderStructured(t *testing.T) {
	dto := service.TaskDto{ID: uuid.New(), Name: "task", StatusLabel: "Pending", Priority: "Medium"}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderStructured(&buf, dto, "yaml"))

		var got service.TaskDto
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "task", got.Name)
		assert.Equal(t, "Pending", got.StatusLabel)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		require.Error(t, renderStructured(&buf, dto, "xml"))
	})
}

func TestFormatSpent(t *testing.T) {
	dto := service.TaskDto{TotalTimeSpent: 100 * time.Second}
	assert.Equal(t, "1m", formatSpent(dto))

	dto.IsTracking = true
	assert.Equal(t, "1m*", formatSpent(dto))
}

func TestFormatDue(t *testing.T) {
	assert.Equal(t, "-", formatDue(nil))

	due := time.Date(2026, 3, 6, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-03-06", formatDue(&due))
}

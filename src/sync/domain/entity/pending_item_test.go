package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPendingSyncItem(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	payload := json.RawMessage(`{"id":"abc"}`)

	item := NewPendingSyncItem(payload, 3, now)

	assert.Equal(t, 0, item.Attempts)
	assert.Equal(t, 3, item.MaxAttempts)
	assert.True(t, item.Eligible(now), "item novo é elegível imediatamente")
	assert.Equal(t, now, item.CreatedAt)
}

func TestPendingSyncItem_LinearBackoff(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	unit := 5 * time.Minute

	item := NewPendingSyncItem(json.RawMessage(`{}`), 3, now)

	// 1ª falha: próximo envio em now + 1*unit
	terminal := item.RegisterFailure(now, unit)
	require.False(t, terminal)
	assert.Equal(t, 1, item.Attempts)
	assert.Equal(t, now.Add(unit), item.NextSendAt)
	assert.False(t, item.Eligible(now))
	assert.True(t, item.Eligible(now.Add(unit)))

	// 2ª falha: próximo envio em now + 2*unit
	terminal = item.RegisterFailure(now, unit)
	require.False(t, terminal)
	assert.Equal(t, 2, item.Attempts)
	assert.Equal(t, now.Add(2*unit), item.NextSendAt)
}

func TestPendingSyncItem_TerminalAtCeiling(t *testing.T) {
	now := time.Now()
	unit := time.Minute

	item := NewPendingSyncItem(json.RawMessage(`{}`), 3, now)

	require.False(t, item.RegisterFailure(now, unit))
	require.False(t, item.RegisterFailure(now, unit))

	// 3ª falha atinge o teto: falha definitiva, sem reagendamento
	assert.True(t, item.RegisterFailure(now, unit))
	assert.Equal(t, 3, item.Attempts)
}

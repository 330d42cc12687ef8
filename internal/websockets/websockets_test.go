package websockets

import (
	"context"
	"crm/config"
	"crm/internal/database"
	"crm/internal/events"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_New(t *testing.T) {
	bus := events.New(nil, config.Config{})
	defer func() { _ = bus.Close() }()

	manager, err := New(database.DB{}, bus, config.Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, manager.ClientCount())
}

func TestManager_BroadcastWithoutClients(t *testing.T) {
	bus := events.New(nil, config.Config{})
	defer func() { _ = bus.Close() }()

	manager, err := New(database.DB{}, bus, config.Config{})
	require.NoError(t, err)

	// Events published with nobody connected are simply dropped.
	bus.Publish(context.Background(), events.Event{Type: events.TypeRecruitUpdated})
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 0, manager.ClientCount())
}

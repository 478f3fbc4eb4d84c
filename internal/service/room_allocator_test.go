package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomRoomAllocatorRequiresRooms(t *testing.T) {
	_, err := NewRandomRoomAllocator(nil, nil)
	assert.Error(t, err)
}

func TestRandomRoomAllocatorPicksFromPool(t *testing.T) {
	pool := []string{"Room A", "Room B", "Lab 1"}
	alloc, err := NewRandomRoomAllocator(pool, rand.NewSource(42))
	require.NoError(t, err)

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		room, err := alloc.Allocate(context.Background(), nil)
		require.NoError(t, err)
		require.Contains(t, pool, room)
		seen[room]++
	}
	assert.Len(t, seen, len(pool))
}

func TestRandomRoomAllocatorCopiesPool(t *testing.T) {
	pool := []string{"Room A"}
	alloc, err := NewRandomRoomAllocator(pool, nil)
	require.NoError(t, err)

	pool[0] = "mutated"
	room, err := alloc.Allocate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Room A", room)

	rooms := alloc.Rooms()
	rooms[0] = "changed"
	assert.Equal(t, []string{"Room A"}, alloc.Rooms())
}

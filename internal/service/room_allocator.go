package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/noah-isme/training-enrollment-api/internal/models"
)

// RoomAllocator picks the training room for an accepted request.
type RoomAllocator interface {
	Allocate(ctx context.Context, req *models.TraineeRequest) (string, error)
}

// RandomRoomAllocator picks uniformly at random from a fixed pool.
type RandomRoomAllocator struct {
	rooms []string

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomRoomAllocator builds an allocator over rooms. A nil src seeds from
// the clock.
func NewRandomRoomAllocator(rooms []string, src rand.Source) (*RandomRoomAllocator, error) {
	if len(rooms) == 0 {
		return nil, errors.New("room pool is empty")
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	pool := make([]string, len(rooms))
	copy(pool, rooms)
	return &RandomRoomAllocator{rooms: pool, rnd: rand.New(src)}, nil
}

// Rooms returns a copy of the pool.
func (a *RandomRoomAllocator) Rooms() []string {
	out := make([]string, len(a.rooms))
	copy(out, a.rooms)
	return out
}

// Allocate implements RoomAllocator.
func (a *RandomRoomAllocator) Allocate(_ context.Context, _ *models.TraineeRequest) (string, error) {
	a.mu.Lock()
	idx := a.rnd.Intn(len(a.rooms))
	a.mu.Unlock()
	return a.rooms[idx], nil
}

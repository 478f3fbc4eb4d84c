package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/training-enrollment-api/internal/dto"
	"github.com/noah-isme/training-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
)

type memoryCacheRepo struct {
	mu      sync.Mutex
	items   map[string][]byte
	deletes int
	setErr  error
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{items: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = raw
	return nil
}

func (m *memoryCacheRepo) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.items, key)
	}
	m.deletes++
	return nil
}

func sampleSubmit(id int) dto.SubmitTraineeRequest {
	return dto.SubmitTraineeRequest{
		TraineeID:   dto.FlexInt(id),
		TraineeName: "Asha",
		Class:       "10",
		Number:      "555-0101",
		Age:         17,
		Dob:         "2007-01-02",
		Gender:      "F",
	}
}

func TestTraineeRequestSubmitStoresPending(t *testing.T) {
	repo := &fakeRequestStore{}
	svc := NewTraineeRequestService(repo, nil, nil, time.Second, nil, nil)

	req, err := svc.Submit(context.Background(), sampleSubmit(7))
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Equal(t, "", req.TrainingRoom)
	assert.Equal(t, sampleProfile(7), req.TraineeProfile)
	assert.Equal(t, 1, repo.creates)
}

func TestTraineeRequestSubmitValidation(t *testing.T) {
	repo := &fakeRequestStore{}
	svc := NewTraineeRequestService(repo, nil, nil, time.Second, nil, nil)

	payload := sampleSubmit(7)
	payload.TraineeName = ""
	_, err := svc.Submit(context.Background(), payload)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	payload = sampleSubmit(-1)
	_, err = svc.Submit(context.Background(), payload)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 0, repo.creates)

	req, err := svc.Submit(context.Background(), sampleSubmit(0))
	require.NoError(t, err)
	assert.Equal(t, 0, req.TraineeID)
	assert.Equal(t, 1, repo.creates)
}

func TestTraineeRequestSubmitStoreFailure(t *testing.T) {
	boom := errors.New("insert failed")
	repo := &fakeRequestStore{createFn: func(*models.TraineeRequest) error { return boom }}
	svc := NewTraineeRequestService(repo, nil, nil, time.Second, nil, nil)

	_, err := svc.Submit(context.Background(), sampleSubmit(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrStoreUnavailable))
	assert.ErrorIs(t, err, boom)
}

func TestTraineeRequestListPendingUsesCache(t *testing.T) {
	repo := seededRequests(t, 7, 8)
	cacheRepo := newMemoryCacheRepo()
	cache := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	svc := NewTraineeRequestService(repo, cache, nil, time.Second, nil, nil)
	ctx := context.Background()

	first, hit, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, first, 2)

	repo.findErr = errors.New("should not be called")
	second, hit, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, len(first), len(second))
	assert.Equal(t, first[0].TraineeID, second[0].TraineeID)

	repo.findErr = nil
	_, err = svc.Submit(ctx, sampleSubmit(9))
	require.NoError(t, err)
	third, hit, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, third, 3)
}

func TestTraineeRequestListPendingInvalidatedByDecision(t *testing.T) {
	repo := seededRequests(t, 7)
	cacheRepo := newMemoryCacheRepo()
	cache := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	svc := NewTraineeRequestService(repo, cache, nil, time.Second, nil, nil)
	rooms, err := NewRandomRoomAllocator(samplePool, nil)
	require.NoError(t, err)
	wf := NewEnrollmentWorkflow(repo, newFakeRosterStore(), rooms, nil, cache, nil, time.Second, nil)
	ctx := context.Background()

	pending, _, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = wf.Decide(ctx, 7, models.RequestStatusRejected)
	require.NoError(t, err)

	pending, hit, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, pending)
}

func TestTraineeRequestListPendingStoreFailure(t *testing.T) {
	repo := &fakeRequestStore{findErr: errors.New("db down")}
	svc := NewTraineeRequestService(repo, nil, nil, time.Second, nil, nil)

	_, _, err := svc.ListPending(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrStoreUnavailable))
}

func TestTraineeRequestListPendingInvalidatedWhenPromotionFails(t *testing.T) {
	repo := seededRequests(t, 7)
	cache := NewCacheService(newMemoryCacheRepo(), nil, time.Minute, nil, true)
	svc := NewTraineeRequestService(repo, cache, nil, time.Second, nil, nil)
	rooms, err := NewRandomRoomAllocator(samplePool, nil)
	require.NoError(t, err)
	roster := newFakeRosterStore()
	roster.insertErr = errors.New("db down")
	wf := NewEnrollmentWorkflow(repo, roster, rooms, nil, cache, nil, time.Second, nil)
	ctx := context.Background()

	_, _, err = svc.ListPending(ctx)
	require.NoError(t, err)

	_, err = wf.Decide(ctx, 7, models.RequestStatusAccepted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrStoreUnavailable))
	assert.Equal(t, models.RequestStatusAccepted, repo.get(7).Status)

	pending, hit, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, pending)
}

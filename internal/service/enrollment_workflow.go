package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/training-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
	"github.com/noah-isme/training-enrollment-api/pkg/lock"
)

type decisionRequestStore interface {
	FindByTraineeID(ctx context.Context, traineeID int) (*models.TraineeRequest, error)
	UpdateDecision(ctx context.Context, id string, status models.RequestStatus, room string) (bool, error)
}

type promotionRosterStore interface {
	Exists(ctx context.Context, traineeID int) (bool, error)
	Insert(ctx context.Context, trainee *models.Trainee) (bool, error)
}

// EnrollmentWorkflow decides pending requests and promotes accepted ones
// into the roster.
type EnrollmentWorkflow struct {
	requests decisionRequestStore
	roster   promotionRosterStore
	rooms    RoomAllocator
	locker   lock.Locker
	cache    *CacheService
	metrics  *MetricsService
	store    storeRunner
	logger   *zap.Logger
}

// NewEnrollmentWorkflow constructs the workflow. A nil locker falls back to
// an in-process lock; cache and metrics are optional.
func NewEnrollmentWorkflow(requests decisionRequestStore, roster promotionRosterStore, rooms RoomAllocator, locker lock.Locker, cache *CacheService, metrics *MetricsService, storeTimeout time.Duration, logger *zap.Logger) *EnrollmentWorkflow {
	if locker == nil {
		locker = lock.NewShardedLocker()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentWorkflow{
		requests: requests,
		roster:   roster,
		rooms:    rooms,
		locker:   locker,
		cache:    cache,
		metrics:  metrics,
		store:    storeRunner{timeout: storeTimeout, metrics: metrics},
		logger:   logger,
	}
}

// Decide accepts or rejects the request of traineeID. Accepting assigns a
// room and promotes the trainee unless already on the roster. Decisions for
// the same trainee are serialised.
func (w *EnrollmentWorkflow) Decide(ctx context.Context, traineeID int, decision models.RequestStatus) (*models.DecisionResult, error) {
	if !decision.IsDecision() {
		return nil, appErrors.ErrInvalidDecision
	}

	unlock, err := w.acquire(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var req *models.TraineeRequest
	err = w.store.run(ctx, "find_trainee_request", func(ctx context.Context) error {
		var findErr error
		req, findErr = w.requests.FindByTraineeID(ctx, traineeID)
		return findErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Trainee request not found")
		}
		return nil, appErrors.Store(err, "failed to load trainee request")
	}

	room := ""
	if decision == models.RequestStatusAccepted {
		room, err = w.rooms.Allocate(ctx, req)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign training room")
		}
	}

	var changed bool
	err = w.store.run(ctx, "update_trainee_request", func(ctx context.Context) error {
		var updateErr error
		changed, updateErr = w.requests.UpdateDecision(ctx, req.ID, decision, room)
		return updateErr
	})
	if err != nil {
		return nil, appErrors.Store(err, "failed to update trainee request")
	}
	defer w.cache.Invalidate(ctx, pendingRequestsCacheKey)
	if !changed {
		w.logger.Warn("trainee request vanished before decision was stored",
			zap.Int("trainee_id", traineeID), zap.String("request_id", req.ID))
	}

	result := &models.DecisionResult{TraineeID: traineeID, Status: decision, AssignedRoom: room}
	if decision == models.RequestStatusAccepted {
		result.Promoted, err = w.promote(ctx, req, room)
		if err != nil {
			return nil, err
		}
	}

	w.metrics.RecordDecision(decision)
	w.logger.Info("trainee request decided",
		zap.Int("trainee_id", traineeID),
		zap.String("status", string(decision)),
		zap.String("training_room", room),
		zap.Bool("promoted", result.Promoted))
	return result, nil
}

func (w *EnrollmentWorkflow) acquire(ctx context.Context, traineeID int) (lock.Unlock, error) {
	var unlock lock.Unlock
	err := w.store.run(ctx, "lock_trainee", func(ctx context.Context) error {
		var lockErr error
		unlock, lockErr = w.locker.Lock(ctx, "trainee:"+strconv.Itoa(traineeID))
		return lockErr
	})
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, appErrors.Store(err, "trainee request is busy, try again")
		}
		return nil, appErrors.Store(err, "failed to lock trainee request")
	}
	return unlock, nil
}

// promote copies the request into the roster. It reports false when the
// trainee was already present.
func (w *EnrollmentWorkflow) promote(ctx context.Context, req *models.TraineeRequest, room string) (bool, error) {
	var exists bool
	err := w.store.run(ctx, "roster_exists", func(ctx context.Context) error {
		var existsErr error
		exists, existsErr = w.roster.Exists(ctx, req.TraineeID)
		return existsErr
	})
	if err != nil {
		return false, appErrors.Store(err, "failed to check roster")
	}
	if exists {
		w.metrics.RecordPromotion(false)
		return false, nil
	}

	entry := &models.Trainee{TraineeProfile: req.TraineeProfile, TrainingRoom: room}
	var inserted bool
	err = w.store.run(ctx, "roster_insert", func(ctx context.Context) error {
		var insertErr error
		inserted, insertErr = w.roster.Insert(ctx, entry)
		return insertErr
	})
	if err != nil {
		return false, appErrors.Store(err, "failed to promote trainee")
	}
	w.metrics.RecordPromotion(inserted)
	return inserted, nil
}

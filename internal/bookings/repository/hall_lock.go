package repository

import (
	"context"
	"fmt"
	"time"

	bookingserrors "utsavam/internal/bookings/errors"
	"utsavam/pkg/config"
	"utsavam/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const LockCollectionName = "Hall_locks"

// HallLockRepository manages advisory locks keyed by hall id. Insert
// succeeds only when no live lock exists; the TTL index on expires_at
// reclaims locks left behind by crashed processes.
type HallLockRepository interface {
	Acquire(ctx context.Context, hallID string, ttl time.Duration) (string, error)
	Release(ctx context.Context, lockID string) error
}

type mongoHallLockRepository struct {
	collection *mongo.Collection
}

func NewHallLockRepository(cfg *config.Config) HallLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoHallLockRepository{
		collection: db.Collection(LockCollectionName),
	}
}

func (r *mongoHallLockRepository) Acquire(ctx context.Context, hallID string, ttl time.Duration) (string, error) {
	now := time.Now()
	lock := &model.HallLock{
		ID:        "hall_lock_" + hallID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", bookingserrors.ErrLockHeld
		}
		return "", fmt.Errorf("failed to insert hall lock: %w", err)
	}

	return lock.ID, nil
}

func (r *mongoHallLockRepository) Release(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}

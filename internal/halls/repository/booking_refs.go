package repository

import (
	"context"
	"fmt"

	bookingsrepo "utsavam/internal/bookings/repository"
	"utsavam/pkg/config"
	"utsavam/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRefRepository answers whether reservations still reference a
// hall. Deletion is refused while any non-rejected booking does.
type BookingRefRepository interface {
	CountActiveByHall(ctx context.Context, hallID string) (int64, error)
}

type mongoBookingRefRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRefRepository(cfg *config.Config) BookingRefRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRefRepository{
		cfg:        cfg,
		collection: db.Collection(bookingsrepo.CollectionName),
	}
}

func (r *mongoBookingRefRepository) CountActiveByHall(ctx context.Context, hallID string) (int64, error) {
	if _, ok := ctx.(mongo.SessionContext); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.ReadTimeout)
		defer cancel()
	}

	filter := bson.M{
		"hall_id": hallID,
		"status":  bson.M{"$ne": model.StatusRejected},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count hall bookings: %w", err)
	}
	return count, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	hallserrors "utsavam/internal/halls/errors"
	"utsavam/pkg/config"
	mongotx "utsavam/pkg/db/mongo"
	"utsavam/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Halls"

type HallRepository interface {
	Create(ctx context.Context, hall *model.Hall) error
	FindByID(ctx context.Context, id string) (*model.Hall, error)
	FindAll(ctx context.Context, filter HallFilter, limit int, offset int64) ([]*model.Hall, error)
	Count(ctx context.Context, filter HallFilter) (int64, error)
	FindByVendor(ctx context.Context, vendorID string) ([]*model.Hall, error)
	UpdateStatus(ctx context.Context, id string, status model.ApprovalStatus) error
	Update(ctx context.Context, id string, hall *model.Hall) error
	Delete(ctx context.Context, id string) error

	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

// HallFilter narrows listing queries. Zero values mean "any".
type HallFilter struct {
	City     string
	Category string
	Status   model.ApprovalStatus
}

type mongoHallRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoHallRepository(cfg *config.Config) HallRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoHallRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout bounds the query unless we are already inside a
// transaction; a SessionContext must not be wrapped.
func (r *mongoHallRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			return context.WithTimeout(ctx, remaining)
		}
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoHallRepository) Create(ctx context.Context, hall *model.Hall) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	hall.CreatedAt = now
	hall.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, hall)
	if err != nil {
		return fmt.Errorf("failed to create hall: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		hall.ID = oid.Hex()
	}

	return nil
}

func (r *mongoHallRepository) FindByID(ctx context.Context, id string) (*model.Hall, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", hallserrors.ErrInvalidID, id)
	}

	var hall model.Hall
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hall)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", hallserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find hall: %w", err)
	}
	return &hall, nil
}

func (f HallFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.City != "" {
		filter["city"] = f.City
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func (r *mongoHallRepository) FindAll(ctx context.Context, filter HallFilter, limit int, offset int64) ([]*model.Hall, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list halls: %w", err)
	}
	defer cursor.Close(ctx)

	var halls []*model.Hall
	if err := cursor.All(ctx, &halls); err != nil {
		return nil, fmt.Errorf("failed to decode halls: %w", err)
	}
	return halls, nil
}

func (r *mongoHallRepository) Count(ctx context.Context, filter HallFilter) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, filter.toBSON())
	if err != nil {
		return 0, fmt.Errorf("failed to count halls: %w", err)
	}
	return count, nil
}

func (r *mongoHallRepository) FindByVendor(ctx context.Context, vendorID string) ([]*model.Hall, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"vendor_id": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to find halls by vendor: %w", err)
	}
	defer cursor.Close(ctx)

	var halls []*model.Hall
	if err := cursor.All(ctx, &halls); err != nil {
		return nil, fmt.Errorf("failed to decode halls: %w", err)
	}
	return halls, nil
}

func (r *mongoHallRepository) UpdateStatus(ctx context.Context, id string, status model.ApprovalStatus) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", hallserrors.ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC().Truncate(time.Millisecond),
	}}

	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return fmt.Errorf("failed to update hall status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", hallserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoHallRepository) Update(ctx context.Context, id string, hall *model.Hall) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", hallserrors.ErrInvalidID, id)
	}

	hall.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	update := bson.M{"$set": bson.M{
		"name":          hall.Name,
		"category":      hall.Category,
		"capacity":      hall.Capacity,
		"city":          hall.City,
		"about":         hall.About,
		"price_per_day": hall.PricePerDay,
		"updated_at":    hall.UpdatedAt,
	}}

	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return fmt.Errorf("failed to update hall: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", hallserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoHallRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", hallserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete hall: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", hallserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoHallRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}

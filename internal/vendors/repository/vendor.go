package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	vendorserrors "utsavam/internal/vendors/errors"
	"utsavam/pkg/config"
	mongotx "utsavam/pkg/db/mongo"
	"utsavam/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Vendors"

type VendorRepository interface {
	Create(ctx context.Context, vendor *model.Vendor) error
	FindByID(ctx context.Context, id string) (*model.Vendor, error)
	FindByPhone(ctx context.Context, phone string) (*model.Vendor, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Vendor, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, status model.ApprovalStatus) error
	Delete(ctx context.Context, id string) error

	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoVendorRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoVendorRepository(cfg *config.Config) VendorRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoVendorRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoVendorRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
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

func (r *mongoVendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, vendor)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		vendor.ID = oid.Hex()
	}

	return nil
}

func (r *mongoVendorRepository) FindByID(ctx context.Context, id string) (*model.Vendor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", vendorserrors.ErrInvalidID, id)
	}

	var vendor model.Vendor
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", vendorserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	return &vendor, nil
}

func (r *mongoVendorRepository) FindByPhone(ctx context.Context, phone string) (*model.Vendor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var vendor model.Vendor
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: phone %s", vendorserrors.ErrNotFound, phone)
		}
		return nil, fmt.Errorf("failed to find vendor by phone: %w", err)
	}
	return &vendor, nil
}

func (r *mongoVendorRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Vendor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer cursor.Close(ctx)

	var vendors []*model.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("failed to decode vendors: %w", err)
	}
	return vendors, nil
}

func (r *mongoVendorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return count, nil
}

func (r *mongoVendorRepository) UpdateStatus(ctx context.Context, id string, status model.ApprovalStatus) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", vendorserrors.ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC().Truncate(time.Millisecond),
	}}

	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return fmt.Errorf("failed to update vendor status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", vendorserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoVendorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", vendorserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", vendorserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoVendorRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}

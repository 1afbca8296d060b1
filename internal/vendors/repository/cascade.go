package repository

import (
	"context"
	"fmt"

	bookingsrepo "utsavam/internal/bookings/repository"
	hallsrepo "utsavam/internal/halls/repository"
	"utsavam/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CascadeRepository performs the cross-collection deletes of the vendor
// removal pipeline. Every method is meant to run inside the pipeline's
// transaction via the SessionContext it receives.
type CascadeRepository interface {
	HallIDsByVendor(ctx context.Context, vendorID string) ([]string, error)
	DeleteBookingsForVendor(ctx context.Context, vendorID string, hallIDs []string) (int64, error)
	DeleteHallsByVendor(ctx context.Context, vendorID string) (int64, error)
	DeleteVendor(ctx context.Context, vendorID string) (int64, error)
}

type mongoCascadeRepository struct {
	halls    *mongo.Collection
	bookings *mongo.Collection
	vendors  *mongo.Collection
}

func NewMongoCascadeRepository(cfg *config.Config) CascadeRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCascadeRepository{
		halls:    db.Collection(hallsrepo.CollectionName),
		bookings: db.Collection(bookingsrepo.CollectionName),
		vendors:  db.Collection(CollectionName),
	}
}

func (r *mongoCascadeRepository) HallIDsByVendor(ctx context.Context, vendorID string) ([]string, error) {
	cursor, err := r.halls.Find(ctx, bson.M{"vendor_id": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor halls: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode vendor halls: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID.Hex())
	}
	return ids, nil
}

// DeleteBookingsForVendor removes every booking referencing the
// vendor's halls or the vendor itself, whatever its status. The
// vendor_id arm catches bookings whose hall was already removed.
// Deleting zero bookings is a valid outcome.
func (r *mongoCascadeRepository) DeleteBookingsForVendor(ctx context.Context, vendorID string, hallIDs []string) (int64, error) {
	filter := bson.M{"vendor_id": vendorID}
	if len(hallIDs) > 0 {
		filter = bson.M{"$or": []bson.M{
			{"hall_id": bson.M{"$in": hallIDs}},
			{"vendor_id": vendorID},
		}}
	}

	result, err := r.bookings.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *mongoCascadeRepository) DeleteHallsByVendor(ctx context.Context, vendorID string) (int64, error) {
	result, err := r.halls.DeleteMany(ctx, bson.M{"vendor_id": vendorID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete halls: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *mongoCascadeRepository) DeleteVendor(ctx context.Context, vendorID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(vendorID)
	if err != nil {
		return 0, fmt.Errorf("invalid vendor id %s: %w", vendorID, err)
	}

	result, err := r.vendors.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete vendor: %w", err)
	}
	return result.DeletedCount, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/coffee-builder/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogConfig is one published version of the price table.
//
// @Description Published catalog version
type CatalogConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Version   int                `bson:"version" json:"version" example:"3"`
	Active    bool               `bson:"active" json:"active"`
	Catalogs  model.Catalogs     `bson:"catalogs" json:"catalogs"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy string             `bson:"created_by,omitempty" json:"created_by,omitempty" example:"admin"`
} // @name CatalogConfig

// maxPublishAttempts bounds retries when concurrent publishes claim the same version.
const maxPublishAttempts = 5

// CatalogRepository stores versioned catalogs. Exactly one version is active.
type CatalogRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		collection: db.Catalogs,
		now:        time.Now,
	}
}

// GetActive returns the active catalog version, or nil when none was published.
// While a publish is settling two versions can be active; the newest wins.
func (r *CatalogRepository) GetActive(ctx context.Context) (*CatalogConfig, error) {
	var config CatalogConfig
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"active": true}, opts).Decode(&config)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create publishes catalogs as the next version and deactivates older ones.
// The new version is inserted before anything is deactivated, so a failed
// publish never leaves the collection without an active catalog. Concurrent
// publishes race on the unique version index and the loser retries.
func (r *CatalogRepository) Create(ctx context.Context, catalogs model.Catalogs, createdBy string) (*CatalogConfig, error) {
	config, err := r.insertNext(ctx, catalogs, createdBy)
	if err != nil {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true, "version": bson.M{"$lt": config.Version}},
		bson.M{"$set": bson.M{"active": false, "updated_at": config.UpdatedAt}},
	)
	if err != nil {
		return nil, fmt.Errorf("deactivate catalogs older than v%d: %w", config.Version, err)
	}
	return config, nil
}

func (r *CatalogRepository) insertNext(ctx context.Context, catalogs model.Catalogs, createdBy string) (*CatalogConfig, error) {
	var lastErr error
	for attempt := 0; attempt < maxPublishAttempts; attempt++ {
		next, err := r.nextVersion(ctx)
		if err != nil {
			return nil, err
		}

		now := r.now().UTC()
		config := CatalogConfig{
			ID:        primitive.NewObjectID(),
			Version:   next,
			Active:    true,
			Catalogs:  catalogs,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: createdBy,
		}

		_, err = r.collection.InsertOne(ctx, config)
		if err == nil {
			return &config, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("publish catalog after %d attempts: %w", maxPublishAttempts, lastErr)
}

func (r *CatalogRepository) nextVersion(ctx context.Context) (int, error) {
	var latest struct {
		Version int `bson:"version"`
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "version", Value: -1}}).
		SetProjection(bson.M{"version": 1})

	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.Version + 1, nil
}

// List returns catalog versions, newest first.
func (r *CatalogRepository) List(ctx context.Context, limit int) ([]CatalogConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	configs := make([]CatalogConfig, 0)
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

package counselorRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"campusminds/database"
	"campusminds/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCounselorRepo implements CounselorRepository using MongoDB.
type MongoCounselorRepo struct {
	coll *mongo.Collection
}

// NewMongoCounselorRepo creates a new instance of CounselorRepository using MongoDB.
func NewMongoCounselorRepo() CounselorRepository {
	coll := database.MongoClient.Database("campusminds").Collection("counselors")
	repo := &MongoCounselorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// escapeRegex neutralizes regex metacharacters in user-supplied names.
func escapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCounselorRepo) ensureIndexes() error {
	ctx, cancel := newContext(nil, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new counselor document.
func (r *MongoCounselorRepo) Create(ctx context.Context, counselor *models.Counselor) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, counselor); err != nil {
		return fmt.Errorf("failed to create counselor: %w", err)
	}
	return nil
}

// GetByID retrieves a counselor by its unique ID.
func (r *MongoCounselorRepo) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var counselor models.Counselor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&counselor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch counselor with id %s: %w", id, err)
	}
	return &counselor, nil
}

// GetByName retrieves a counselor by display name, case-insensitively.
func (r *MongoCounselorRepo) GetByName(ctx context.Context, name string) (*models.Counselor, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": primitive.Regex{Pattern: "^" + escapeRegex(name) + "$", Options: "i"}}

	var counselor models.Counselor
	if err := r.coll.FindOne(ctx, filter).Decode(&counselor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch counselor %q: %w", name, err)
	}
	return &counselor, nil
}

// GetAll retrieves the full counselor directory.
func (r *MongoCounselorRepo) GetAll(ctx context.Context) ([]models.Counselor, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve counselors: %w", err)
	}
	defer cursor.Close(ctx)

	counselors := []models.Counselor{}
	if err := cursor.All(ctx, &counselors); err != nil {
		return nil, fmt.Errorf("failed to decode counselors: %w", err)
	}
	return counselors, nil
}

// SetOnlineStatus updates the isOnline flag for a counselor by name.
func (r *MongoCounselorRepo) SetOnlineStatus(ctx context.Context, name string, online bool) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": primitive.Regex{Pattern: "^" + escapeRegex(name) + "$", Options: "i"}}
	update := bson.M{"$set": bson.M{"isOnline": online}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Counselor
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to update status for counselor %q: %w", name, err)
	}
	return updated.IsOnline, nil
}

// DeleteAll clears the counselor collection. Used by the seeder.
func (r *MongoCounselorRepo) DeleteAll(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear counselors: %w", err)
	}
	return nil
}

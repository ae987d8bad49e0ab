package urgentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusminds/database"
	"campusminds/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound signals that no urgent request matches the id.
var ErrNotFound = errors.New("urgent request not found")

// IsNotFound reports whether err is the missing-request sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// UrgentRepository defines data access for urgent session requests.
type UrgentRepository interface {
	Create(ctx context.Context, req *models.UrgentRequest) error
	GetByID(ctx context.Context, id string) (*models.UrgentRequest, error)
	// GetAll returns urgent requests newest first.
	GetAll(ctx context.Context) ([]models.UrgentRequest, error)
	Delete(ctx context.Context, id string) error
}

// MongoUrgentRepo implements UrgentRepository using MongoDB.
type MongoUrgentRepo struct {
	coll *mongo.Collection
}

// NewMongoUrgentRepo creates a new instance of UrgentRepository using MongoDB.
func NewMongoUrgentRepo() UrgentRepository {
	coll := database.MongoClient.Database("campusminds").Collection("urgent_requests")
	return &MongoUrgentRepo{coll: coll}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// Create inserts a new urgent request document.
func (r *MongoUrgentRepo) Create(ctx context.Context, req *models.UrgentRequest) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create urgent request: %w", err)
	}
	return nil
}

// GetByID retrieves an urgent request by its unique ID.
func (r *MongoUrgentRepo) GetByID(ctx context.Context, id string) (*models.UrgentRequest, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var req models.UrgentRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch urgent request with id %s: %w", id, err)
	}
	return &req, nil
}

// GetAll retrieves urgent requests, newest first.
func (r *MongoUrgentRepo) GetAll(ctx context.Context) ([]models.UrgentRequest, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve urgent requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.UrgentRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode urgent requests: %w", err)
	}
	return requests, nil
}

// Delete removes an urgent request by its ID.
func (r *MongoUrgentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete urgent request with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package studentRepo

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

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo creates a new instance of StudentRepository using MongoDB.
func NewMongoStudentRepo() StudentRepository {
	coll := database.MongoClient.Database("campusminds").Collection("students")
	repo := &MongoStudentRepo{coll: coll}

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

// ensureIndexes creates the unique nickname index; the nickname is the only
// identity a student carries across sessions.
func (r *MongoStudentRepo) ensureIndexes() error {
	ctx, cancel := newContext(nil, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "nickname", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert creates or updates the profile under the nickname and returns the
// stored document.
func (r *MongoStudentRepo) Upsert(ctx context.Context, student *models.Student) (*models.Student, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"nickname": student.Nickname}
	update := bson.M{
		"$set": bson.M{
			"email":  student.Email,
			"phone":  student.Phone,
			"age":    student.Age,
			"gender": student.Gender,
		},
		"$setOnInsert": bson.M{
			"nickname":  student.Nickname,
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Student
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert student %q: %w", student.Nickname, err)
	}
	return &stored, nil
}

// GetByNickname retrieves a profile by its exact nickname.
func (r *MongoStudentRepo) GetByNickname(ctx context.Context, nickname string) (*models.Student, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"nickname": nickname}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch student %q: %w", nickname, err)
	}
	return &student, nil
}

// GetByCredentials matches nickname and email case-insensitively.
func (r *MongoStudentRepo) GetByCredentials(ctx context.Context, nickname, email string) (*models.Student, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"nickname": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(nickname) + "$", Options: "i"},
		"email":    primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"},
	}

	var student models.Student
	if err := r.coll.FindOne(ctx, filter).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch student %q: %w", nickname, err)
	}
	return &student, nil
}

// File: database/repository/appointment/appointmentMongoQueries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"campusminds/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListActive returns appointments for (counselorId, date) whose status counts
// against slot uniqueness.
func (r *MongoAppointmentRepo) ListActive(ctx context.Context, counselorID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"counselorId": counselorID,
		"date":        date,
		"status":      bson.M{"$in": models.ActiveStatuses()},
	}
	return r.list(ctx, filter, bson.D{{Key: "timeSlot", Value: 1}})
}

// ListByCounselorAndStatus returns a counselor's appointments with the given
// status, sorted by date.
func (r *MongoAppointmentRepo) ListByCounselorAndStatus(ctx context.Context, counselorID, status string, dateAscending bool) ([]models.Appointment, error) {
	order := 1
	if !dateAscending {
		order = -1
	}
	filter := bson.M{"counselorId": counselorID, "status": status}
	return r.list(ctx, filter, bson.D{{Key: "date", Value: order}, {Key: "timeSlot", Value: order}})
}

// ListByNickname returns every appointment booked under a student nickname,
// ascending by date.
func (r *MongoAppointmentRepo) ListByNickname(ctx context.Context, nickname string) ([]models.Appointment, error) {
	filter := bson.M{"studentNickname": nickname}
	return r.list(ctx, filter, bson.D{{Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}})
}

func (r *MongoAppointmentRepo) list(ctx context.Context, filter bson.M, sort bson.D) ([]models.Appointment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

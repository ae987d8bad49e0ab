// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"campusminds/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the necessary indexes on the appointments collection.
//
// The partial unique index on (counselorId, date, timeSlot) is the arbiter of
// the no-double-booking invariant: it only covers documents whose status is
// Pending or Confirmed, so terminal appointments free their slot for rebooking.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activeSlotOpts := options.Index().
		SetUnique(true).
		SetName("unique_active_slot").
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": models.ActiveStatuses()},
		})

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "counselorId", Value: 1}, {Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}},
			Options: activeSlotOpts,
		},
		// Compound index for counselorId and status (dashboard query pattern)
		{
			Keys:    bson.D{{Key: "counselorId", Value: 1}, {Key: "status", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("counselor_status_date_idx"),
		},
		// Index for student history lookups by nickname
		{
			Keys:    bson.D{{Key: "studentNickname", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("nickname_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}

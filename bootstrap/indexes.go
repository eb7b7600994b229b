package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the write paths rely on. The unique email
// index is what makes concurrent first-login student creation safe: the loser
// of the race gets a duplicate-key error and re-fetches.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("students").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("companies").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// Status/flag updates join on the embedded application id from the gig
	// side, so keep that lookup indexed.
	_, err = db.Collection("gigs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "applicants._id", Value: 1}},
	})
	return err
}

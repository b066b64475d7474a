package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.Collection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("uniq_email").
			SetUnique(true),
	})
	if err != nil {
		return err
	}

	jobs := db.Collection("jobs")
	_, err = jobs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetName("uniq_slug").
			SetUnique(true),
	})
	if err != nil {
		return err
	}

	blogs := db.Collection("blogs")
	_, err = blogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("by_slug"),
	})
	if err != nil {
		return err
	}

	// Applications are listed per job, newest first.
	applications := db.Collection("jobapplications")
	_, err = applications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("by_job_created"),
	})
	return err
}

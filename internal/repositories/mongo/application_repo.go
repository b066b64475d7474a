package mongo

import (
	"context"
	"time"

	"github.com/infoaidtech/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.JobApplication) error
	// List returns applications newest first, optionally scoped to one job.
	List(ctx context.Context, jobID *primitive.ObjectID) ([]models.JobApplication, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobApplication, error)
	Replace(ctx context.Context, a *models.JobApplication) error
}

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepository {
	return &applicationRepo{col: db.Collection("jobapplications")}
}

func (r *applicationRepo) Create(ctx context.Context, a *models.JobApplication) error {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return mapErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (r *applicationRepo) List(ctx context.Context, jobID *primitive.ObjectID) ([]models.JobApplication, error) {
	filter := bson.M{}
	if jobID != nil {
		filter["jobId"] = *jobID
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apps []models.JobApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobApplication, error) {
	var a models.JobApplication
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *applicationRepo) Replace(ctx context.Context, a *models.JobApplication) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

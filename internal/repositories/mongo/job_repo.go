package mongo

import (
	"context"
	"time"

	"github.com/infoaidtech/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	GetBySlug(ctx context.Context, slug string) (*models.Job, error)
	Replace(ctx context.Context, j *models.Job) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type jobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepository {
	return &jobRepo{col: db.Collection("jobs")}
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	now := time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now
	if j.Expired.IsZero() {
		j.Expired = now.AddDate(0, 1, 0)
	}

	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return mapErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		j.ID = oid
	}
	return nil
}

func (r *jobRepo) List(ctx context.Context) ([]models.Job, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var j models.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		return nil, mapErr(err)
	}
	return &j, nil
}

func (r *jobRepo) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	var j models.Job
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&j); err != nil {
		return nil, mapErr(err)
	}
	return &j, nil
}

func (r *jobRepo) Replace(ctx context.Context, j *models.Job) error {
	j.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": j.ID}, j)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

package mongo

import (
	"context"
	"time"

	"github.com/infoaidtech/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	List(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	Replace(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type serviceRepo struct {
	col *mongo.Collection
}

func NewServiceRepo(db *mongo.Database) ServiceRepository {
	return &serviceRepo{col: db.Collection("services")}
}

func (r *serviceRepo) Create(ctx context.Context, s *models.Service) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return mapErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

func (r *serviceRepo) List(ctx context.Context) ([]models.Service, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var services []models.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var s models.Service
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *serviceRepo) Replace(ctx context.Context, s *models.Service) error {
	s.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

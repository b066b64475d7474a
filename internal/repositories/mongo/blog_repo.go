package mongo

import (
	"context"
	"time"

	"github.com/infoaidtech/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BlogListOptions mirrors the list query parameters. A nil IsPublished
// means "no filter", not false.
type BlogListOptions struct {
	Category    string
	Tags        []string
	IsPublished *bool
}

type BlogRepository interface {
	Create(ctx context.Context, b *models.Blog) error
	List(ctx context.Context, opts BlogListOptions) ([]models.Blog, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Replace(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type blogRepo struct {
	col *mongo.Collection
}

func NewBlogRepo(db *mongo.Database) BlogRepository {
	return &blogRepo{col: db.Collection("blogs")}
}

// blogFilter builds the dynamic list query.
func blogFilter(opts BlogListOptions) bson.M {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if len(opts.Tags) > 0 {
		filter["tags"] = bson.M{"$in": opts.Tags}
	}
	if opts.IsPublished != nil {
		filter["isPublished"] = *opts.IsPublished
	}
	return filter
}

func (r *blogRepo) Create(ctx context.Context, b *models.Blog) error {
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return mapErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

func (r *blogRepo) List(ctx context.Context, opts BlogListOptions) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, blogFilter(opts))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&b); err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

func (r *blogRepo) Replace(ctx context.Context, b *models.Blog) error {
	b.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapErr(mongo.ErrNoDocuments)
	}
	return nil
}

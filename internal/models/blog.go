package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog categories are free-text tags, not references to the Category
// collection.
type Blog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MetaTitle       string             `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string             `bson:"metaDescription" json:"metaDescription"`
	Title           string             `bson:"title" json:"title"`
	Content         string             `bson:"content" json:"content"`
	Author          string             `bson:"author" json:"author"`
	Category        []string           `bson:"category,omitempty" json:"category,omitempty"`
	Tags            []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Slug            string             `bson:"slug,omitempty" json:"slug,omitempty"`
	IsPublished     bool               `bson:"isPublished" json:"isPublished"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

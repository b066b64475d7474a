package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job posting. Expired defaults to one month after creation; the slug is
// unique and usable as an alternate lookup key.
type Job struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Location         string             `bson:"location" json:"location"`
	Description      string             `bson:"description" json:"description"`
	EmploymentStatus string             `bson:"employmentStatus" json:"employmentStatus"` // fulltime, parttime, contract, internship, temporary
	Vacancy          int                `bson:"vacancy" json:"vacancy"`
	Salary           string             `bson:"salary" json:"salary"`
	Workplace        string             `bson:"workplace" json:"workplace"`
	Des1             string             `bson:"des1,omitempty" json:"des1,omitempty"`
	Des2             string             `bson:"des2,omitempty" json:"des2,omitempty"`
	Des3             string             `bson:"des3,omitempty" json:"des3,omitempty"`
	Slug             string             `bson:"slug" json:"slug"`
	IsPublished      bool               `bson:"isPublished" json:"isPublished"`
	Expired          time.Time          `bson:"expired" json:"expired"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

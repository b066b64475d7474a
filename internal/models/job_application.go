package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusInterviewed ApplicationStatus = "interviewed"
	StatusSelected    ApplicationStatus = "selected"
	StatusRejected    ApplicationStatus = "rejected"
	StatusOffered     ApplicationStatus = "offered"
	StatusOnHold      ApplicationStatus = "on-hold"
	StatusWithdrawn   ApplicationStatus = "withdrawn"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusInterviewed, StatusSelected,
		StatusRejected, StatusOffered, StatusOnHold, StatusWithdrawn:
		return true
	}
	return false
}

type InterviewMode string

const (
	InterviewOnline  InterviewMode = "online"
	InterviewOffline InterviewMode = "offline"
	InterviewHybrid  InterviewMode = "hybrid"
	InterviewPhone   InterviewMode = "phone"
	InterviewVideo   InterviewMode = "video"
)

func (m InterviewMode) Valid() bool {
	switch m {
	case InterviewOnline, InterviewOffline, InterviewHybrid, InterviewPhone, InterviewVideo:
		return true
	}
	return false
}

// JobApplication references an existing Job at creation time. The reference
// is not enforced by the store: deleting a Job orphans its applications
// rather than cascading.
type JobApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID       primitive.ObjectID `bson:"jobId" json:"jobId"`
	FullName    string             `bson:"fullName" json:"fullName"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	CoverLetter string             `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	CVURL       string             `bson:"cvUrl" json:"cvUrl"`

	Status ApplicationStatus `bson:"status" json:"status"`

	InterviewDateWithTime *time.Time    `bson:"interviewDateWithTime,omitempty" json:"interviewDateWithTime,omitempty"`
	InterviewMode         InterviewMode `bson:"interviewMode,omitempty" json:"interviewMode,omitempty"`
	JoiningDate           *time.Time    `bson:"joiningDate,omitempty" json:"joiningDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ApplicationView is an application denormalized with fields of the job it
// references. JobTitle and JobSlug are empty when the job has been deleted.
type ApplicationView struct {
	JobApplication `bson:",inline"`

	JobTitle string `json:"jobTitle,omitempty"`
	JobSlug  string `json:"jobSlug,omitempty"`
}

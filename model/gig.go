package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	GigStatusActive    = "active"
	GigStatusCompleted = "completed"
)

// StudentSummary is the student-side projection embedded in a gig's applicant.
type StudentSummary struct {
	ID    bson.ObjectID `bson:"_id" json:"id"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
}

// GigApplicant is the gig-side materialization of an application. Its _id is
// the same shared application id carried by the student-side copy.
type GigApplicant struct {
	ID         bson.ObjectID  `bson:"_id" json:"id"`
	Student    StudentSummary `bson:"student" json:"student"`
	Status     string         `bson:"status" json:"status"`
	AppliedAt  time.Time      `bson:"appliedAt" json:"appliedAt"`
	Bookmarked bool           `bson:"bookmarked" json:"bookmarked"`
	Boosted    bool           `bson:"boosted" json:"boosted"`
}

// LegacyApplication is the shape older gig documents stored under an
// "applications" field before the applicants array existed.
type LegacyApplication struct {
	ApplicantEmail string `bson:"applicantEmail" json:"applicantEmail"`
	ApplicantName  string `bson:"applicantName,omitempty" json:"applicantName,omitempty"`
	Status         string `bson:"status" json:"status"`
	AppliedAt      string `bson:"appliedAt" json:"appliedAt"`
}

// Gig document
type Gig struct {
	ID                     bson.ObjectID       `bson:"_id,omitempty" json:"id"`
	GigTitle               string              `bson:"gigTitle" json:"gigTitle"`
	Company                string              `bson:"company,omitempty" json:"company,omitempty"`
	CompanyID              bson.ObjectID       `bson:"companyId,omitempty" json:"companyId,omitempty"`
	Category               string              `bson:"category,omitempty" json:"category,omitempty"`
	Description            string              `bson:"description,omitempty" json:"description,omitempty"`
	Duration               string              `bson:"duration,omitempty" json:"duration,omitempty"`
	Stipend                string              `bson:"stipend,omitempty" json:"stipend,omitempty"`
	Location               string              `bson:"location,omitempty" json:"location,omitempty"`
	RequiredSkills         []string            `bson:"requiredSkills,omitempty" json:"requiredSkills,omitempty"`
	RequiredExperience     string              `bson:"requiredExperience,omitempty" json:"requiredExperience,omitempty"`
	NumberOfPositions      int                 `bson:"numberOfPositions,omitempty" json:"numberOfPositions,omitempty"`
	AdditionalRequirements string              `bson:"additionalRequirements,omitempty" json:"additionalRequirements,omitempty"`
	ApplicationDeadline    string              `bson:"applicationDeadline,omitempty" json:"applicationDeadline,omitempty"`
	DatePosted             time.Time           `bson:"datePosted,omitempty" json:"datePosted,omitempty"`
	Status                 string              `bson:"status" json:"status"`
	Applicants             []GigApplicant      `bson:"applicants,omitempty" json:"applicants,omitempty"`
	LegacyApplications     []LegacyApplication `bson:"applications,omitempty" json:"-"`
}

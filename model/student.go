package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GigSummary is the gig-side projection embedded in a student's application.
type GigSummary struct {
	ID       bson.ObjectID `bson:"_id" json:"id"`
	Title    string        `bson:"title" json:"title"`
	Company  string        `bson:"company,omitempty" json:"company,omitempty"`
	Duration string        `bson:"duration,omitempty" json:"duration,omitempty"`
	Stipend  string        `bson:"stipend,omitempty" json:"stipend,omitempty"`
	Location string        `bson:"location,omitempty" json:"location,omitempty"`
	Deadline string        `bson:"deadline,omitempty" json:"deadline,omitempty"`
}

// StudentApplication is the student-side materialization of an application.
// Its _id is the shared application id used to join against the gig-side copy.
type StudentApplication struct {
	ID         bson.ObjectID `bson:"_id" json:"id"`
	Gig        GigSummary    `bson:"gig" json:"gig"`
	Status     string        `bson:"status" json:"status"`
	AppliedAt  time.Time     `bson:"appliedAt" json:"appliedAt"`
	Bookmarked bool          `bson:"bookmarked" json:"bookmarked"`
	Boosted    bool          `bson:"boosted" json:"boosted"`
}

// Student document
type Student struct {
	ID             bson.ObjectID        `bson:"_id,omitempty" json:"id"`
	Name           string               `bson:"name" json:"name"`
	Email          string               `bson:"email" json:"email"`
	Image          string               `bson:"image,omitempty" json:"image,omitempty"`
	Description    string               `bson:"description,omitempty" json:"description,omitempty"`
	Status         string               `bson:"status,omitempty" json:"status,omitempty"`
	Skills         []string             `bson:"skills,omitempty" json:"skills,omitempty"`
	Gender         string               `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth    string               `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Phone          string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Education      string               `bson:"education,omitempty" json:"education,omitempty"`
	ReferredPeople []string             `bson:"referredPeople,omitempty" json:"referredPeople,omitempty"`
	Applications   []StudentApplication `bson:"applications" json:"applications"`
	CreatedAt      time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ApplicationByID scans the embedded array for the shared application id.
// Linear, but bounded by one student's application count.
func (s *Student) ApplicationByID(id bson.ObjectID) *StudentApplication {
	for i := range s.Applications {
		if s.Applications[i].ID == id {
			return &s.Applications[i]
		}
	}
	return nil
}

// HasAppliedTo reports whether any embedded application references the gig.
func (s *Student) HasAppliedTo(gigID bson.ObjectID) bool {
	for i := range s.Applications {
		if s.Applications[i].Gig.ID == gigID {
			return true
		}
	}
	return false
}

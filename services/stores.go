package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sidsmartz/SkillTag/model"
)

// StudentStore is the slice of the students collection the services need.
// Satisfied by repository.StudentRepository; tests swap in an in-memory fake.
type StudentStore interface {
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	Insert(ctx context.Context, s model.Student) (dup bool, err error)
	PushApplication(ctx context.Context, studentID bson.ObjectID, app model.StudentApplication) error
	SetApplicationStatus(ctx context.Context, studentID, appID bson.ObjectID, status string) error
	SetApplicationFlag(ctx context.Context, studentID, appID bson.ObjectID, field string, value bool) error
	UpdateProfile(ctx context.Context, email string, fields bson.M) error
}

// GigStore is the gig-collection counterpart.
type GigStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Gig, error)
	FindActive(ctx context.Context) ([]model.Gig, error)
	Insert(ctx context.Context, g model.Gig) (bson.ObjectID, error)
	PushApplicant(ctx context.Context, gigID bson.ObjectID, applicant model.GigApplicant) error
	SetApplicantStatus(ctx context.Context, appID bson.ObjectID, status string) error
	SetApplicantFlag(ctx context.Context, appID bson.ObjectID, field string, value bool) error
	MarkCompleted(ctx context.Context, gigID bson.ObjectID) error
	FindByApplicantEmail(ctx context.Context, email string) (*model.Gig, error)
}

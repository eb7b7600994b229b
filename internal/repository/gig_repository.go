package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/model"
)

type GigRepository struct {
	col *mongo.Collection
}

func NewGigRepository(db *mongo.Database) *GigRepository {
	return &GigRepository{col: db.Collection("gigs")}
}

func (r *GigRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Gig, error) {
	var g model.Gig
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GigRepository) FindActive(ctx context.Context) ([]model.Gig, error) {
	cur, err := r.col.Find(ctx, bson.M{"status": model.GigStatusActive})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var gigs []model.Gig
	if err := cur.All(ctx, &gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *GigRepository) Insert(ctx context.Context, g model.Gig) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, g)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// PushApplicant appends the gig-side copy of an application, guarded against
// duplicate ids so retries cannot double-append.
func (r *GigRepository) PushApplicant(ctx context.Context, gigID bson.ObjectID, applicant model.GigApplicant) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": gigID, "applicants._id": bson.M{"$ne": applicant.ID}},
		bson.M{"$push": bson.M{"applicants": applicant}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the gig vanished or this id was already pushed. Tell the two
		// apart so a vanished gig is not silently ignored.
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": gigID})
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.ErrNotFound
		}
	}
	return nil
}

// SetApplicantStatus updates the gig-side status copy, joined on the shared
// application id (never on array position).
func (r *GigRepository) SetApplicantStatus(ctx context.Context, appID bson.ObjectID, status string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"applicants._id": appID},
		bson.M{"$set": bson.M{"applicants.$.status": status}},
	)
	return err
}

// SetApplicantFlag flips bookmarked/boosted on the gig-side copy.
func (r *GigRepository) SetApplicantFlag(ctx context.Context, appID bson.ObjectID, field string, value bool) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"applicants._id": appID},
		bson.M{"$set": bson.M{"applicants.$." + field: value}},
	)
	return err
}

func (r *GigRepository) MarkCompleted(ctx context.Context, gigID bson.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": gigID},
		bson.M{"$set": bson.M{"status": model.GigStatusCompleted, "dateCompleted": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// FindByApplicantEmail returns a gig carrying an applicant with this email.
// Used as the public-profile fallback when no student document exists.
func (r *GigRepository) FindByApplicantEmail(ctx context.Context, email string) (*model.Gig, error) {
	var g model.Gig
	err := r.col.FindOne(ctx, bson.M{"applicants.student.email": email}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

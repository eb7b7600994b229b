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

type StudentRepository struct {
	col *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{col: db.Collection("students")}
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	var s model.Student
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Insert creates the student document. dup=true means the unique email index
// rejected it (code 11000) because a concurrent request got there first.
func (r *StudentRepository) Insert(ctx context.Context, s model.Student) (dup bool, err error) {
	_, err = r.col.InsertOne(ctx, s)
	if err == nil {
		return false, nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true, nil
	}
	return false, err
}

// PushApplication appends the student-side copy of an application. The
// "applications._id $ne" guard makes a retry with the same application id a
// no-op instead of a duplicate array entry.
func (r *StudentRepository) PushApplication(ctx context.Context, studentID bson.ObjectID, app model.StudentApplication) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": studentID, "applications._id": bson.M{"$ne": app.ID}},
		bson.M{
			"$push": bson.M{"applications": app},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	return err
}

// SetApplicationStatus updates the status of one embedded application,
// addressed by the shared id via the positional operator.
func (r *StudentRepository) SetApplicationStatus(ctx context.Context, studentID, appID bson.ObjectID, status string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": studentID, "applications._id": appID},
		bson.M{"$set": bson.M{
			"applications.$.status": status,
			"updatedAt":             time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// SetApplicationFlag flips bookmarked/boosted on one embedded application.
func (r *StudentRepository) SetApplicationFlag(ctx context.Context, studentID, appID bson.ObjectID, field string, value bool) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": studentID, "applications._id": appID},
		bson.M{"$set": bson.M{
			"applications.$." + field: value,
			"updatedAt":               time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// UpdateProfile applies the given profile fields to the student document.
func (r *StudentRepository) UpdateProfile(ctx context.Context, email string, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

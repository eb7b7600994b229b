package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/model"
)

type CompanyRepository struct {
	col *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{col: db.Collection("companies")}
}

func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*model.Company, error) {
	var co model.Company
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&co)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &co, nil
}

func (r *CompanyRepository) Insert(ctx context.Context, co model.Company) error {
	_, err := r.col.InsertOne(ctx, co)
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return apperr.ErrEmailTaken
	}
	return err
}

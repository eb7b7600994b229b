package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/model"
)

func TestCreateGigDefaults(t *testing.T) {
	gigs := newFakeGigStore()
	svc := NewGigService(gigs)

	company := model.Company{ID: bson.NewObjectID(), Name: "Acme", Email: "hr@acme.test"}
	g, err := svc.Create(context.Background(), company, dto.CreateGigRequest{
		GigTitle: "Poster design",
		Stipend:  "5000",
	})
	require.NoError(t, err)
	assert.False(t, g.ID.IsZero())
	assert.Equal(t, model.GigStatusActive, g.Status)
	assert.Equal(t, "Acme", g.Company)
	assert.Equal(t, company.ID, g.CompanyID)
	assert.False(t, g.DatePosted.IsZero())
	assert.NotNil(t, g.Applicants)
}

func TestListActiveFiltersCompleted(t *testing.T) {
	gigs := newFakeGigStore()
	svc := NewGigService(gigs)

	activeID := seedGig(gigs)
	doneID, _ := gigs.Insert(context.Background(), model.Gig{GigTitle: "Done", Status: model.GigStatusCompleted})

	views, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, activeID.Hex(), views[0].ID)
	assert.NotEqual(t, doneID.Hex(), views[0].ID)
}

func TestGetByIDValidatesHex(t *testing.T) {
	svc := NewGigService(newFakeGigStore())

	_, err := svc.GetByID(context.Background(), "zz")
	assert.ErrorIs(t, err, apperr.ErrInvalidID)

	_, err = svc.GetByID(context.Background(), bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCompleteEnforcesOwnership(t *testing.T) {
	gigs := newFakeGigStore()
	svc := NewGigService(gigs)

	owner := bson.NewObjectID()
	id, _ := gigs.Insert(context.Background(), model.Gig{GigTitle: "Owned", Status: model.GigStatusActive, CompanyID: owner})

	err := svc.Complete(context.Background(), id.Hex(), bson.NewObjectID())
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Equal(t, model.GigStatusActive, gigs.byID[id].Status)

	require.NoError(t, svc.Complete(context.Background(), id.Hex(), owner))
	assert.Equal(t, model.GigStatusCompleted, gigs.byID[id].Status)
}

func TestCompleteAllowsLegacyGigsWithoutOwner(t *testing.T) {
	gigs := newFakeGigStore()
	svc := NewGigService(gigs)
	id := seedGig(gigs)

	require.NoError(t, svc.Complete(context.Background(), id.Hex(), bson.NewObjectID()))
	assert.Equal(t, model.GigStatusCompleted, gigs.byID[id].Status)
}

func TestApplicantSummaryByEmail(t *testing.T) {
	gigs := newFakeGigStore()
	svc := NewGigService(gigs)

	id := seedGig(gigs)
	studentID := bson.NewObjectID()
	gigs.byID[id].Applicants = []model.GigApplicant{{
		ID:      bson.NewObjectID(),
		Student: model.StudentSummary{ID: studentID, Name: "Asha", Email: "asha@uni.edu"},
	}}

	summary, err := svc.ApplicantSummaryByEmail(context.Background(), "asha@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, studentID, summary.ID)

	_, err = svc.ApplicantSummaryByEmail(context.Background(), "nobody@uni.edu")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

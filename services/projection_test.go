package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sidsmartz/SkillTag/model"
)

func TestApplicantViewsPrefersCurrentShape(t *testing.T) {
	appID := bson.NewObjectID()
	g := &model.Gig{
		Applicants: []model.GigApplicant{{
			ID:      appID,
			Student: model.StudentSummary{ID: bson.NewObjectID(), Name: "Asha", Email: "asha@uni.edu"},
			Status:  StatusShortlisted,
		}},
		LegacyApplications: []model.LegacyApplication{{ApplicantEmail: "stale@uni.edu"}},
	}

	views := ApplicantViews(g)
	require.Len(t, views, 1)
	assert.Equal(t, appID.Hex(), views[0].ID)
	assert.Equal(t, "asha@uni.edu", views[0].Student.Email)
}

func TestApplicantViewsSynthesizesLegacyShape(t *testing.T) {
	g := &model.Gig{
		LegacyApplications: []model.LegacyApplication{
			{ApplicantEmail: "old@uni.edu", ApplicantName: "Old Hand", Status: "pending", AppliedAt: "2024-03-01T10:00:00Z"},
			{ApplicantEmail: "older@uni.edu", Status: "accepted", AppliedAt: "not-a-date"},
		},
	}

	views := ApplicantViews(g)
	require.Len(t, views, 2)

	assert.Equal(t, "old@uni.edu", views[0].Student.Email)
	assert.Equal(t, "Old Hand", views[0].Student.Name)
	assert.Equal(t, StatusApplied, views[0].Status, "legacy 'pending' maps to applied")
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), views[0].AppliedAt)

	assert.Equal(t, StatusSelected, views[1].Status, "legacy 'accepted' maps to selected")
	assert.True(t, views[1].AppliedAt.IsZero(), "unparseable timestamps fall back to zero")
}

func TestApplicantViewsEmptyGig(t *testing.T) {
	views := ApplicantViews(&model.Gig{})
	assert.Empty(t, views)
	assert.NotNil(t, views, "empty list, not null, so the UI can iterate")
}

func TestGigViewStripsApplicants(t *testing.T) {
	g := model.Gig{
		ID:                  bson.NewObjectID(),
		GigTitle:            "Poster design",
		Status:              model.GigStatusActive,
		NumberOfPositions:   3,
		ApplicationDeadline: "2026-09-30",
		Applicants:          []model.GigApplicant{{ID: bson.NewObjectID()}},
	}
	view := GigView(g)
	assert.Equal(t, g.ID.Hex(), view.ID)
	assert.Equal(t, "Poster design", view.GigTitle)
	assert.Equal(t, 3, view.NumberOfPositions)
}

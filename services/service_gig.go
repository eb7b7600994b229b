package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/model"
)

type GigService struct {
	gigs GigStore
}

func NewGigService(gigs GigStore) *GigService {
	return &GigService{gigs: gigs}
}

func (s *GigService) ListActive(ctx context.Context) ([]dto.GigView, error) {
	gigs, err := s.gigs.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]dto.GigView, 0, len(gigs))
	for _, g := range gigs {
		views = append(views, GigView(g))
	}
	return views, nil
}

// GetByID validates the identifier before touching the store so malformed
// ids come back as a 400 instead of an opaque driver error.
func (s *GigService) GetByID(ctx context.Context, idHex string) (*model.Gig, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}
	return s.gigs.FindByID(ctx, id)
}

func (s *GigService) Create(ctx context.Context, company model.Company, req dto.CreateGigRequest) (*model.Gig, error) {
	g := model.Gig{
		GigTitle:               req.GigTitle,
		Company:                company.Name,
		CompanyID:              company.ID,
		Category:               req.Category,
		Description:            req.Description,
		Duration:               req.Duration,
		Stipend:                req.Stipend,
		Location:               req.Location,
		RequiredSkills:         req.RequiredSkills,
		RequiredExperience:     req.RequiredExperience,
		NumberOfPositions:      req.NumberOfPositions,
		AdditionalRequirements: req.AdditionalRequirements,
		ApplicationDeadline:    req.ApplicationDeadline,
		DatePosted:             time.Now().UTC(),
		Status:                 model.GigStatusActive,
		Applicants:             []model.GigApplicant{},
	}
	id, err := s.gigs.Insert(ctx, g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	return &g, nil
}

// Complete marks a gig as done. Ownership is only enforced when the document
// records a posting company (older gigs predate companyId).
func (s *GigService) Complete(ctx context.Context, idHex string, companyID bson.ObjectID) error {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return apperr.ErrInvalidID
	}
	g, err := s.gigs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !g.CompanyID.IsZero() && g.CompanyID != companyID {
		return apperr.ErrForbidden
	}
	return s.gigs.MarkCompleted(ctx, id)
}

// ApplicantSummaryByEmail is the fallback for the public details endpoint:
// when no student document exists, the applicant summary embedded in a gig
// may still identify the person.
func (s *GigService) ApplicantSummaryByEmail(ctx context.Context, email string) (*model.StudentSummary, error) {
	gig, err := s.gigs.FindByApplicantEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	for _, a := range gig.Applicants {
		if a.Student.Email == email {
			summary := a.Student
			return &summary, nil
		}
	}
	return nil, apperr.ErrNotFound
}

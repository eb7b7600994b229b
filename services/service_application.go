package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/model"
)

// ApplicationService owns the application lifecycle: the fan-out create and
// every status/flag mutation that must land on both materializations.
type ApplicationService struct {
	students StudentStore
	gigs     GigStore
	resolver *StudentService
}

func NewApplicationService(students StudentStore, gigs GigStore) *ApplicationService {
	return &ApplicationService{
		students: students,
		gigs:     gigs,
		resolver: NewStudentService(students),
	}
}

// Apply creates one application: one generated id, pushed into the student's
// applications array and the gig's applicants array with the same fields.
// The id is generated exactly once before any write; every later status or
// flag update joins on it, so the two copies must never diverge here.
func (s *ApplicationService) Apply(ctx context.Context, email, name, gigIDHex string) error {
	student, err := s.resolver.ResolveByEmail(ctx, email, name)
	if err != nil {
		return err
	}

	gigID, err := bson.ObjectIDFromHex(gigIDHex)
	if err != nil {
		return apperr.ErrInvalidID
	}
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return err
	}

	if student.HasAppliedTo(gigID) {
		return apperr.ErrAlreadyApplied
	}

	appID := bson.NewObjectID()
	now := time.Now().UTC()

	studentApp := model.StudentApplication{
		ID: appID,
		Gig: model.GigSummary{
			ID:       gig.ID,
			Title:    gig.GigTitle,
			Company:  gig.Company,
			Duration: gig.Duration,
			Stipend:  gig.Stipend,
			Location: gig.Location,
			Deadline: gig.ApplicationDeadline,
		},
		Status:     StatusApplied,
		AppliedAt:  now,
		Bookmarked: false,
		Boosted:    false,
	}
	gigApplicant := model.GigApplicant{
		ID: appID,
		Student: model.StudentSummary{
			ID:    student.ID,
			Name:  student.Name,
			Email: student.Email,
		},
		Status:     StatusApplied,
		AppliedAt:  now,
		Bookmarked: false,
		Boosted:    false,
	}

	// Two non-transactional writes. Each is idempotent for this appID, so a
	// caller retry after a partial failure converges instead of duplicating.
	if err := s.students.PushApplication(ctx, student.ID, studentApp); err != nil {
		return err
	}
	return s.gigs.PushApplicant(ctx, gigID, gigApplicant)
}

// UpdateStatus moves an application through the pipeline and propagates the
// new status to both copies, keyed by the shared application id.
func (s *ApplicationService) UpdateStatus(ctx context.Context, studentEmail, appIDHex, next string) error {
	next = strings.ToLower(strings.TrimSpace(next))
	if !isKnownStatus(next) {
		return apperr.ErrInvalidTransition
	}

	student, appID, app, err := s.locate(ctx, studentEmail, appIDHex)
	if err != nil {
		return err
	}

	current := normalizeStatus(app.Status)
	if next != current && !canTransition(current, next) {
		return apperr.ErrInvalidTransition
	}

	// A same-value request is a retry of an already-applied transition. The
	// writes below are idempotent, so re-issue both instead of returning
	// early: if the earlier attempt died between the two copies, this is
	// what brings the gig side back in line.
	if err := s.students.SetApplicationStatus(ctx, student.ID, appID, next); err != nil {
		return err
	}
	return s.gigs.SetApplicantStatus(ctx, appID, next)
}

// ToggleBookmark flips the bookmark flag on both copies and reports the new
// value so the caller does not need a follow-up read.
func (s *ApplicationService) ToggleBookmark(ctx context.Context, email, appIDHex string) (bool, error) {
	return s.toggleFlag(ctx, email, appIDHex, FlagBookmarked)
}

// ToggleBoost flips the boost flag on both copies.
func (s *ApplicationService) ToggleBoost(ctx context.Context, email, appIDHex string) (bool, error) {
	return s.toggleFlag(ctx, email, appIDHex, FlagBoosted)
}

func (s *ApplicationService) toggleFlag(ctx context.Context, email, appIDHex, field string) (bool, error) {
	student, appID, app, err := s.locate(ctx, email, appIDHex)
	if err != nil {
		return false, err
	}

	var next bool
	switch field {
	case FlagBookmarked:
		next = !app.Bookmarked
	case FlagBoosted:
		next = !app.Boosted
	}

	if err := s.students.SetApplicationFlag(ctx, student.ID, appID, field, next); err != nil {
		return false, err
	}
	if err := s.gigs.SetApplicantFlag(ctx, appID, field, next); err != nil {
		return false, err
	}
	return next, nil
}

// locate finds the student-side copy, the primary materialization. A missing
// application here is NotFound regardless of what the gig side holds.
func (s *ApplicationService) locate(ctx context.Context, email, appIDHex string) (*model.Student, bson.ObjectID, *model.StudentApplication, error) {
	if email == "" {
		return nil, bson.ObjectID{}, nil, apperr.ErrNotAuthenticated
	}
	appID, err := bson.ObjectIDFromHex(appIDHex)
	if err != nil {
		return nil, bson.ObjectID{}, nil, apperr.ErrInvalidID
	}
	student, err := s.students.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, bson.ObjectID{}, nil, err
	}
	app := student.ApplicationByID(appID)
	if app == nil {
		return nil, bson.ObjectID{}, nil, apperr.ErrNotFound
	}
	return student, appID, app, nil
}

// MyApplications assembles the student's view with embedded gig summaries.
func (s *ApplicationService) MyApplications(ctx context.Context, email string) ([]dto.ApplicationView, error) {
	if email == "" {
		return nil, apperr.ErrNotAuthenticated
	}
	student, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	views := make([]dto.ApplicationView, 0, len(student.Applications))
	for _, app := range student.Applications {
		views = append(views, applicationView(app))
	}
	return views, nil
}

// GigApplicants assembles the company's view of one gig's applicant list.
func (s *ApplicationService) GigApplicants(ctx context.Context, gigIDHex string) ([]dto.ApplicantView, error) {
	gigID, err := bson.ObjectIDFromHex(gigIDHex)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	return ApplicantViews(gig), nil
}

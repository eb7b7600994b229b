package services

import (
	"time"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/model"
)

func applicationView(app model.StudentApplication) dto.ApplicationView {
	return dto.ApplicationView{
		ID:         app.ID.Hex(),
		Status:     normalizeStatus(app.Status),
		AppliedAt:  app.AppliedAt,
		Bookmarked: app.Bookmarked,
		Boosted:    app.Boosted,
		Gig: dto.GigSummaryView{
			ID:       app.Gig.ID.Hex(),
			Title:    app.Gig.Title,
			Company:  app.Gig.Company,
			Duration: app.Gig.Duration,
			Stipend:  app.Gig.Stipend,
			Location: app.Gig.Location,
			Deadline: app.Gig.Deadline,
		},
	}
}

// ApplicantViews projects a gig's applicant list. Older gig documents stored
// a flat "applications" array instead of "applicants"; those are synthesized
// into the current shape here so no historical data needs migrating.
func ApplicantViews(g *model.Gig) []dto.ApplicantView {
	if len(g.Applicants) == 0 && len(g.LegacyApplications) > 0 {
		return legacyApplicantViews(g.LegacyApplications)
	}

	views := make([]dto.ApplicantView, 0, len(g.Applicants))
	for _, a := range g.Applicants {
		views = append(views, dto.ApplicantView{
			ID:         a.ID.Hex(),
			Status:     normalizeStatus(a.Status),
			AppliedAt:  a.AppliedAt,
			Bookmarked: a.Bookmarked,
			Boosted:    a.Boosted,
			Student: dto.StudentSummaryView{
				ID:    a.Student.ID.Hex(),
				Name:  a.Student.Name,
				Email: a.Student.Email,
			},
		})
	}
	return views
}

func legacyApplicantViews(apps []model.LegacyApplication) []dto.ApplicantView {
	views := make([]dto.ApplicantView, 0, len(apps))
	for _, a := range apps {
		appliedAt, _ := time.Parse(time.RFC3339, a.AppliedAt)
		views = append(views, dto.ApplicantView{
			Status:    normalizeStatus(a.Status),
			AppliedAt: appliedAt,
			Student: dto.StudentSummaryView{
				Name:  a.ApplicantName,
				Email: a.ApplicantEmail,
			},
		})
	}
	return views
}

// GigView is the public listing projection (applicants stripped).
func GigView(g model.Gig) dto.GigView {
	return dto.GigView{
		ID:                  g.ID.Hex(),
		GigTitle:            g.GigTitle,
		Company:             g.Company,
		Category:            g.Category,
		Description:         g.Description,
		Duration:            g.Duration,
		Stipend:             g.Stipend,
		Location:            g.Location,
		RequiredSkills:      g.RequiredSkills,
		RequiredExperience:  g.RequiredExperience,
		NumberOfPositions:   g.NumberOfPositions,
		ApplicationDeadline: g.ApplicationDeadline,
		DatePosted:          g.DatePosted,
		Status:              g.Status,
	}
}

package dto

import "time"

// GigSummaryView mirrors the gig fields embedded in a student's application.
type GigSummaryView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"`
	Stipend  string `json:"stipend,omitempty"`
	Location string `json:"location,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

// ApplicationView is one entry of GET /api/applications/mine.
type ApplicationView struct {
	ID         string         `json:"id"`
	Status     string         `json:"status"`
	AppliedAt  time.Time      `json:"appliedAt"`
	Bookmarked bool           `json:"bookmarked"`
	Boosted    bool           `json:"boosted"`
	Gig        GigSummaryView `json:"gig"`
}

// StudentSummaryView mirrors the student fields embedded in a gig's applicant.
type StudentSummaryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ApplicantView is one entry of GET /api/gigs/:id/applicants.
type ApplicantView struct {
	ID         string             `json:"id"`
	Status     string             `json:"status"`
	AppliedAt  time.Time          `json:"appliedAt"`
	Bookmarked bool               `json:"bookmarked"`
	Boosted    bool               `json:"boosted"`
	Student    StudentSummaryView `json:"student"`
}

// UpdateStatusRequest moves one application through the pipeline. Email
// identifies the owning student; the path carries the application id.
type UpdateStatusRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

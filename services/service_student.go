package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/model"
)

type StudentService struct {
	students StudentStore
}

func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

// ResolveByEmail returns the student for the authenticated email, creating
// the document on first login. The unique email index backs this up: if a
// concurrent request inserts first, the duplicate-key signal sends us back to
// a re-fetch instead of failing the login.
func (s *StudentService) ResolveByEmail(ctx context.Context, email, name string) (*model.Student, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, apperr.ErrNotAuthenticated
	}

	student, err := s.students.FindByEmail(ctx, email)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if name == "" {
		name = "Unnamed"
	}
	now := time.Now().UTC()
	// dup means a concurrent login inserted first; either way the document
	// exists after this, so re-fetch it.
	if _, err := s.students.Insert(ctx, model.Student{
		Name:         name,
		Email:        email,
		Applications: []model.StudentApplication{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return nil, err
	}
	return s.students.FindByEmail(ctx, email)
}

func (s *StudentService) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	if email == "" {
		return nil, apperr.ErrNotAuthenticated
	}
	return s.students.FindByEmail(ctx, email)
}

func (s *StudentService) Profile(ctx context.Context, email string) (*dto.ProfileResponse, error) {
	student, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	status := student.Status
	if status == "" {
		status = "available"
	}
	skills := student.Skills
	if skills == nil {
		skills = []string{}
	}
	return &dto.ProfileResponse{
		Name:        student.Name,
		Email:       student.Email,
		Image:       student.Image,
		Description: student.Description,
		Status:      status,
		Skills:      skills,
		Gender:      student.Gender,
		DateOfBirth: student.DateOfBirth,
		Phone:       student.Phone,
		Education:   student.Education,
	}, nil
}

// UpdateProfile applies only the fields present in the request.
func (s *StudentService) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) error {
	if email == "" {
		return apperr.ErrNotAuthenticated
	}

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Skills != nil {
		fields["skills"] = *req.Skills
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		fields["dateOfBirth"] = *req.DateOfBirth
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Education != nil {
		fields["education"] = *req.Education
	}
	if len(fields) == 0 {
		return nil
	}
	return s.students.UpdateProfile(ctx, email, fields)
}

func (s *StudentService) Referrals(ctx context.Context, email string) ([]string, error) {
	student, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if student.ReferredPeople == nil {
		return []string{}, nil
	}
	return student.ReferredPeople, nil
}

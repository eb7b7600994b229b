package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/model"
)

// In-memory stores mimicking the mongo repositories' observable behavior:
// finds return copies, array updates join on the embedded application id, and
// pushes are idempotent per id.

type fakeStudentStore struct {
	mu          sync.Mutex
	byEmail     map[string]*model.Student
	dupOnInsert bool // simulate losing the unique-index race: doc appears, Insert reports dup
	inserts     int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{byEmail: map[string]*model.Student{}}
}

func cloneStudent(s *model.Student) *model.Student {
	c := *s
	if s.Applications != nil {
		c.Applications = append([]model.StudentApplication{}, s.Applications...)
	}
	return &c
}

func (f *fakeStudentStore) FindByEmail(_ context.Context, email string) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return cloneStudent(s), nil
}

func (f *fakeStudentStore) Insert(_ context.Context, s model.Student) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	if _, exists := f.byEmail[s.Email]; exists {
		return true, nil
	}
	if s.ID.IsZero() {
		s.ID = bson.NewObjectID()
	}
	f.byEmail[s.Email] = &s
	if f.dupOnInsert {
		return true, nil
	}
	return false, nil
}

func (f *fakeStudentStore) find(id bson.ObjectID) *model.Student {
	for _, s := range f.byEmail {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (f *fakeStudentStore) PushApplication(_ context.Context, studentID bson.ObjectID, app model.StudentApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.find(studentID)
	if s == nil {
		return nil
	}
	for _, existing := range s.Applications {
		if existing.ID == app.ID {
			return nil
		}
	}
	s.Applications = append(s.Applications, app)
	return nil
}

func (f *fakeStudentStore) SetApplicationStatus(_ context.Context, studentID, appID bson.ObjectID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.find(studentID)
	if s == nil {
		return apperr.ErrNotFound
	}
	for i := range s.Applications {
		if s.Applications[i].ID == appID {
			s.Applications[i].Status = status
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeStudentStore) SetApplicationFlag(_ context.Context, studentID, appID bson.ObjectID, field string, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.find(studentID)
	if s == nil {
		return apperr.ErrNotFound
	}
	for i := range s.Applications {
		if s.Applications[i].ID == appID {
			switch field {
			case FlagBookmarked:
				s.Applications[i].Bookmarked = value
			case FlagBoosted:
				s.Applications[i].Boosted = value
			}
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeStudentStore) UpdateProfile(_ context.Context, email string, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byEmail[email]
	if !ok {
		return apperr.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			s.Name = v.(string)
		case "description":
			s.Description = v.(string)
		case "status":
			s.Status = v.(string)
		case "skills":
			s.Skills = v.([]string)
		case "phone":
			s.Phone = v.(string)
		}
	}
	return nil
}

type fakeGigStore struct {
	mu                 sync.Mutex
	byID               map[bson.ObjectID]*model.Gig
	applicantStatusErr error // returned once by SetApplicantStatus, then cleared
}

func newFakeGigStore() *fakeGigStore {
	return &fakeGigStore{byID: map[bson.ObjectID]*model.Gig{}}
}

func cloneGig(g *model.Gig) *model.Gig {
	c := *g
	if g.Applicants != nil {
		c.Applicants = append([]model.GigApplicant{}, g.Applicants...)
	}
	return &c
}

func (f *fakeGigStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Gig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return cloneGig(g), nil
}

func (f *fakeGigStore) FindActive(_ context.Context) ([]model.Gig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Gig
	for _, g := range f.byID {
		if g.Status == model.GigStatusActive {
			out = append(out, *cloneGig(g))
		}
	}
	return out, nil
}

func (f *fakeGigStore) Insert(_ context.Context, g model.Gig) (bson.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g.ID = bson.NewObjectID()
	f.byID[g.ID] = &g
	return g.ID, nil
}

func (f *fakeGigStore) PushApplicant(_ context.Context, gigID bson.ObjectID, applicant model.GigApplicant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.byID[gigID]
	if !ok {
		return apperr.ErrNotFound
	}
	for _, existing := range g.Applicants {
		if existing.ID == applicant.ID {
			return nil
		}
	}
	g.Applicants = append(g.Applicants, applicant)
	return nil
}

func (f *fakeGigStore) findApplicant(appID bson.ObjectID) *model.GigApplicant {
	for _, g := range f.byID {
		for i := range g.Applicants {
			if g.Applicants[i].ID == appID {
				return &g.Applicants[i]
			}
		}
	}
	return nil
}

func (f *fakeGigStore) SetApplicantStatus(_ context.Context, appID bson.ObjectID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applicantStatusErr != nil {
		err := f.applicantStatusErr
		f.applicantStatusErr = nil
		return err
	}
	if a := f.findApplicant(appID); a != nil {
		a.Status = status
	}
	return nil
}

func (f *fakeGigStore) SetApplicantFlag(_ context.Context, appID bson.ObjectID, field string, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a := f.findApplicant(appID); a != nil {
		switch field {
		case FlagBookmarked:
			a.Bookmarked = value
		case FlagBoosted:
			a.Boosted = value
		}
	}
	return nil
}

func (f *fakeGigStore) MarkCompleted(_ context.Context, gigID bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.byID[gigID]
	if !ok {
		return apperr.ErrNotFound
	}
	g.Status = model.GigStatusCompleted
	return nil
}

func (f *fakeGigStore) FindByApplicantEmail(_ context.Context, email string) (*model.Gig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.byID {
		for _, a := range g.Applicants {
			if a.Student.Email == email {
				return cloneGig(g), nil
			}
		}
	}
	return nil, apperr.ErrNotFound
}

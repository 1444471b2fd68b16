package store

import (
	"sort"
	"sync"
	"time"

	"campushub/internal/model"

	"github.com/google/uuid"
)

// Store owns every record for the process lifetime. One map per entity kind,
// keyed by id (attendance by subject). A single RWMutex serializes writes so
// concurrent gin handlers never observe a half-applied mutation.
type Store struct {
	mu         sync.RWMutex
	events     map[string]model.Event
	notices    map[string]model.Notice
	complaints map[string]model.Complaint
	feedback   map[string]model.Feedback
	clubs      map[string]model.Club
	projects   map[string]model.Project
	classes    map[string]model.ClassSession
	attendance map[string]model.AttendanceRecord
}

// New constructs a store pre-populated with fixture data. Each call returns an
// independent instance, so tests get fresh state.
func New() *Store {
	s := &Store{
		events:     make(map[string]model.Event),
		notices:    make(map[string]model.Notice),
		complaints: make(map[string]model.Complaint),
		feedback:   make(map[string]model.Feedback),
		clubs:      make(map[string]model.Club),
		projects:   make(map[string]model.Project),
		classes:    make(map[string]model.ClassSession),
		attendance: make(map[string]model.AttendanceRecord),
	}
	s.seed()
	return s
}

func newID() string { return uuid.New().String() }

// -------- Events --------

// ListEvents returns all events, most recently created first.
func (s *Store) ListEvents() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GetEvent returns the event or nil if the id is unknown.
func (s *Store) GetEvent(id string) *model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.events[id]; ok {
		return &e
	}
	return nil
}

// CreateEvent stores a new event with a fresh id and createdAt stamp.
func (s *Store) CreateEvent(in model.CreateEvent) model.Event {
	e := model.Event{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
		CreatedAt:   time.Now().UTC(),
	}
	s.mu.Lock()
	s.events[e.ID] = e
	s.mu.Unlock()
	return e
}

// -------- Notices --------

// ListNotices returns all notices, most recently created first.
func (s *Store) ListNotices() []model.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Notice, 0, len(s.notices))
	for _, n := range s.notices {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GetNotice returns the notice or nil if the id is unknown.
func (s *Store) GetNotice(id string) *model.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n, ok := s.notices[id]; ok {
		return &n
	}
	return nil
}

// CreateNotice stores a new notice.
func (s *Store) CreateNotice(in model.CreateNotice) model.Notice {
	n := model.Notice{
		ID:        newID(),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Priority:  in.Priority,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.notices[n.ID] = n
	s.mu.Unlock()
	return n
}

// -------- Complaints --------

// ListComplaints returns all complaints, most recently created first.
func (s *Store) ListComplaints() []model.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GetComplaint returns the complaint or nil if the id is unknown.
func (s *Store) GetComplaint(id string) *model.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.complaints[id]; ok {
		return &c
	}
	return nil
}

// CreateComplaint stores a new complaint. Status always starts as Pending
// regardless of the payload; updatedAt starts equal to createdAt.
func (s *Store) CreateComplaint(in model.CreateComplaint) model.Complaint {
	now := time.Now().UTC()
	c := model.Complaint{
		ID:           newID(),
		Category:     in.Category,
		Subject:      in.Subject,
		Description:  in.Description,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Status:       model.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.mu.Lock()
	s.complaints[c.ID] = c
	s.mu.Unlock()
	return c
}

// UpdateComplaintStatus replaces the status and refreshes updatedAt. The value
// is not validated against the known status set; callers decide how strict to
// be. Returns nil if the id is unknown.
func (s *Store) UpdateComplaintStatus(id, status string) *model.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.complaints[id]
	if !ok {
		return nil
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	s.complaints[id] = c
	return &c
}

// -------- Feedback --------

// ListFeedback returns all feedback, most recently created first.
func (s *Store) ListFeedback() []model.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Feedback, 0, len(s.feedback))
	for _, f := range s.feedback {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// CreateFeedback stores a new feedback entry.
func (s *Store) CreateFeedback(in model.CreateFeedback) model.Feedback {
	f := model.Feedback{
		ID:         newID(),
		Rating:     in.Rating,
		Categories: in.Categories,
		Message:    in.Message,
		Anonymous:  in.Anonymous,
		Name:       in.Name,
		Email:      in.Email,
		CreatedAt:  time.Now().UTC(),
	}
	s.mu.Lock()
	s.feedback[f.ID] = f
	s.mu.Unlock()
	return f
}

// -------- Clubs --------

// ListClubs returns all clubs in no particular order.
func (s *Store) ListClubs() []model.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Club, 0, len(s.clubs))
	for _, c := range s.clubs {
		out = append(out, c)
	}
	return out
}

// GetClub returns the club or nil if the id is unknown.
func (s *Store) GetClub(id string) *model.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.clubs[id]; ok {
		return &c
	}
	return nil
}

// -------- Projects --------

// ListProjects returns all projects in no particular order.
func (s *Store) ListProjects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	return out
}

// ProjectsByClub returns the projects whose clubId matches. Linear scan; the
// collection is fixture-sized.
func (s *Store) ProjectsByClub(clubID string) []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Project{}
	for _, p := range s.projects {
		if p.ClubID == clubID {
			out = append(out, p)
		}
	}
	return out
}

// -------- Timetable --------

// ListClasses returns every timetable slot in no particular order.
func (s *Store) ListClasses() []model.ClassSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ClassSession, 0, len(s.classes))
	for _, c := range s.classes {
		out = append(out, c)
	}
	return out
}

// ClassesByDay returns the slots scheduled on the given day. Unknown days
// yield an empty slice, not an error.
func (s *Store) ClassesByDay(day string) []model.ClassSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.ClassSession{}
	for _, c := range s.classes {
		if c.Day == day {
			out = append(out, c)
		}
	}
	return out
}

// -------- Attendance --------

// ListAttendance returns the per-subject attendance summaries.
func (s *Store) ListAttendance() []model.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AttendanceRecord, 0, len(s.attendance))
	for _, a := range s.attendance {
		out = append(out, a)
	}
	return out
}

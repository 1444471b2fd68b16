package model

import "time"

// Event is a campus event shown on the events board.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // Academic, Sports, Cultural, Social
	Date        string    `json:"date"`     // YYYY-MM-DD
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateEvent is the insertable shape for Event; id and createdAt are server-assigned.
type CreateEvent struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
}

// Notice is an announcement on the notice board.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"` // Important, General, Academic, Administrative
	Priority  string    `json:"priority"` // High, Medium, Low
	CreatedAt time.Time `json:"createdAt"`
}

// CreateNotice is the insertable shape for Notice.
type CreateNotice struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Priority string `json:"priority" binding:"required"`
}

// Complaint statuses presented by the UI. The store does not enforce the set.
const (
	StatusPending     = "Pending"
	StatusUnderReview = "Under Review"
	StatusResolved    = "Resolved"
)

// Complaint is a student complaint or service request.
type Complaint struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"` // Academic, Infrastructure, Services, Other
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateComplaint is the insertable shape for Complaint. Status is always
// server-assigned, never part of the payload.
type CreateComplaint struct {
	Category     string `json:"category" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Description  string `json:"description" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone"`
}

// Feedback is a rating submission, optionally anonymous.
type Feedback struct {
	ID         string    `json:"id"`
	Rating     int       `json:"rating"`     // 1-5
	Categories string    `json:"categories"` // comma-separated: Academics,Facilities,...
	Message    string    `json:"message"`
	Anonymous  bool      `json:"anonymous"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateFeedback is the insertable shape for Feedback.
type CreateFeedback struct {
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Categories string `json:"categories" binding:"required"`
	Message    string `json:"message" binding:"required"`
	Anonymous  bool   `json:"anonymous"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// Club is a student club. Read-only: clubs are seeded, never created over the API.
type Club struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	MemberCount int    `json:"memberCount"`
	Logo        string `json:"logo"`
	IsActive    bool   `json:"isActive"`
}

// Project is a club project. ClubID is a soft reference to Club.ID.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ClubID      string   `json:"clubId"`
	Description string   `json:"description"`
	Status      string   `json:"status"` // Planning, In Progress, Completed
	TeamMembers []string `json:"teamMembers"`
	StartDate   string   `json:"startDate"`
}

// ClassSession is one slot in the weekly timetable.
type ClassSession struct {
	ID        string `json:"id"`
	Day       string `json:"day"` // Monday through Saturday
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
	Room      string `json:"room"`
	Faculty   string `json:"faculty"`
	Type      string `json:"type"` // Lecture, Lab, Tutorial
}

// AttendanceRecord is a per-subject attendance summary, keyed by subject name.
// Percentage comes from the fixture data and is never recomputed.
type AttendanceRecord struct {
	Subject    string `json:"subject"`
	Total      int    `json:"total"`
	Attended   int    `json:"attended"`
	Percentage int    `json:"percentage"`
}

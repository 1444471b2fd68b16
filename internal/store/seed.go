package store

import (
	"time"

	"campushub/internal/model"
)

// seed loads the fixture dataset. Runs once from New, before the store serves
// any request. Clubs, projects, timetable and attendance have no create API,
// so this is the only content they ever hold.
//
// Event and notice stamps are staggered a minute apart so the newest-first
// listings come back in a deterministic order.
func (s *Store) seed() {
	now := time.Now().UTC()

	events := []model.Event{
		{
			Title:       "Tech Summit 2024",
			Description: "Annual technology conference featuring industry leaders and innovation showcases",
			Category:    "Academic",
			Date:        "2024-11-15",
			Time:        "09:00 AM",
			Location:    "Main Auditorium",
			Featured:    true,
		},
		{
			Title:       "Campus Cricket Championship",
			Description: "Inter-department cricket tournament with exciting prizes",
			Category:    "Sports",
			Date:        "2024-11-20",
			Time:        "02:00 PM",
			Location:    "Sports Complex",
		},
		{
			Title:       "Cultural Fest - Harmony",
			Description: "Three-day cultural extravaganza with music, dance, and drama performances",
			Category:    "Cultural",
			Date:        "2024-12-01",
			Time:        "05:00 PM",
			Location:    "Open Air Theatre",
		},
		{
			Title:       "Coding Bootcamp",
			Description: "Intensive weekend workshop on modern web development technologies",
			Category:    "Academic",
			Date:        "2024-11-25",
			Time:        "10:00 AM",
			Location:    "Computer Lab A",
		},
		{
			Title:       "Social Service Drive",
			Description: "Community outreach program focusing on local neighborhood development",
			Category:    "Social",
			Date:        "2024-11-18",
			Time:        "08:00 AM",
			Location:    "Campus Gate",
		},
		{
			Title:       "Basketball Tournament",
			Description: "Annual inter-college basketball championship",
			Category:    "Sports",
			Date:        "2024-12-05",
			Time:        "03:00 PM",
			Location:    "Indoor Stadium",
		},
	}
	for i, e := range events {
		e.ID = newID()
		e.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		s.events[e.ID] = e
	}

	notices := []model.Notice{
		{
			Title:    "Exam Schedule Released",
			Content:  "The final examination schedule for Fall 2024 has been published. Please check the academic portal for details.",
			Category: "Academic",
			Priority: "High",
		},
		{
			Title:    "Library Hours Extended",
			Content:  "Library will remain open 24/7 during the examination period starting from November 20th.",
			Category: "General",
			Priority: "Medium",
		},
		{
			Title:    "Campus WiFi Maintenance",
			Content:  "Network maintenance scheduled for this Saturday from 2 AM to 6 AM. Services may be temporarily unavailable.",
			Category: "Administrative",
			Priority: "Medium",
		},
	}
	for i, n := range notices {
		n.ID = newID()
		n.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		s.notices[n.ID] = n
	}

	clubs := []model.Club{
		{
			Name:        "Tech Innovation Club",
			Category:    "Technology",
			Description: "Building innovative tech solutions and exploring emerging technologies",
			MemberCount: 85,
			Logo:        "TI",
			IsActive:    true,
		},
		{
			Name:        "Creative Arts Society",
			Category:    "Arts",
			Description: "Celebrating creativity through various art forms and exhibitions",
			MemberCount: 62,
			Logo:        "CA",
			IsActive:    true,
		},
		{
			Name:        "Music Ensemble",
			Category:    "Music",
			Description: "Creating harmonious melodies and performing at campus events",
			MemberCount: 45,
			Logo:        "ME",
			IsActive:    true,
		},
		{
			Name:        "Robotics Club",
			Category:    "Technology",
			Description: "Designing and building autonomous robots for competitions",
			MemberCount: 54,
			Logo:        "RC",
			IsActive:    true,
		},
		{
			Name:        "Photography Club",
			Category:    "Arts",
			Description: "Capturing moments and sharing visual stories through photography",
			MemberCount: 71,
			Logo:        "PC",
			IsActive:    true,
		},
		{
			Name:        "Literary Society",
			Category:    "Literature",
			Description: "Exploring literature, creative writing, and public speaking",
			MemberCount: 38,
			Logo:        "LS",
			IsActive:    true,
		},
	}
	clubIDs := make([]string, 0, len(clubs))
	for _, c := range clubs {
		c.ID = newID()
		s.clubs[c.ID] = c
		clubIDs = append(clubIDs, c.ID)
	}

	// Project club references come from the club ids generated in this pass.
	projects := []model.Project{
		{
			Name:        "Campus Mobile App",
			ClubID:      clubIDs[0],
			Description: "Developing a comprehensive mobile application for campus services",
			Status:      "In Progress",
			TeamMembers: []string{"Alice", "Bob", "Charlie", "Diana"},
			StartDate:   "2024-09-01",
		},
		{
			Name:        "Annual Art Exhibition",
			ClubID:      clubIDs[1],
			Description: "Organizing the yearly showcase of student artwork",
			Status:      "Planning",
			TeamMembers: []string{"Emma", "Frank", "Grace"},
			StartDate:   "2024-10-15",
		},
		{
			Name:        "Winter Concert Series",
			ClubID:      clubIDs[2],
			Description: "Planning and executing multiple musical performances",
			Status:      "In Progress",
			TeamMembers: []string{"Henry", "Iris", "Jack", "Kate", "Liam"},
			StartDate:   "2024-08-20",
		},
		{
			Name:        "Autonomous Rover",
			ClubID:      clubIDs[3],
			Description: "Building a self-navigating rover for the inter-college competition",
			Status:      "In Progress",
			TeamMembers: []string{"Mike", "Nina", "Oscar"},
			StartDate:   "2024-07-01",
		},
		{
			Name:        "Campus Photo Documentary",
			ClubID:      clubIDs[4],
			Description: "Creating a visual documentation of campus life through the year",
			Status:      "Completed",
			TeamMembers: []string{"Paul", "Quinn", "Rachel"},
			StartDate:   "2024-01-10",
		},
	}
	for _, p := range projects {
		p.ID = newID()
		s.projects[p.ID] = p
	}

	classes := []model.ClassSession{
		{Day: "Monday", StartTime: "09:00", EndTime: "10:30", Subject: "Data Structures", Room: "CS-101", Faculty: "Dr. Smith", Type: "Lecture"},
		{Day: "Monday", StartTime: "11:00", EndTime: "12:30", Subject: "Database Systems", Room: "CS-Lab-1", Faculty: "Prof. Johnson", Type: "Lab"},
		{Day: "Tuesday", StartTime: "10:00", EndTime: "11:30", Subject: "Web Development", Room: "CS-202", Faculty: "Dr. Williams", Type: "Lecture"},
		{Day: "Tuesday", StartTime: "14:00", EndTime: "15:30", Subject: "Operating Systems", Room: "CS-103", Faculty: "Prof. Brown", Type: "Tutorial"},
		{Day: "Wednesday", StartTime: "09:00", EndTime: "10:30", Subject: "Algorithms", Room: "CS-104", Faculty: "Dr. Davis", Type: "Lecture"},
		{Day: "Thursday", StartTime: "11:00", EndTime: "12:30", Subject: "Data Structures", Room: "CS-Lab-2", Faculty: "Dr. Smith", Type: "Lab"},
		{Day: "Friday", StartTime: "10:00", EndTime: "11:30", Subject: "Web Development", Room: "CS-Lab-3", Faculty: "Dr. Williams", Type: "Lab"},
	}
	for _, c := range classes {
		c.ID = newID()
		s.classes[c.ID] = c
	}

	attendance := []model.AttendanceRecord{
		{Subject: "Data Structures", Total: 40, Attended: 36, Percentage: 90},
		{Subject: "Database Systems", Total: 38, Attended: 34, Percentage: 89},
		{Subject: "Web Development", Total: 42, Attended: 38, Percentage: 90},
		{Subject: "Operating Systems", Total: 40, Attended: 32, Percentage: 80},
		{Subject: "Algorithms", Total: 36, Attended: 30, Percentage: 83},
	}
	for _, a := range attendance {
		s.attendance[a.Subject] = a
	}
}

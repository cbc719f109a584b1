package storage

import "time"

// ChatMessage is one recorded chat turn.
type ChatMessage struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Enrollment is a course enrollment request.
type Enrollment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CourseID  int       `json:"course_id"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is a message from the contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a showcased student project.
type Project struct {
	ID          int64     `json:"id"`
	StudentName string    `json:"student_name"`
	Course      string    `json:"course"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	Shares      int       `json:"shares"`
	Protected   bool      `json:"protected"`
	CreatedAt   time.Time `json:"upload_date"`
}

// Staff is a staff account. The password hash never leaves the
// storage layer.
type Staff struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Email     string     `json:"email,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active"`
}

// StaffActivity is one entry in the staff audit log.
type StaffActivity struct {
	ID           int64     `json:"id"`
	StaffID      int64     `json:"staff_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"timestamp"`
}

// Registration statuses for event registrations.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// EventRegistration is a visitor's registration for an event, tracked
// through the staff approval workflow.
type EventRegistration struct {
	ID                  int64      `json:"id"`
	EventName           string     `json:"event_name"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	ExperienceLevel     string     `json:"experience_level,omitempty"`
	SpecialRequirements string     `json:"special_requirements,omitempty"`
	Status              string     `json:"status"`
	RegisteredAt        time.Time  `json:"registration_date"`
	ActionByStaffID     *int64     `json:"action_by_staff_id,omitempty"`
	ActionAt            *time.Time `json:"action_date,omitempty"`
	StaffName           string     `json:"staff_name,omitempty"`
}

// RegistrationStats summarizes event registrations for the dashboard.
type RegistrationStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

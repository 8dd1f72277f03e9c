package model

import "time"

// ReportState tracks the handling of a problem report.
type ReportState string

const (
	ReportStateNew        ReportState = "New"
	ReportStateInProgress ReportState = "In progress"
	ReportStateResolved   ReportState = "Resolved"
)

// Feedback is a user rating of a trail. Deleting a trail or user leaves feedback
// referencing it dangling; there is no cascade.
type Feedback struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"idUser"`
	TrailID   string    `gorm:"type:varchar(36);not null;index" json:"idTrail"`
	Text      string    `gorm:"type:text" json:"text"`
	Rating    int       `gorm:"not null;index" json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName sets the table name for Feedback.
func (Feedback) TableName() string {
	return "feedbacks"
}

// Report is a user-submitted problem report about a trail. Same dangling-reference
// caveat as Feedback.
type Report struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string      `gorm:"type:varchar(36);not null;index" json:"idUser"`
	TrailID   string      `gorm:"type:varchar(36);not null;index" json:"idTrail"`
	Title     string      `gorm:"type:varchar(255);not null" json:"title"`
	Text      string      `gorm:"type:text;not null" json:"text"`
	State     ReportState `gorm:"type:varchar(16);not null;default:'New'" json:"state"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName sets the table name for Report.
func (Report) TableName() string {
	return "reports"
}

package models

import "time"

// Project statuses.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectPaused    = "paused"
)

type Project struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `json:"description"`
	ClientID    int        `gorm:"index" json:"clientId"`
	Status      string     `gorm:"not null;default:'active'" json:"status"`
	HourlyRate  *string    `gorm:"type:decimal(10,2)" json:"hourlyRate"`
	TotalBudget *string    `gorm:"type:decimal(10,2)" json:"totalBudget"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ProjectWithClient is a project enriched with its client at read time.
// Client is nil when the clientId no longer resolves; deletes do not
// cascade, so a dangling reference is a normal condition here.
type ProjectWithClient struct {
	Project
	Client *Client `json:"client"`
}

// CreateProjectInput defines the expected JSON structure for creating a project
type CreateProjectInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ClientID    int     `json:"clientId" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=active completed paused"`
	HourlyRate  *string `json:"hourlyRate"`
	TotalBudget *string `json:"totalBudget"`
	StartDate   *Date   `json:"startDate"`
	EndDate     *Date   `json:"endDate"`
}

// UpdateProjectInput defines the expected JSON structure for updating a project
type UpdateProjectInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ClientID    *int    `json:"clientId"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed paused"`
	HourlyRate  *string `json:"hourlyRate"`
	TotalBudget *string `json:"totalBudget"`
	StartDate   *Date   `json:"startDate"`
	EndDate     *Date   `json:"endDate"`
}

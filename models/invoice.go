package models

import "time"

// Invoice statuses.
const (
	InvoicePending   = "pending"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
)

// Invoice amounts are decimal strings end to end; they are parsed to
// float64 only when aggregating.
type Invoice struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNumber string     `gorm:"uniqueIndex;not null" json:"invoiceNumber"`
	ClientID      int        `gorm:"index" json:"clientId"`
	ProjectID     *int       `gorm:"index" json:"projectId"`
	Amount        string     `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        string     `gorm:"not null;default:'pending'" json:"status"`
	IssueDate     time.Time  `gorm:"not null" json:"issueDate"`
	DueDate       time.Time  `gorm:"not null" json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate"`
	Description   *string    `json:"description"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// InvoiceWithProject is an invoice enriched with its client and project.
// Both joins are nullable: the project reference is optional to begin
// with, and either side may have been deleted since.
type InvoiceWithProject struct {
	Invoice
	Client  *Client  `json:"client"`
	Project *Project `json:"project"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	ClientID    int     `json:"clientId" binding:"required"`
	ProjectID   *int    `json:"projectId"`
	Amount      string  `json:"amount" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending paid overdue cancelled"`
	IssueDate   *Date   `json:"issueDate"`
	DueDate     Date    `json:"dueDate" binding:"required"`
	Description *string `json:"description"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	ClientID    *int    `json:"clientId"`
	ProjectID   *int    `json:"projectId"`
	Amount      *string `json:"amount"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending paid overdue cancelled"`
	IssueDate   *Date   `json:"issueDate"`
	DueDate     *Date   `json:"dueDate"`
	Description *string `json:"description"`
}

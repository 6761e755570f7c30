package storage

import (
	"context"

	"freelancerdash-backend/models"
)

// Store owns all entity state: CRUD for clients, projects and invoices
// plus the derived read operations the dashboard is built on.
//
// The contract is the same for every backing. Not-found resolves to a nil
// result with a nil error, never an error value; deletes report success
// with a bool. Errors are reserved for backing failures (a database going
// away), which the in-memory implementation cannot produce. The context
// lets a database-backed store honor caller deadlines; the in-memory one
// ignores it.
type Store interface {
	// Clients
	GetClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id int) (*models.Client, error)
	CreateClient(ctx context.Context, input models.CreateClientInput) (*models.Client, error)
	UpdateClient(ctx context.Context, id int, input models.UpdateClientInput) (*models.Client, error)
	DeleteClient(ctx context.Context, id int) (bool, error)

	// Projects
	GetProjects(ctx context.Context) ([]models.ProjectWithClient, error)
	GetProject(ctx context.Context, id int) (*models.ProjectWithClient, error)
	GetProjectsByClient(ctx context.Context, clientID int) ([]models.Project, error)
	CreateProject(ctx context.Context, input models.CreateProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, input models.UpdateProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) (bool, error)

	// Invoices
	GetInvoices(ctx context.Context) ([]models.InvoiceWithProject, error)
	GetInvoice(ctx context.Context, id int) (*models.InvoiceWithProject, error)
	GetInvoicesByClient(ctx context.Context, clientID int) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, input models.CreateInvoiceInput) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id int, input models.UpdateInvoiceInput) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int) (bool, error)

	// Dashboard
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
	GetTopClientsByRevenue(ctx context.Context, limit int) ([]models.ClientRevenue, error)
	GetMonthlyEarnings(ctx context.Context) ([]models.MonthlyEarning, error)
}

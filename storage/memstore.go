package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"freelancerdash-backend/models"
)

// MemStore is the in-memory Store. A single mutex covers the three
// collections and the invoice counter, so every operation is atomic and
// id / invoice-number monotonicity holds under concurrent callers.
//
// References are not validated on write; a dangling clientId or projectId
// resolves to a nil join on read.
type MemStore struct {
	mu             sync.Mutex
	clients        collection[models.Client]
	projects       collection[models.Project]
	invoices       collection[models.Invoice]
	invoiceCounter int
}

func NewMemStore() *MemStore {
	return &MemStore{
		clients:        newCollection[models.Client](),
		projects:       newCollection[models.Project](),
		invoices:       newCollection[models.Invoice](),
		invoiceCounter: 1,
	}
}

// Clients

func (s *MemStore) GetClients(ctx context.Context) ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients.list(), nil
}

func (s *MemStore) GetClient(ctx context.Context, id int) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients.get(id)
	if !ok {
		return nil, nil
	}
	return &client, nil
}

func (s *MemStore) CreateClient(ctx context.Context, input models.CreateClientInput) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client := models.Client{
		ID:        s.clients.allocID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		Address:   input.Address,
		CreatedAt: time.Now(),
	}
	s.clients.set(client.ID, client)
	return &client, nil
}

func (s *MemStore) UpdateClient(ctx context.Context, id int, input models.UpdateClientInput) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients.get(id)
	if !ok {
		return nil, nil
	}
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Company != nil {
		client.Company = input.Company
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	s.clients.set(id, client)
	return &client, nil
}

func (s *MemStore) DeleteClient(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Hard delete, no cascade: the client's projects and invoices stay.
	return s.clients.delete(id), nil
}

// Projects

func (s *MemStore) GetProjects(ctx context.Context) ([]models.ProjectWithClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := s.projects.list()
	joined := make([]models.ProjectWithClient, 0, len(projects))
	for _, p := range projects {
		joined = append(joined, models.ProjectWithClient{Project: p, Client: s.clientRef(p.ClientID)})
	}
	return joined, nil
}

func (s *MemStore) GetProject(ctx context.Context, id int) (*models.ProjectWithClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects.get(id)
	if !ok {
		return nil, nil
	}
	return &models.ProjectWithClient{Project: p, Client: s.clientRef(p.ClientID)}, nil
}

func (s *MemStore) GetProjectsByClient(ctx context.Context, clientID int) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.Project{}
	for _, p := range s.projects.list() {
		if p.ClientID == clientID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *MemStore) CreateProject(ctx context.Context, input models.CreateProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := input.Status
	if status == "" {
		status = models.ProjectActive
	}
	project := models.Project{
		ID:          s.projects.allocID(),
		Title:       input.Title,
		Description: input.Description,
		ClientID:    input.ClientID,
		Status:      status,
		HourlyRate:  input.HourlyRate,
		TotalBudget: input.TotalBudget,
		StartDate:   input.StartDate.TimePtr(),
		EndDate:     input.EndDate.TimePtr(),
		CreatedAt:   time.Now(),
	}
	s.projects.set(project.ID, project)
	return &project, nil
}

func (s *MemStore) UpdateProject(ctx context.Context, id int, input models.UpdateProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects.get(id)
	if !ok {
		return nil, nil
	}
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.ClientID != nil {
		project.ClientID = *input.ClientID
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.HourlyRate != nil {
		project.HourlyRate = input.HourlyRate
	}
	if input.TotalBudget != nil {
		project.TotalBudget = input.TotalBudget
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate.TimePtr()
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate.TimePtr()
	}
	s.projects.set(id, project)
	return &project, nil
}

func (s *MemStore) DeleteProject(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects.delete(id), nil
}

// Invoices

func (s *MemStore) GetInvoices(ctx context.Context) ([]models.InvoiceWithProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoices := s.invoices.list()
	joined := make([]models.InvoiceWithProject, 0, len(invoices))
	for _, inv := range invoices {
		joined = append(joined, s.joinInvoice(inv))
	}
	return joined, nil
}

func (s *MemStore) GetInvoice(ctx context.Context, id int) (*models.InvoiceWithProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices.get(id)
	if !ok {
		return nil, nil
	}
	joined := s.joinInvoice(inv)
	return &joined, nil
}

func (s *MemStore) GetInvoicesByClient(ctx context.Context, clientID int) ([]models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.Invoice{}
	for _, inv := range s.invoices.list() {
		if inv.ClientID == clientID {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

func (s *MemStore) CreateInvoice(ctx context.Context, input models.CreateInvoiceInput) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The invoice number runs on its own counter, independent of ids.
	// %03d widens past 999 instead of wrapping.
	number := fmt.Sprintf("INV-%03d", s.invoiceCounter)
	s.invoiceCounter++

	invoice := newInvoice(s.invoices.allocID(), number, input, time.Now())
	s.invoices.set(invoice.ID, invoice)
	return &invoice, nil
}

func (s *MemStore) UpdateInvoice(ctx context.Context, id int, input models.UpdateInvoiceInput) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice, ok := s.invoices.get(id)
	if !ok {
		return nil, nil
	}
	mergeInvoice(&invoice, input, time.Now())
	s.invoices.set(id, invoice)
	return &invoice, nil
}

func (s *MemStore) DeleteInvoice(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoices.delete(id), nil
}

// Dashboard

func (s *MemStore) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeDashboardStats(s.clients.list(), s.invoices.list(), time.Now()), nil
}

func (s *MemStore) GetTopClientsByRevenue(ctx context.Context, limit int) ([]models.ClientRevenue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeTopClientsByRevenue(s.clients.list(), s.projects.list(), s.invoices.list(), limit), nil
}

func (s *MemStore) GetMonthlyEarnings(ctx context.Context) ([]models.MonthlyEarning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeMonthlyEarnings(s.invoices.list()), nil
}

// clientRef resolves a clientId to a copy of the client, or nil when the
// reference dangles. Callers must hold the lock.
func (s *MemStore) clientRef(clientID int) *models.Client {
	client, ok := s.clients.get(clientID)
	if !ok {
		return nil
	}
	return &client
}

func (s *MemStore) joinInvoice(inv models.Invoice) models.InvoiceWithProject {
	joined := models.InvoiceWithProject{Invoice: inv, Client: s.clientRef(inv.ClientID)}
	if inv.ProjectID != nil {
		if p, ok := s.projects.get(*inv.ProjectID); ok {
			joined.Project = &p
		}
	}
	return joined
}

// newInvoice applies creation defaults: pending status, issue date of now,
// and paidDate stamped only when the invoice is born paid.
func newInvoice(id int, number string, input models.CreateInvoiceInput, now time.Time) models.Invoice {
	status := input.Status
	if status == "" {
		status = models.InvoicePending
	}
	issueDate := now
	if input.IssueDate != nil {
		issueDate = input.IssueDate.Time
	}
	var paidDate *time.Time
	if status == models.InvoicePaid {
		t := now
		paidDate = &t
	}
	return models.Invoice{
		ID:            id,
		InvoiceNumber: number,
		ClientID:      input.ClientID,
		ProjectID:     input.ProjectID,
		Amount:        input.Amount,
		Status:        status,
		IssueDate:     issueDate,
		DueDate:       input.DueDate.Time,
		PaidDate:      paidDate,
		Description:   input.Description,
		CreatedAt:     now,
	}
}

// mergeInvoice applies a partial update. A status of "paid" refreshes
// paidDate to now; any other status leaves the existing paidDate alone,
// so the marker is sticky once set.
func mergeInvoice(invoice *models.Invoice, input models.UpdateInvoiceInput, now time.Time) {
	if input.ClientID != nil {
		invoice.ClientID = *input.ClientID
	}
	if input.ProjectID != nil {
		invoice.ProjectID = input.ProjectID
	}
	if input.Amount != nil {
		invoice.Amount = *input.Amount
	}
	if input.IssueDate != nil {
		invoice.IssueDate = input.IssueDate.Time
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate.Time
	}
	if input.Description != nil {
		invoice.Description = input.Description
	}
	if input.Status != nil {
		invoice.Status = *input.Status
		if *input.Status == models.InvoicePaid {
			t := now
			invoice.PaidDate = &t
		}
	}
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"freelancerdash-backend/models"
)

const invoiceCounterName = "invoice_number"

// Counter is a named monotonic counter row. The invoice number counter
// lives here rather than being derived from stored invoices, so deleting
// the newest invoice can never recycle its number.
type Counter struct {
	Name  string `gorm:"primaryKey"`
	Value int    `gorm:"not null"`
}

// GormStore backs the Store contract with a relational database. Each
// operation is a single query or transaction; derived analytics load the
// affected tables and run the same aggregation code as the in-memory
// store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.Client{}, &models.Project{}, &models.Invoice{}, &Counter{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Clients

func (s *GormStore) GetClients(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	err := s.db.WithContext(ctx).Order("id").Find(&clients).Error
	return clients, err
}

func (s *GormStore) GetClient(ctx context.Context, id int) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (s *GormStore) CreateClient(ctx context.Context, input models.CreateClientInput) (*models.Client, error) {
	client := models.Client{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Address: input.Address,
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *GormStore) UpdateClient(ctx context.Context, id int, input models.UpdateClientInput) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
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
	if err := s.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *GormStore) DeleteClient(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Client{}, id)
	return res.RowsAffected > 0, res.Error
}

// Projects

func (s *GormStore) GetProjects(ctx context.Context) ([]models.ProjectWithClient, error) {
	projects := []models.Project{}
	if err := s.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	clients, err := s.clientsByID(ctx)
	if err != nil {
		return nil, err
	}
	joined := make([]models.ProjectWithClient, 0, len(projects))
	for _, p := range projects {
		joined = append(joined, models.ProjectWithClient{Project: p, Client: clients[p.ClientID]})
	}
	return joined, nil
}

func (s *GormStore) GetProject(ctx context.Context, id int) (*models.ProjectWithClient, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	client, err := s.GetClient(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	return &models.ProjectWithClient{Project: project, Client: client}, nil
}

func (s *GormStore) GetProjectsByClient(ctx context.Context, clientID int) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id").Find(&projects).Error
	return projects, err
}

func (s *GormStore) CreateProject(ctx context.Context, input models.CreateProjectInput) (*models.Project, error) {
	status := input.Status
	if status == "" {
		status = models.ProjectActive
	}
	project := models.Project{
		Title:       input.Title,
		Description: input.Description,
		ClientID:    input.ClientID,
		Status:      status,
		HourlyRate:  input.HourlyRate,
		TotalBudget: input.TotalBudget,
		StartDate:   input.StartDate.TimePtr(),
		EndDate:     input.EndDate.TimePtr(),
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *GormStore) UpdateProject(ctx context.Context, id int, input models.UpdateProjectInput) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
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
	if err := s.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *GormStore) DeleteProject(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Project{}, id)
	return res.RowsAffected > 0, res.Error
}

// Invoices

func (s *GormStore) GetInvoices(ctx context.Context) ([]models.InvoiceWithProject, error) {
	invoices := []models.Invoice{}
	if err := s.db.WithContext(ctx).Order("id").Find(&invoices).Error; err != nil {
		return nil, err
	}
	clients, err := s.clientsByID(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectsByID(ctx)
	if err != nil {
		return nil, err
	}
	joined := make([]models.InvoiceWithProject, 0, len(invoices))
	for _, inv := range invoices {
		entry := models.InvoiceWithProject{Invoice: inv, Client: clients[inv.ClientID]}
		if inv.ProjectID != nil {
			entry.Project = projects[*inv.ProjectID]
		}
		joined = append(joined, entry)
	}
	return joined, nil
}

func (s *GormStore) GetInvoice(ctx context.Context, id int) (*models.InvoiceWithProject, error) {
	var invoice models.Invoice
	if err := s.db.WithContext(ctx).First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	client, err := s.GetClient(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}
	joined := models.InvoiceWithProject{Invoice: invoice, Client: client}
	if invoice.ProjectID != nil {
		var project models.Project
		err := s.db.WithContext(ctx).First(&project, *invoice.ProjectID).Error
		switch {
		case err == nil:
			joined.Project = &project
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}
	return &joined, nil
}

func (s *GormStore) GetInvoicesByClient(ctx context.Context, clientID int) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id").Find(&invoices).Error
	return invoices, err
}

func (s *GormStore) CreateInvoice(ctx context.Context, input models.CreateInvoiceInput) (*models.Invoice, error) {
	var created models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter := Counter{Name: invoiceCounterName}
		if err := tx.FirstOrCreate(&counter, Counter{Name: invoiceCounterName}).Error; err != nil {
			return err
		}
		counter.Value++
		if err := tx.Model(&Counter{}).Where("name = ?", invoiceCounterName).
			Update("value", counter.Value).Error; err != nil {
			return err
		}
		invoice := newInvoice(0, fmt.Sprintf("INV-%03d", counter.Value), input, time.Now())
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		created = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *GormStore) UpdateInvoice(ctx context.Context, id int, input models.UpdateInvoiceInput) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.WithContext(ctx).First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	mergeInvoice(&invoice, input, time.Now())
	if err := s.db.WithContext(ctx).Save(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *GormStore) DeleteInvoice(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Invoice{}, id)
	return res.RowsAffected > 0, res.Error
}

// Dashboard

func (s *GormStore) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	clients, invoices, _, err := s.snapshot(ctx, false)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return computeDashboardStats(clients, invoices, time.Now()), nil
}

func (s *GormStore) GetTopClientsByRevenue(ctx context.Context, limit int) ([]models.ClientRevenue, error) {
	clients, invoices, projects, err := s.snapshot(ctx, true)
	if err != nil {
		return nil, err
	}
	return computeTopClientsByRevenue(clients, projects, invoices, limit), nil
}

func (s *GormStore) GetMonthlyEarnings(ctx context.Context) ([]models.MonthlyEarning, error) {
	invoices := []models.Invoice{}
	if err := s.db.WithContext(ctx).Order("id").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return computeMonthlyEarnings(invoices), nil
}

// snapshot loads the tables the aggregations read from.
func (s *GormStore) snapshot(ctx context.Context, withProjects bool) ([]models.Client, []models.Invoice, []models.Project, error) {
	clients := []models.Client{}
	if err := s.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, nil, nil, err
	}
	invoices := []models.Invoice{}
	if err := s.db.WithContext(ctx).Order("id").Find(&invoices).Error; err != nil {
		return nil, nil, nil, err
	}
	projects := []models.Project{}
	if withProjects {
		if err := s.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
			return nil, nil, nil, err
		}
	}
	return clients, invoices, projects, nil
}

func (s *GormStore) clientsByID(ctx context.Context) (map[int]*models.Client, error) {
	clients := []models.Client{}
	if err := s.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]*models.Client, len(clients))
	for i := range clients {
		byID[clients[i].ID] = &clients[i]
	}
	return byID, nil
}

func (s *GormStore) projectsByID(ctx context.Context) (map[int]*models.Project, error) {
	projects := []models.Project{}
	if err := s.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]*models.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}
	return byID, nil
}

package storage

import (
	"context"
	"time"

	"freelancerdash-backend/models"
)

// SeedSampleData loads a small demo dataset through the public store API,
// so ids, invoice numbers and creation defaults are assigned the normal
// way. Intended for the in-memory store on fresh startups.
func SeedSampleData(ctx context.Context, store Store) error {
	sampleClients := []models.CreateClientInput{
		{
			Name:    "Tech Solutions Inc",
			Email:   "contact@techsolutions.com",
			Phone:   strPtr("+1 (555) 123-4567"),
			Company: strPtr("Tech Solutions Inc"),
			Address: strPtr("123 Business Ave, New York, NY 10001"),
		},
		{
			Name:    "Digital Marketing Co",
			Email:   "hello@digitalmarketing.com",
			Phone:   strPtr("+1 (555) 987-6543"),
			Company: strPtr("Digital Marketing Co"),
			Address: strPtr("456 Marketing St, San Francisco, CA 94105"),
		},
		{
			Name:    "StartupXYZ",
			Email:   "founder@startupxyz.com",
			Phone:   strPtr("+1 (555) 456-7890"),
			Company: strPtr("StartupXYZ"),
			Address: strPtr("789 Innovation Blvd, Austin, TX 73301"),
		},
	}
	clients := make([]*models.Client, 0, len(sampleClients))
	for _, input := range sampleClients {
		client, err := store.CreateClient(ctx, input)
		if err != nil {
			return err
		}
		clients = append(clients, client)
	}

	sampleProjects := []models.CreateProjectInput{
		{
			Title:       "E-commerce Website Development",
			Description: strPtr("Building a modern e-commerce platform with React and Node.js"),
			ClientID:    clients[0].ID,
			Status:      models.ProjectActive,
			HourlyRate:  strPtr("125"),
			TotalBudget: strPtr("15000"),
			StartDate:   datePtr(2024, time.January, 15),
			EndDate:     datePtr(2024, time.June, 15),
		},
		{
			Title:       "SEO Campaign Management",
			Description: strPtr("Complete SEO optimization and monthly campaign management"),
			ClientID:    clients[1].ID,
			Status:      models.ProjectActive,
			HourlyRate:  strPtr("85"),
			TotalBudget: strPtr("8500"),
			StartDate:   datePtr(2024, time.February, 1),
			EndDate:     datePtr(2024, time.August, 1),
		},
		{
			Title:       "Mobile App Development",
			Description: strPtr("Cross-platform mobile app using React Native"),
			ClientID:    clients[2].ID,
			Status:      models.ProjectCompleted,
			HourlyRate:  strPtr("150"),
			TotalBudget: strPtr("25000"),
			StartDate:   datePtr(2023, time.September, 1),
			EndDate:     datePtr(2024, time.January, 31),
		},
	}
	projects := make([]*models.Project, 0, len(sampleProjects))
	for _, input := range sampleProjects {
		project, err := store.CreateProject(ctx, input)
		if err != nil {
			return err
		}
		projects = append(projects, project)
	}

	sampleInvoices := []models.CreateInvoiceInput{
		{
			ClientID:    clients[0].ID,
			ProjectID:   &projects[0].ID,
			Amount:      "5000",
			Status:      models.InvoicePaid,
			IssueDate:   datePtr(2024, time.January, 30),
			DueDate:     date(2024, time.February, 29),
			Description: strPtr("Website development - Phase 1"),
		},
		{
			ClientID:    clients[1].ID,
			ProjectID:   &projects[1].ID,
			Amount:      "2500",
			Status:      models.InvoicePaid,
			IssueDate:   datePtr(2024, time.February, 15),
			DueDate:     date(2024, time.March, 15),
			Description: strPtr("SEO Campaign - February"),
		},
		{
			ClientID:    clients[2].ID,
			ProjectID:   &projects[2].ID,
			Amount:      "12000",
			Status:      models.InvoicePaid,
			IssueDate:   datePtr(2024, time.January, 15),
			DueDate:     date(2024, time.February, 14),
			Description: strPtr("Mobile app development - Final payment"),
		},
		{
			ClientID:    clients[0].ID,
			ProjectID:   &projects[0].ID,
			Amount:      "5000",
			Status:      models.InvoicePending,
			IssueDate:   datePtr(2024, time.March, 1),
			DueDate:     date(2024, time.March, 31),
			Description: strPtr("Website development - Phase 2"),
		},
		{
			ClientID:    clients[1].ID,
			ProjectID:   &projects[1].ID,
			Amount:      "2500",
			Status:      models.InvoiceOverdue,
			IssueDate:   datePtr(2024, time.February, 1),
			DueDate:     date(2024, time.February, 28),
			Description: strPtr("SEO Campaign - January (overdue)"),
		},
	}
	for _, input := range sampleInvoices {
		if _, err := store.CreateInvoice(ctx, input); err != nil {
			return err
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }

func date(year int, month time.Month, day int) models.Date {
	return models.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func datePtr(year int, month time.Month, day int) *models.Date {
	d := date(year, month, day)
	return &d
}

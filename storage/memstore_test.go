package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancerdash-backend/models"
)

func newClientInput(name string) models.CreateClientInput {
	return models.CreateClientInput{Name: name, Email: name + "@example.com"}
}

func dueIn(days int) models.Date {
	return models.Date{Time: time.Now().AddDate(0, 0, days)}
}

func TestMemStoreClientCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	created, err := store.CreateClient(ctx, models.CreateClientInput{
		Name:    "Tech Solutions Inc",
		Email:   "contact@techsolutions.com",
		Company: strPtr("Tech Solutions Inc"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.Phone)

	fetched, err := store.GetClient(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, *created, *fetched)

	missing, err := store.GetClient(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := store.UpdateClient(ctx, created.ID, models.UpdateClientInput{
		Phone: strPtr("+15551234567"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Tech Solutions Inc", updated.Name)
	assert.Equal(t, "+15551234567", *updated.Phone)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	ghost, err := store.UpdateClient(ctx, 999, models.UpdateClientInput{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, ghost)

	deleted, err := store.DeleteClient(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteClient(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	clients, err := store.GetClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestMemStoreIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	for i := 0; i < 3; i++ {
		_, err := store.CreateClient(ctx, newClientInput(fmt.Sprintf("c%d", i)))
		require.NoError(t, err)
	}
	for id := 1; id <= 3; id++ {
		ok, err := store.DeleteClient(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	next, err := store.CreateClient(ctx, newClientInput("late"))
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID)
}

func TestMemStoreInvoiceNumbering(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	var last *models.Invoice
	for i := 0; i < 7; i++ {
		inv, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
			ClientID: 1,
			Amount:   "100.00",
			DueDate:  dueIn(30),
		})
		require.NoError(t, err)
		expected := fmt.Sprintf("INV-%03d", i+1)
		assert.Equal(t, expected, inv.InvoiceNumber)
		last = inv
	}
	assert.Equal(t, "INV-007", last.InvoiceNumber)

	// The counter survives deletions, independent of ids.
	for id := 1; id <= 7; id++ {
		ok, err := store.DeleteInvoice(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
	}
	inv, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: 1,
		Amount:   "50.00",
		DueDate:  dueIn(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-008", inv.InvoiceNumber)
	assert.Equal(t, 8, inv.ID)
}

func TestMemStoreInvoiceDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	inv, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: 1,
		Amount:   "250.00",
		DueDate:  dueIn(14),
	})
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePending, inv.Status)
	assert.False(t, inv.IssueDate.IsZero())
	assert.Nil(t, inv.PaidDate)
	assert.Nil(t, inv.ProjectID)

	paid, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: 1,
		Amount:   "250.00",
		Status:   models.InvoicePaid,
		DueDate:  dueIn(14),
	})
	require.NoError(t, err)
	require.NotNil(t, paid.PaidDate)
}

func TestMemStoreInvoiceUpdateMergeAndStickyPaidDate(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	desc := "Website development - Phase 1"
	created, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID:    7,
		Amount:      "5000",
		DueDate:     dueIn(30),
		Description: &desc,
	})
	require.NoError(t, err)
	require.Nil(t, created.PaidDate)

	before := time.Now()
	status := models.InvoicePaid
	updated, err := store.UpdateInvoice(ctx, created.ID, models.UpdateInvoiceInput{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Only status and paidDate may move; everything else stays put.
	assert.Equal(t, models.InvoicePaid, updated.Status)
	require.NotNil(t, updated.PaidDate)
	assert.False(t, updated.PaidDate.Before(before))
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.Equal(t, created.ClientID, updated.ClientID)
	assert.Equal(t, created.Amount, updated.Amount)
	assert.Equal(t, created.IssueDate, updated.IssueDate)
	assert.Equal(t, created.DueDate, updated.DueDate)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Moving away from paid keeps the historical marker.
	firstPaidDate := *updated.PaidDate
	pending := models.InvoicePending
	reverted, err := store.UpdateInvoice(ctx, created.ID, models.UpdateInvoiceInput{Status: &pending})
	require.NoError(t, err)
	require.NotNil(t, reverted)
	assert.Equal(t, models.InvoicePending, reverted.Status)
	require.NotNil(t, reverted.PaidDate)
	assert.Equal(t, firstPaidDate, *reverted.PaidDate)

	// Paying again refreshes the timestamp.
	repaid, err := store.UpdateInvoice(ctx, created.ID, models.UpdateInvoiceInput{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, repaid.PaidDate)
	assert.False(t, repaid.PaidDate.Before(firstPaidDate))

	ghost, err := store.UpdateInvoice(ctx, 999, models.UpdateInvoiceInput{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestMemStoreProjectJoins(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	client, err := store.CreateClient(ctx, newClientInput("acme"))
	require.NoError(t, err)

	owned, err := store.CreateProject(ctx, models.CreateProjectInput{
		Title:    "E-commerce Website Development",
		ClientID: client.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectActive, owned.Status)

	dangling, err := store.CreateProject(ctx, models.CreateProjectInput{
		Title:    "Orphaned",
		ClientID: 999,
	})
	require.NoError(t, err)

	projects, err := store.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.NotNil(t, projects[0].Client)
	assert.Equal(t, client.ID, projects[0].Client.ID)
	assert.Nil(t, projects[1].Client)

	byClient, err := store.GetProjectsByClient(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, owned.ID, byClient[0].ID)

	// Deleting the client leaves the project with a null join.
	_, err = store.DeleteClient(ctx, client.ID)
	require.NoError(t, err)
	fetched, err := store.GetProject(ctx, owned.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Nil(t, fetched.Client)

	_ = dangling
}

func TestMemStoreInvoiceJoins(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	client, err := store.CreateClient(ctx, newClientInput("acme"))
	require.NoError(t, err)
	project, err := store.CreateProject(ctx, models.CreateProjectInput{
		Title:    "SEO Campaign Management",
		ClientID: client.ID,
	})
	require.NoError(t, err)

	withProject, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID:  client.ID,
		ProjectID: &project.ID,
		Amount:    "2500",
		DueDate:   dueIn(30),
	})
	require.NoError(t, err)

	withoutProject, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: client.ID,
		Amount:   "1000",
		DueDate:  dueIn(30),
	})
	require.NoError(t, err)

	invoices, err := store.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	require.NotNil(t, invoices[0].Client)
	require.NotNil(t, invoices[0].Project)
	assert.Equal(t, project.ID, invoices[0].Project.ID)

	// Null projectId resolves to a nil project and a live client.
	require.NotNil(t, invoices[1].Client)
	assert.Nil(t, invoices[1].Project)

	single, err := store.GetInvoice(ctx, withoutProject.ID)
	require.NoError(t, err)
	require.NotNil(t, single)
	assert.Nil(t, single.Project)
	require.NotNil(t, single.Client)

	byClient, err := store.GetInvoicesByClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	_ = withProject
}

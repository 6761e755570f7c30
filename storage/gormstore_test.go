package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"freelancerdash-backend/models"
)

func setupGormStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return store
}

func TestGormStoreClientCRUD(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	created, err := store.CreateClient(ctx, models.CreateClientInput{
		Name:    "Digital Marketing Co",
		Email:   "hello@digitalmarketing.com",
		Company: strPtr("Digital Marketing Co"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := store.GetClient(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, *created.Company, *fetched.Company)

	missing, err := store.GetClient(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := store.UpdateClient(ctx, created.ID, models.UpdateClientInput{
		Address: strPtr("456 Marketing St"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, "456 Marketing St", *updated.Address)

	ghost, err := store.UpdateClient(ctx, 9999, models.UpdateClientInput{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, ghost)

	deleted, err := store.DeleteClient(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = store.DeleteClient(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGormStoreInvoiceNumberingSurvivesDeletes(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	first, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: 1, Amount: "100", DueDate: dueIn(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-001", first.InvoiceNumber)

	second, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: 1, Amount: "200", DueDate: dueIn(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-002", second.InvoiceNumber)

	// Deleting the newest invoice must not recycle its number.
	deleted, err := store.DeleteInvoice(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	third, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: 1, Amount: "300", DueDate: dueIn(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-003", third.InvoiceNumber)
}

func TestGormStoreInvoicePaidDateSticky(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	created, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID: 1, Amount: "5000", DueDate: dueIn(30),
	})
	require.NoError(t, err)
	require.Nil(t, created.PaidDate)

	paid := models.InvoicePaid
	updated, err := store.UpdateInvoice(ctx, created.ID, models.UpdateInvoiceInput{Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.PaidDate)
	assert.Equal(t, created.Amount, updated.Amount)

	cancelled := models.InvoiceCancelled
	reverted, err := store.UpdateInvoice(ctx, created.ID, models.UpdateInvoiceInput{Status: &cancelled})
	require.NoError(t, err)
	require.NotNil(t, reverted)
	require.NotNil(t, reverted.PaidDate)

	// Round trip through the database keeps the marker too.
	fetched, err := store.GetInvoice(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, models.InvoiceCancelled, fetched.Status)
	assert.NotNil(t, fetched.PaidDate)
}

func TestGormStoreJoinsAndAnalyticsWithSeedData(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)
	require.NoError(t, SeedSampleData(ctx, store))

	clients, err := store.GetClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)

	projects, err := store.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	for _, p := range projects {
		require.NotNil(t, p.Client, p.Title)
	}

	invoices, err := store.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 5)
	assert.Equal(t, "INV-001", invoices[0].InvoiceNumber)
	assert.Equal(t, "INV-005", invoices[4].InvoiceNumber)
	for _, inv := range invoices {
		require.NotNil(t, inv.Client)
		require.NotNil(t, inv.Project)
	}

	stats, err := store.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ActiveClients)
	assert.InDelta(t, 19500, stats.TotalEarnings, 0.001)
	assert.Equal(t, 1, stats.PendingInvoices)

	top, err := store.GetTopClientsByRevenue(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "StartupXYZ", top[0].Name)
	assert.InDelta(t, 12000, top[0].Revenue, 0.001)
	assert.Equal(t, 1, top[0].ProjectCount)
	assert.Equal(t, "Tech Solutions Inc", top[1].Name)
	assert.InDelta(t, 5000, top[1].Revenue, 0.001)

	byClient, err := store.GetInvoicesByClient(ctx, clients[0].ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)
}

func TestGormStoreDanglingReferencesResolveToNil(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	client, err := store.CreateClient(ctx, models.CreateClientInput{
		Name: "Ephemeral", Email: "gone@example.com",
	})
	require.NoError(t, err)

	projectID := 4242
	invoice, err := store.CreateInvoice(ctx, models.CreateInvoiceInput{
		ClientID:  client.ID,
		ProjectID: &projectID,
		Amount:    "100",
		DueDate:   models.Date{Time: time.Now().AddDate(0, 1, 0)},
	})
	require.NoError(t, err)

	deleted, err := store.DeleteClient(ctx, client.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	fetched, err := store.GetInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Nil(t, fetched.Client)
	assert.Nil(t, fetched.Project)
}

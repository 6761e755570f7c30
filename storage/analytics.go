package storage

import (
	"sort"
	"strconv"
	"time"

	"freelancerdash-backend/models"
)

// The earnings chart covers a fixed January-June window for now; widening
// or parameterizing the range only needs to touch this list.
var earningMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// parseAmount reads a decimal-string amount for aggregation. Amounts are
// validated upstream, so a malformed value simply contributes zero.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// The aggregations below are pure functions over entity slices, shared by
// every Store implementation so the derived numbers cannot drift between
// backings.

func computeDashboardStats(clients []models.Client, invoices []models.Invoice, now time.Time) models.DashboardStats {
	stats := models.DashboardStats{ActiveClients: len(clients)}

	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoicePaid:
			amount := parseAmount(inv.Amount)
			stats.TotalEarnings += amount
			if inv.IssueDate.Month() == now.Month() && inv.IssueDate.Year() == now.Year() {
				stats.ThisMonth += amount
			}
		case models.InvoicePending:
			stats.PendingInvoices++
		}
	}

	return stats
}

func computeTopClientsByRevenue(clients []models.Client, projects []models.Project, invoices []models.Invoice, limit int) []models.ClientRevenue {
	ranked := make([]models.ClientRevenue, 0, len(clients))
	for _, client := range clients {
		entry := models.ClientRevenue{Client: client}
		for _, inv := range invoices {
			if inv.ClientID == client.ID && inv.Status == models.InvoicePaid {
				entry.Revenue += parseAmount(inv.Amount)
			}
		}
		for _, p := range projects {
			if p.ClientID == client.ID {
				entry.ProjectCount++
			}
		}
		ranked = append(ranked, entry)
	}

	// Stable keeps ties in original client order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func computeMonthlyEarnings(invoices []models.Invoice) []models.MonthlyEarning {
	buckets := make([]float64, len(earningMonths))

	for _, inv := range invoices {
		if inv.Status != models.InvoicePaid {
			continue
		}
		date := inv.IssueDate
		if inv.PaidDate != nil {
			date = *inv.PaidDate
		}
		if idx := int(date.Month()) - 1; idx < len(buckets) {
			buckets[idx] += parseAmount(inv.Amount)
		}
	}

	series := make([]models.MonthlyEarning, len(earningMonths))
	for i, month := range earningMonths {
		series[i] = models.MonthlyEarning{Month: month, Earnings: buckets[i]}
	}
	return series
}

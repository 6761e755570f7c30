package models

// DashboardStats is the headline summary for the dashboard page.
// ActiveClients counts every stored client, not an "active" subset; the
// field name is inherited from the dashboard contract.
type DashboardStats struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	ActiveClients   int     `json:"activeClients"`
	PendingInvoices int     `json:"pendingInvoices"`
	ThisMonth       float64 `json:"thisMonth"`
}

// ClientRevenue is a client annotated with paid revenue and project count.
type ClientRevenue struct {
	Client
	Revenue      float64 `json:"revenue"`
	ProjectCount int     `json:"projectCount"`
}

// MonthlyEarning is one bucket of the earnings chart series.
type MonthlyEarning struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
}

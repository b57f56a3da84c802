package domain

import "github.com/shopspring/decimal"

// DailySalesReportRow agrega as vendas de um cliente em um dia
type DailySalesReportRow struct {
	CustomerID       int64           `json:"customerId"`
	CustomerName     string          `json:"customerName"`
	TotalProductQty  int             `json:"totalProductQty"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
}

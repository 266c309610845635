package inventory

import (
	"context"

	"github.com/google/uuid"
)

// The inventory ledger derives stock from signed order-item quantities:
// deliveries add, shipments subtract. Nothing stores a stock counter;
// every figure below is computed from live (non-soft-deleted) rows.

// HighestStockResult is the top (warehouse, product) pair by current stock
type HighestStockResult struct {
	WarehouseName string `json:"warehouse"`
	ProductName   string `json:"productName"`
	CurrentStock  int64  `json:"currentStock"`
}

// BestSellingProductResult is the product with the highest total quantity ordered
type BestSellingProductResult struct {
	ProductName string `json:"productName"`
	Price       string `json:"price"`
	CompanyName string `json:"companyName"`
	TotalSold   int64  `json:"totalSold"`
}

// CustomerWithMostOrdersResult is the customer partner with the most orders
type CustomerWithMostOrdersResult struct {
	CustomerName     string `json:"customerName"`
	CompanyName      string `json:"companyName"`
	TotalOrders      int64  `json:"totalOrders"`
	TotalItemsBought int64  `json:"totalItemsBought"`
}

// LedgerRepository answers aggregate questions over orders and order items.
// Every query excludes soft-deleted rows at every joined level.
type LedgerRepository interface {
	// StockFor computes the current signed stock for a warehouse/product pair.
	StockFor(ctx context.Context, warehouseID, productID uuid.UUID) (int64, error)

	// HasOrderItems reports whether any live order item references the
	// warehouse within the company. This deliberately checks existence, not
	// nonzero net stock: a warehouse with offsetting deliveries and shipments
	// still counts as having stock history and blocks support-type changes.
	HasOrderItems(ctx context.Context, warehouseID, companyID uuid.UUID) (bool, error)

	// HighestStockProduct returns the single (warehouse, product) group with
	// positive stock, ordered by warehouse name ascending then stock
	// descending. Returns ErrNotFound when no group has positive stock.
	// A zero companyID computes across all companies.
	HighestStockProduct(ctx context.Context, companyID uuid.UUID) (*HighestStockResult, error)

	// BestSellingProduct returns the product with the highest total ordered
	// quantity within the company, or nil when the company has no order items.
	BestSellingProduct(ctx context.Context, companyID uuid.UUID) (*BestSellingProductResult, error)

	// CustomerWithMostOrders returns the customer partner with the most
	// orders within the company, or nil when there are none.
	CustomerWithMostOrders(ctx context.Context, companyID uuid.UUID) (*CustomerWithMostOrdersResult, error)
}

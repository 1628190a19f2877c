package dto

// InventoryReportItem producto marcado si está bajo el umbral de stock bajo.
type InventoryReportItem struct {
	ProductResponse
	LowStock bool `json:"low_stock"`
}

// SalesReportItem total de unidades vendidas de un producto.
type SalesReportItem struct {
	ProductID  int64  `json:"product_id"`
	Product    string `json:"product"`
	TotalSales int64  `json:"total_sales"`
}

// MonthlyMovementItem unidades que entran y salen en un mes (YYYY-MM).
type MonthlyMovementItem struct {
	Month string `json:"month"`
	In    int64  `json:"in"`
	Out   int64  `json:"out"`
}

// DashboardSummary contadores de la página de inicio más la actividad reciente del kardex.
type DashboardSummary struct {
	ProductCount      int                   `json:"product_count"`
	LowStockCount     int                   `json:"low_stock_count"`
	OutOfStockCount   int                   `json:"out_of_stock_count"`
	LowStockThreshold int64                 `json:"low_stock_threshold"`
	RecentMovements   []MovementResponse    `json:"recent_movements"`
	Monthly           []MonthlyMovementItem `json:"monthly"`
}

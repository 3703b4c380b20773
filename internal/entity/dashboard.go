package entity

type EquipmentStats struct {
	Total       int `json:"total"`
	EnService   int `json:"en_service"`
	Maintenance int `json:"maintenance"`
	HorsService int `json:"hors_service"`
}

type WorkOrderStats struct {
	Total     int `json:"total"`
	Planifiee int `json:"planifiee"`
	EnCours   int `json:"en_cours"`
	Terminee  int `json:"terminee"`
}

type DashboardStats struct {
	EquipmentStats  EquipmentStats `json:"equipment_stats"`
	WorkOrderStats  WorkOrderStats `json:"work_order_stats"`
	LowStockCount   int            `json:"low_stock_count"`
	TotalSpareParts int            `json:"total_spare_parts"`
}

type Alert struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ItemID      string `json:"item_id"`
	ItemType    string `json:"item_type"`
}

package entity

import "time"

const (
	MaintenancePreventive = "preventive"
	MaintenanceCorrective = "corrective"
)

const (
	WorkOrderStatutPlanifiee = "planifiee"
	WorkOrderStatutEnCours   = "en_cours"
	WorkOrderStatutTerminee  = "terminee"
	WorkOrderStatutAnnulee   = "annulee"
)

type WorkOrder struct {
	ID                string    `json:"id"`
	Titre             string    `json:"titre"`
	Description       string    `json:"description"`
	TypeMaintenance   string    `json:"type_maintenance"`
	Priorite          string    `json:"priorite"`
	Statut            string    `json:"statut"`
	CaissonID         string    `json:"caisson_id,omitempty"`
	EquipmentID       string    `json:"equipment_id,omitempty"`
	DatePlanifiee     string    `json:"date_planifiee"`
	PeriodiciteJours  int       `json:"periodicite_jours,omitempty"`
	TechnicienAssigne string    `json:"technicien_assigne,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type PieceUtilisee struct {
	SparePartID string `json:"spare_part_id"`
	Quantite    int    `json:"quantite"`
}

type Intervention struct {
	ID               string          `json:"id"`
	WorkOrderID      string          `json:"work_order_id"`
	DateIntervention string          `json:"date_intervention"`
	Technicien       string          `json:"technicien"`
	ActionsRealisees string          `json:"actions_realisees"`
	Observations     string          `json:"observations,omitempty"`
	PiecesUtilisees  []PieceUtilisee `json:"pieces_utilisees"`
	DureeMinutes     int             `json:"duree_minutes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type SparePart struct {
	ID                 string    `json:"id"`
	Nom                string    `json:"nom"`
	ReferenceFabricant string    `json:"reference_fabricant"`
	EquipmentType      string    `json:"equipment_type"`
	QuantiteStock      int       `json:"quantite_stock"`
	SeuilMinimum       int       `json:"seuil_minimum"`
	Emplacement        string    `json:"emplacement,omitempty"`
	Fournisseur        string    `json:"fournisseur,omitempty"`
	PrixUnitaire       float64   `json:"prix_unitaire,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// LowStock reports whether the part sits at or under its restock threshold.
func (p SparePart) LowStock() bool {
	return p.QuantiteStock <= p.SeuilMinimum
}

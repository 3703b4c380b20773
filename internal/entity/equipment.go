package entity

import "time"

const (
	EquipmentStatutEnService   = "en_service"
	EquipmentStatutMaintenance = "maintenance"
	EquipmentStatutHorsService = "hors_service"
)

const (
	CriticiteCritique = "critique"
	CriticiteHaute    = "haute"
	CriticiteNormale  = "normale"
	CriticiteBasse    = "basse"
)

type Document struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Equipment struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Reference        string     `json:"reference"`
	NumeroSerie      string     `json:"numero_serie"`
	Criticite        string     `json:"criticite"`
	Statut           string     `json:"statut"`
	CaissonID        string     `json:"caisson_id"`
	Description      string     `json:"description,omitempty"`
	DateInstallation string     `json:"date_installation,omitempty"`
	Photos           []string   `json:"photos"`
	Documents        []Document `json:"documents"`
	CreatedAt        time.Time  `json:"created_at"`
}

type Caisson struct {
	ID                string    `json:"id"`
	Identifiant       string    `json:"identifiant"`
	Modele            string    `json:"modele"`
	Fabricant         string    `json:"fabricant"`
	DateMiseEnService string    `json:"date_mise_en_service"`
	PressionMaximale  float64   `json:"pression_maximale"`
	NormesApplicables []string  `json:"normes_applicables"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

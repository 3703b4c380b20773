package gmao

import (
	"context"
	"net/http"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

type WorkOrderFilter struct {
	Statut          string
	TypeMaintenance string
}

type WorkOrderCreate struct {
	Titre             string `json:"titre"`
	Description       string `json:"description"`
	TypeMaintenance   string `json:"type_maintenance"`
	Priorite          string `json:"priorite,omitempty"`
	Statut            string `json:"statut,omitempty"`
	CaissonID         string `json:"caisson_id,omitempty"`
	EquipmentID       string `json:"equipment_id,omitempty"`
	DatePlanifiee     string `json:"date_planifiee"`
	PeriodiciteJours  int    `json:"periodicite_jours,omitempty"`
	TechnicienAssigne string `json:"technicien_assigne,omitempty"`
}

func (c *Client) WorkOrders(ctx context.Context, filter WorkOrderFilter) ([]entity.WorkOrder, error) {
	var out []entity.WorkOrder

	q := encodeQuery(map[string]string{
		"statut":           filter.Statut,
		"type_maintenance": filter.TypeMaintenance,
	})

	err := c.do(ctx, http.MethodGet, "/work-orders"+q, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) WorkOrder(ctx context.Context, id string) (entity.WorkOrder, error) {
	var out entity.WorkOrder

	err := c.do(ctx, http.MethodGet, "/work-orders/"+id, nil, &out)
	if err != nil {
		return entity.WorkOrder{}, err
	}

	return out, nil
}

func (c *Client) CreateWorkOrder(ctx context.Context, req WorkOrderCreate) (entity.WorkOrder, error) {
	var out entity.WorkOrder

	err := c.do(ctx, http.MethodPost, "/work-orders", req, &out)
	if err != nil {
		return entity.WorkOrder{}, err
	}

	return out, nil
}

func (c *Client) UpdateWorkOrder(ctx context.Context, id string, req WorkOrderCreate) (entity.WorkOrder, error) {
	var out entity.WorkOrder

	err := c.do(ctx, http.MethodPut, "/work-orders/"+id, req, &out)
	if err != nil {
		return entity.WorkOrder{}, err
	}

	return out, nil
}

func (c *Client) DeleteWorkOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/work-orders/"+id, nil, nil)
}

type InterventionCreate struct {
	WorkOrderID      string                 `json:"work_order_id"`
	DateIntervention string                 `json:"date_intervention"`
	Technicien       string                 `json:"technicien"`
	ActionsRealisees string                 `json:"actions_realisees"`
	Observations     string                 `json:"observations,omitempty"`
	PiecesUtilisees  []entity.PieceUtilisee `json:"pieces_utilisees"`
	DureeMinutes     int                    `json:"duree_minutes,omitempty"`
}

func (c *Client) Interventions(ctx context.Context, workOrderID string) ([]entity.Intervention, error) {
	var out []entity.Intervention

	q := encodeQuery(map[string]string{"work_order_id": workOrderID})

	err := c.do(ctx, http.MethodGet, "/interventions"+q, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateIntervention(ctx context.Context, req InterventionCreate) (entity.Intervention, error) {
	var out entity.Intervention

	err := c.do(ctx, http.MethodPost, "/interventions", req, &out)
	if err != nil {
		return entity.Intervention{}, err
	}

	return out, nil
}

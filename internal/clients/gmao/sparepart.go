package gmao

import (
	"context"
	"net/http"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

type SparePartCreate struct {
	Nom                string  `json:"nom"`
	ReferenceFabricant string  `json:"reference_fabricant"`
	EquipmentType      string  `json:"equipment_type"`
	QuantiteStock      int     `json:"quantite_stock"`
	SeuilMinimum       int     `json:"seuil_minimum"`
	Emplacement        string  `json:"emplacement,omitempty"`
	Fournisseur        string  `json:"fournisseur,omitempty"`
	PrixUnitaire       float64 `json:"prix_unitaire,omitempty"`
}

type SparePartUpdate struct {
	QuantiteStock *int     `json:"quantite_stock,omitempty"`
	SeuilMinimum  *int     `json:"seuil_minimum,omitempty"`
	Emplacement   *string  `json:"emplacement,omitempty"`
	Fournisseur   *string  `json:"fournisseur,omitempty"`
	PrixUnitaire  *float64 `json:"prix_unitaire,omitempty"`
}

func (c *Client) SpareParts(ctx context.Context) ([]entity.SparePart, error) {
	var out []entity.SparePart

	err := c.do(ctx, http.MethodGet, "/spare-parts", nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateSparePart(ctx context.Context, req SparePartCreate) (entity.SparePart, error) {
	var out entity.SparePart

	err := c.do(ctx, http.MethodPost, "/spare-parts", req, &out)
	if err != nil {
		return entity.SparePart{}, err
	}

	return out, nil
}

func (c *Client) UpdateSparePart(ctx context.Context, id string, req SparePartUpdate) (entity.SparePart, error) {
	var out entity.SparePart

	err := c.do(ctx, http.MethodPut, "/spare-parts/"+id, req, &out)
	if err != nil {
		return entity.SparePart{}, err
	}

	return out, nil
}

func (c *Client) DeleteSparePart(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/spare-parts/"+id, nil, nil)
}

package gmao

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

type EquipmentFilter struct {
	Type      string
	Statut    string
	Criticite string
}

type EquipmentCreate struct {
	Type             string   `json:"type"`
	Reference        string   `json:"reference"`
	NumeroSerie      string   `json:"numero_serie"`
	Criticite        string   `json:"criticite,omitempty"`
	Statut           string   `json:"statut,omitempty"`
	CaissonID        string   `json:"caisson_id"`
	Description      string   `json:"description,omitempty"`
	DateInstallation string   `json:"date_installation,omitempty"`
	Photos           []string `json:"photos"`
}

func (c *Client) Equipments(ctx context.Context, filter EquipmentFilter) ([]entity.Equipment, error) {
	var out []entity.Equipment

	q := encodeQuery(map[string]string{
		"type":      filter.Type,
		"statut":    filter.Statut,
		"criticite": filter.Criticite,
	})

	err := c.do(ctx, http.MethodGet, "/equipments"+q, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Equipment(ctx context.Context, id string) (entity.Equipment, error) {
	var out entity.Equipment

	err := c.do(ctx, http.MethodGet, "/equipments/"+id, nil, &out)
	if err != nil {
		return entity.Equipment{}, err
	}

	return out, nil
}

func (c *Client) CreateEquipment(ctx context.Context, req EquipmentCreate) (entity.Equipment, error) {
	var out entity.Equipment

	err := c.do(ctx, http.MethodPost, "/equipments", req, &out)
	if err != nil {
		return entity.Equipment{}, err
	}

	return out, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id string, req EquipmentCreate) (entity.Equipment, error) {
	var out entity.Equipment

	err := c.do(ctx, http.MethodPut, "/equipments/"+id, req, &out)
	if err != nil {
		return entity.Equipment{}, err
	}

	return out, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/equipments/"+id, nil, nil)
}

func (c *Client) UploadEquipmentPhoto(ctx context.Context, id, filename string, content io.Reader) (entity.Equipment, error) {
	var out entity.Equipment

	err := c.upload(ctx, "/equipments/"+id+"/photos", filename, content, &out)
	if err != nil {
		return entity.Equipment{}, err
	}

	return out, nil
}

func (c *Client) UploadEquipmentDocument(ctx context.Context, id, filename string, content io.Reader) (entity.Equipment, error) {
	var out entity.Equipment

	err := c.upload(ctx, "/equipments/"+id+"/documents", filename, content, &out)
	if err != nil {
		return entity.Equipment{}, err
	}

	return out, nil
}

func (c *Client) DeleteEquipmentPhoto(ctx context.Context, id, photoURL string) error {
	return c.do(ctx, http.MethodDelete, "/equipments/"+id+"/photos?photo_url="+url.QueryEscape(photoURL), nil, nil)
}

func (c *Client) DeleteEquipmentDocument(ctx context.Context, id, docURL string) error {
	return c.do(ctx, http.MethodDelete, "/equipments/"+id+"/documents?doc_url="+url.QueryEscape(docURL), nil, nil)
}

func (c *Client) Caisson(ctx context.Context) ([]entity.Caisson, error) {
	var out []entity.Caisson

	err := c.do(ctx, http.MethodGet, "/caisson", nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

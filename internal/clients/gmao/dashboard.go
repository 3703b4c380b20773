package gmao

import (
	"context"
	"net/http"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

func (c *Client) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	var out entity.DashboardStats

	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	return out, nil
}

func (c *Client) Alerts(ctx context.Context) ([]entity.Alert, error) {
	var out []entity.Alert

	err := c.do(ctx, http.MethodGet, "/dashboard/alerts", nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ExportCSV downloads one collection as CSV. The caller owns turning the
// bytes into a user-facing file.
func (c *Client) ExportCSV(ctx context.Context, collection string) ([]byte, error) {
	return c.download(ctx, "/export/csv/"+collection)
}

func (c *Client) ExportJSON(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/export/json")
}

package gmao

import (
	"context"
	"net/http"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

// actionMessage is the {"message": …} envelope the user-administration
// endpoints answer with.
type actionMessage struct {
	Message string `json:"message"`
}

func (c *Client) Users(ctx context.Context) ([]entity.Account, error) {
	var out []entity.Account

	err := c.do(ctx, http.MethodGet, "/users", nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// PendingUsers lists registrations awaiting an administrator's decision.
func (c *Client) PendingUsers(ctx context.Context) ([]entity.Account, error) {
	var out []entity.Account

	err := c.do(ctx, http.MethodGet, "/users/pending", nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Technicians lists the active accounts offered in assignment dropdowns.
func (c *Client) Technicians(ctx context.Context) ([]entity.Account, error) {
	var out []entity.Account

	err := c.do(ctx, http.MethodGet, "/users/technicians", nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateUserRole changes an account's role. The server accepts admin and
// technicien only; the role travels as a query parameter.
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) (string, error) {
	path := "/users/" + id + "/role" + encodeQuery(map[string]string{"role": role})

	return c.userAction(ctx, http.MethodPut, path)
}

func (c *Client) ApproveUser(ctx context.Context, id string) (string, error) {
	return c.userAction(ctx, http.MethodPut, "/users/"+id+"/approve")
}

func (c *Client) RejectUser(ctx context.Context, id string) (string, error) {
	return c.userAction(ctx, http.MethodPut, "/users/"+id+"/reject")
}

func (c *Client) SuspendUser(ctx context.Context, id string) (string, error) {
	return c.userAction(ctx, http.MethodPut, "/users/"+id+"/suspend")
}

func (c *Client) ActivateUser(ctx context.Context, id string) (string, error) {
	return c.userAction(ctx, http.MethodPut, "/users/"+id+"/activate")
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

// RolePermissions fetches the server's role to permission-set table.
func (c *Client) RolePermissions(ctx context.Context) (map[string]entity.PermissionSet, error) {
	var out map[string]entity.PermissionSet

	err := c.do(ctx, http.MethodGet, "/users/permissions", nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) userAction(ctx context.Context, method, path string) (string, error) {
	var out actionMessage

	err := c.do(ctx, method, path, nil, &out)
	if err != nil {
		return "", err
	}

	return out.Message, nil
}

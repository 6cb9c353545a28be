package botapi

import (
	"context"
	"net/http"
)

type messageBody struct {
	Message string `json:"message"`
}

// UpdateUserAccess changes a user's access level and returns the backend's
// confirmation message. Only 200 is success.
func (c *Client) UpdateUserAccess(ctx context.Context, userID string, in UserAccessInput) (string, error) {
	seg, err := escapeID(userID)
	if err != nil {
		return "", err
	}

	var out messageBody
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+seg+"/access", nil, in, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}

package cogmem

import (
	"context"
	"fmt"
	"net/url"
)

// GetTeamMembers lists team members, optionally filtered by project.
// Requires Team or Enterprise tier.
func (c *Client) GetTeamMembers(ctx context.Context, projectID string) (Result, error) {
	params := url.Values{}
	if projectID != "" {
		params.Set("project_id", projectID)
	}
	return c.get(ctx, "team/members", params)
}

// InviteTeamMember invites a user to a shared project. An empty role defaults
// to RoleMember. Requires Team or Enterprise tier.
func (c *Client) InviteTeamMember(ctx context.Context, email, projectID string, role Role) (Result, error) {
	if role == "" {
		role = RoleMember
	}
	return c.post(ctx, "team/invite", map[string]interface{}{
		"email":      email,
		"project_id": projectID,
		"role":       role,
	})
}

// RemoveTeamMember removes a team member record.
func (c *Client) RemoveTeamMember(ctx context.Context, memberID int) (Result, error) {
	return c.del(ctx, fmt.Sprintf("team/remove/%d", memberID))
}

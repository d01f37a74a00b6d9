package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/clients/acl/board"
	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

var _ ports.CommunicationService = (*NotificationClient)(nil)

// NotificationClient sends notifications through the board API's
// POST /api/v1/notifications endpoint, which accepts them for asynchronous
// delivery.
type NotificationClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewNotificationClient creates a NotificationClient backed by client.
func NewNotificationClient(client *httpclient.Client, logger *slog.Logger) *NotificationClient {
	return &NotificationClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// NotifyTeamsAbout notifies every team of project about item. A project
// without teams has nobody to notify and is not an error.
func (c *NotificationClient) NotifyTeamsAbout(ctx context.Context, item workitem.WorkItem, project *workitem.Project) error {
	if project == nil {
		return fmt.Errorf("%w: %s %d has no project to notify", domain.ErrValidation, item.Kind(), item.Common().ID)
	}
	recipients := make([]workitem.Collaborator, 0, len(project.Teams))
	for _, team := range project.Teams {
		recipients = append(recipients, team.Contact())
	}
	if len(recipients) == 0 {
		c.logger.DebugContext(ctx, "no teams to notify",
			slog.Int64("project_id", project.ID),
			slog.Int64("item_id", item.Common().ID),
		)
		return nil
	}
	return c.send(ctx, board.ToNotificationRequest(item, board.ReasonTeamAttention, recipients))
}

// Notify notifies a single recipient about item.
func (c *NotificationClient) Notify(ctx context.Context, item workitem.WorkItem, recipient workitem.Collaborator) error {
	req := board.ToNotificationRequest(item, board.ReasonOwnerAttention, []workitem.Collaborator{recipient})
	return c.send(ctx, req)
}

func (c *NotificationClient) send(ctx context.Context, body board.NotificationRequestDTO) error {
	return c.req.Do(ctx, http.MethodPost, "/api/v1/notifications", http.StatusAccepted, body, nil)
}

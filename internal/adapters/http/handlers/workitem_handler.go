package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// WorkItemHandler handles the work item processing trigger endpoints.
type WorkItemHandler struct {
	svc ports.WorkItemService
}

// NewWorkItemHandler creates a new WorkItemHandler with the given service.
func NewWorkItemHandler(svc ports.WorkItemService) *WorkItemHandler {
	return &WorkItemHandler{svc: svc}
}

// ProcessEpic handles POST /api/v1/epics/{id}/process.
func (h *WorkItemHandler) ProcessEpic(w http.ResponseWriter, r *http.Request) {
	h.processOne(w, r, workitem.KindEpic, h.svc.ProcessEpic)
}

// ProcessStory handles POST /api/v1/stories/{id}/process.
func (h *WorkItemHandler) ProcessStory(w http.ResponseWriter, r *http.Request) {
	h.processOne(w, r, workitem.KindStory, h.svc.ProcessStory)
}

// ProcessTask handles POST /api/v1/tasks/{id}/process.
func (h *WorkItemHandler) ProcessTask(w http.ResponseWriter, r *http.Request) {
	h.processOne(w, r, workitem.KindTask, h.svc.ProcessTask)
}

// ProcessBatch handles POST /api/v1/work-items/process. The response is
// always 200; per-item outcomes carry their own result codes.
func (h *WorkItemHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessBatchRequest
	if !bind(w, r, &req) {
		return
	}

	outcomes := h.svc.ProcessBatch(r.Context(), req.Requests())
	writeJSON(w, r, http.StatusOK, dto.ToBatchResponse(outcomes))
}

func (h *WorkItemHandler) processOne(
	w http.ResponseWriter,
	r *http.Request,
	kind workitem.Kind,
	process func(ctx context.Context, id int64) ports.ResultCode,
) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result := process(r.Context(), id)
	writeJSON(w, r, dto.ResultStatus(result), dto.ToProcessResponse(kind, id, result))
}

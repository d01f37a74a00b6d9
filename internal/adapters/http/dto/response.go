package dto

import (
	"net/http"

	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// ProcessResponse is the JSON representation of a single processing outcome.
type ProcessResponse struct {
	Kind   string `json:"kind"`
	ID     int64  `json:"id"`
	Result string `json:"result"`
	Code   int    `json:"code"`
}

// BatchResponse is the JSON body returned by the batch endpoint.
type BatchResponse struct {
	Items     []ProcessResponse `json:"items"`
	Total     int               `json:"total"`
	Processed int               `json:"processed"`
	NotFound  int               `json:"not_found"`
	Failed    int               `json:"failed"`
}

// ToProcessResponse converts a service result into its JSON representation.
func ToProcessResponse(kind workitem.Kind, id int64, result ports.ResultCode) ProcessResponse {
	return ProcessResponse{
		Kind:   kind.String(),
		ID:     id,
		Result: result.String(),
		Code:   int(result),
	}
}

// ToBatchResponse converts batch outcomes, preserving their order, and
// tallies them by result.
func ToBatchResponse(outcomes []ports.ProcessOutcome) BatchResponse {
	resp := BatchResponse{
		Items: make([]ProcessResponse, 0, len(outcomes)),
		Total: len(outcomes),
	}
	for _, o := range outcomes {
		resp.Items = append(resp.Items, ToProcessResponse(o.Kind, o.ID, o.Result))
		switch o.Result {
		case ports.ResultProcessed:
			resp.Processed++
		case ports.ResultNotFound:
			resp.NotFound++
		default:
			resp.Failed++
		}
	}
	return resp
}

// ResultStatus maps a processing result to the HTTP status reported for a
// single-item request.
func ResultStatus(result ports.ResultCode) int {
	switch result {
	case ports.ResultProcessed:
		return http.StatusOK
	case ports.ResultNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

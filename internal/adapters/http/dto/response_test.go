package dto_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

func TestToProcessResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result ports.ResultCode
		want   dto.ProcessResponse
	}{
		{
			name:   "processed",
			result: ports.ResultProcessed,
			want:   dto.ProcessResponse{Kind: "story", ID: 5, Result: "processed", Code: 1},
		},
		{
			name:   "not found",
			result: ports.ResultNotFound,
			want:   dto.ProcessResponse{Kind: "story", ID: 5, Result: "not_found", Code: -1},
		},
		{
			name:   "processing failed",
			result: ports.ResultProcessingFailed,
			want:   dto.ProcessResponse{Kind: "story", ID: 5, Result: "processing_failed", Code: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.ToProcessResponse(workitem.KindStory, 5, tt.result)
			if got != tt.want {
				t.Errorf("ToProcessResponse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToBatchResponse_PreservesOrderAndTallies(t *testing.T) {
	t.Parallel()

	outcomes := []ports.ProcessOutcome{
		{ProcessRequest: ports.ProcessRequest{Kind: workitem.KindTask, ID: 3}, Result: ports.ResultProcessed},
		{ProcessRequest: ports.ProcessRequest{Kind: workitem.KindEpic, ID: 1}, Result: ports.ResultNotFound},
		{ProcessRequest: ports.ProcessRequest{Kind: workitem.KindStory, ID: 2}, Result: ports.ResultProcessingFailed},
		{ProcessRequest: ports.ProcessRequest{Kind: workitem.KindTask, ID: 4}, Result: ports.ResultProcessed},
	}

	got := dto.ToBatchResponse(outcomes)

	if got.Total != 4 || got.Processed != 2 || got.NotFound != 1 || got.Failed != 1 {
		t.Errorf("tallies = total %d processed %d not_found %d failed %d, want 4/2/1/1",
			got.Total, got.Processed, got.NotFound, got.Failed)
	}
	wantIDs := []int64{3, 1, 2, 4}
	for i, id := range wantIDs {
		if got.Items[i].ID != id {
			t.Errorf("Items[%d].ID = %d, want %d", i, got.Items[i].ID, id)
		}
	}
}

func TestToBatchResponse_EmptyItemsSerializeAsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToBatchResponse(nil))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if _, ok := m["items"].([]any); !ok {
		t.Errorf("items = %v, want JSON array", m["items"])
	}
}

func TestResultStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		result ports.ResultCode
		want   int
	}{
		{ports.ResultProcessed, http.StatusOK},
		{ports.ResultNotFound, http.StatusNotFound},
		{ports.ResultProcessingFailed, http.StatusInternalServerError},
		{ports.ResultCode(0), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			t.Parallel()

			if got := dto.ResultStatus(tt.result); got != tt.want {
				t.Errorf("ResultStatus(%v) = %d, want %d", tt.result, got, tt.want)
			}
		})
	}
}

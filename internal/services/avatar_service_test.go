package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
	"github.com/pearmediallc/symphony-ai/internal/mocks"
)

func newAvatarService(client *mocks.MockUpstreamClient) *AvatarService {
	return NewAvatarService(client, UpstreamDefaults{AccessToken: "default-tok"}, zap.NewNop())
}

func TestAvatarService_CreateVideoTask_Validation(t *testing.T) {
	tests := []struct {
		name          string
		packages      []domain.MaterialPackage
		expectedField string
	}{
		{
			name:          "empty package list",
			packages:      nil,
			expectedField: "material_packages",
		},
		{
			name: "blank avatar_id in second package fails the whole request",
			packages: []domain.MaterialPackage{
				{AvatarID: "av-1", Script: "hello"},
				{AvatarID: "  ", Script: "world"},
			},
			expectedField: "avatar_id",
		},
		{
			name: "blank script",
			packages: []domain.MaterialPackage{
				{AvatarID: "av-1", Script: ""},
			},
			expectedField: "script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockUpstreamClient()
			svc := newAvatarService(client)

			req := &domain.AvatarVideoTaskRequest{AccessToken: "tok", MaterialPackages: tt.packages}
			_, err := svc.CreateVideoTask(context.Background(), req)

			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.expectedField {
				t.Errorf("expected error naming %q, got %q", tt.expectedField, vErr.Field)
			}
			// Fail fast: no partial submission ever reaches upstream.
			if client.CallCount() != 0 {
				t.Errorf("expected zero upstream calls, got %d", client.CallCount())
			}
		})
	}
}

func TestAvatarService_CreateVideoTask_Success(t *testing.T) {
	client := mocks.NewMockUpstreamClient()
	svc := newAvatarService(client)

	req := &domain.AvatarVideoTaskRequest{
		AccessToken: "tok",
		MaterialPackages: []domain.MaterialPackage{
			{AvatarID: "av-1", Script: "hello", VideoName: "clip one"},
			{AvatarID: "av-2", Script: "world"},
		},
	}
	result, err := svc.CreateVideoTask(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != http.StatusOK {
		t.Errorf("expected 200, got %d", result.Status)
	}

	call := client.LastCall()
	if call.Path != pathAvatarVideoTaskCreate {
		t.Errorf("unexpected path %q", call.Path)
	}
	payload := call.Body.(map[string]any)
	packages := payload["material_packages"].([]domain.MaterialPackage)
	if len(packages) != 2 || packages[0].VideoName != "clip one" {
		t.Errorf("expected packages forwarded verbatim, got %v", packages)
	}
}

func TestAvatarService_VideoTaskStatus_IDParsing(t *testing.T) {
	tests := []struct {
		name        string
		taskIDs     string
		expectError bool
	}{
		{name: "valid array", taskIDs: `["t1","t2"]`},
		{name: "empty string", taskIDs: "", expectError: true},
		{name: "not json", taskIDs: "t1,t2", expectError: true},
		{name: "json but not an array", taskIDs: `{"id":"t1"}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockUpstreamClient()
			svc := newAvatarService(client)

			_, err := svc.VideoTaskStatus(context.Background(), "tok", tt.taskIDs)
			if tt.expectError {
				var vErr *domain.ValidationError
				if !errors.As(err, &vErr) || vErr.Field != "task_ids" {
					t.Errorf("expected ValidationError naming task_ids, got %v", err)
				}
				if client.CallCount() != 0 {
					t.Errorf("expected zero upstream calls, got %d", client.CallCount())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := client.LastCall().Query.Get("task_ids"); got != tt.taskIDs {
				t.Errorf("expected raw array string forwarded, got %q", got)
			}
		})
	}
}

func TestAvatarService_ListVideos_Filtering(t *testing.T) {
	tests := []struct {
		name            string
		query           domain.AvatarVideoListQuery
		expectFiltering bool
		expectedFilters map[string]string
	}{
		{
			name:  "no filters omits filtering entirely",
			query: domain.AvatarVideoListQuery{AccessToken: "tok"},
		},
		{
			name: "only present filters are included",
			query: domain.AvatarVideoListQuery{
				AccessToken: "tok",
				AvatarID:    "av-7",
				EndDate:     "2025-01-31",
			},
			expectFiltering: true,
			expectedFilters: map[string]string{"avatar_id": "av-7", "end_date": "2025-01-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockUpstreamClient()
			svc := newAvatarService(client)

			if _, err := svc.ListVideos(context.Background(), &tt.query); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			q := client.LastCall().Query
			if q.Get("page") != "1" || q.Get("page_size") != "10" {
				t.Errorf("expected paging defaults 1/10, got %s/%s", q.Get("page"), q.Get("page_size"))
			}

			raw := q.Get("filtering")
			if !tt.expectFiltering {
				if raw != "" {
					t.Errorf("expected filtering omitted, got %q", raw)
				}
				return
			}
			var filters map[string]string
			if err := json.Unmarshal([]byte(raw), &filters); err != nil {
				t.Fatalf("filtering is not valid JSON: %v", err)
			}
			if len(filters) != len(tt.expectedFilters) {
				t.Errorf("expected filters %v, got %v", tt.expectedFilters, filters)
			}
			for k, v := range tt.expectedFilters {
				if filters[k] != v {
					t.Errorf("expected %s=%q, got %q", k, v, filters[k])
				}
			}
		})
	}
}

func TestAvatarService_RenameVideo(t *testing.T) {
	client := mocks.NewMockUpstreamClient()
	svc := newAvatarService(client)
	ctx := context.Background()

	_, err := svc.RenameVideo(ctx, &domain.RenameVideoRequest{AccessToken: "tok", FileName: "n"})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "avatar_video_id" {
		t.Errorf("expected ValidationError naming avatar_video_id, got %v", err)
	}

	_, err = svc.RenameVideo(ctx, &domain.RenameVideoRequest{AccessToken: "tok", AvatarVideoID: "v1"})
	if !errors.As(err, &vErr) || vErr.Field != "file_name" {
		t.Errorf("expected ValidationError naming file_name, got %v", err)
	}
	if client.CallCount() != 0 {
		t.Fatalf("expected zero upstream calls, got %d", client.CallCount())
	}

	if _, err := svc.RenameVideo(ctx, &domain.RenameVideoRequest{AccessToken: "tok", AvatarVideoID: "v1", FileName: "new name"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := client.LastCall().Body.(map[string]any)
	if payload["avatar_video_id"] != "v1" || payload["file_name"] != "new name" {
		t.Errorf("expected verbatim rename payload, got %v", payload)
	}
}

func TestAvatarService_List_PagingDefaults(t *testing.T) {
	client := mocks.NewMockUpstreamClient()
	svc := newAvatarService(client)

	if _, err := svc.List(context.Background(), "", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := client.LastCall()
	if call.Path != pathAvatarGet {
		t.Errorf("unexpected path %q", call.Path)
	}
	if call.Token != "default-tok" {
		t.Errorf("expected default token fallback, got %q", call.Token)
	}
	if call.Query.Get("page_size") != "10" {
		t.Errorf("expected avatar page_size default 10, got %q", call.Query.Get("page_size"))
	}
}

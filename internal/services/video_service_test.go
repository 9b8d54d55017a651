package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
	"github.com/pearmediallc/symphony-ai/internal/mocks"
)

func TestVideoService_Info(t *testing.T) {
	tests := []struct {
		name          string
		query         domain.VideoInfoQuery
		defaults      UpstreamDefaults
		expectedField string
	}{
		{
			name:          "missing advertiser id with no default",
			query:         domain.VideoInfoQuery{AccessToken: "tok", VideoIDs: `["v1"]`},
			defaults:      UpstreamDefaults{},
			expectedField: "advertiser_id",
		},
		{
			name:          "malformed video_ids",
			query:         domain.VideoInfoQuery{AccessToken: "tok", AdvertiserID: "adv", VideoIDs: "v1"},
			defaults:      UpstreamDefaults{},
			expectedField: "video_ids",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockUpstreamClient()
			svc := NewVideoService(client, tt.defaults, zap.NewNop())

			_, err := svc.Info(context.Background(), &tt.query)
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.expectedField {
				t.Errorf("expected error naming %q, got %q", tt.expectedField, vErr.Field)
			}
			if client.CallCount() != 0 {
				t.Errorf("expected zero upstream calls, got %d", client.CallCount())
			}
		})
	}
}

func TestVideoService_Info_AdvertiserFallback(t *testing.T) {
	client := mocks.NewMockUpstreamClient()
	svc := NewVideoService(client, UpstreamDefaults{AccessToken: "tok", AdvertiserID: "adv-default"}, zap.NewNop())

	q := domain.VideoInfoQuery{VideoIDs: `["v1","v2"]`}
	if _, err := svc.Info(context.Background(), &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := client.LastCall()
	if call.Path != pathVideoInfo {
		t.Errorf("unexpected path %q", call.Path)
	}
	if call.Query.Get("advertiser_id") != "adv-default" {
		t.Errorf("expected configured advertiser id, got %q", call.Query.Get("advertiser_id"))
	}
	if call.Query.Get("video_ids") != `["v1","v2"]` {
		t.Errorf("expected raw id array forwarded, got %q", call.Query.Get("video_ids"))
	}
}

func TestVideoService_AssetVideos(t *testing.T) {
	client := mocks.NewMockUpstreamClient()
	svc := NewVideoService(client, UpstreamDefaults{AccessToken: "tok", AdvertiserID: "adv"}, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.AssetVideos(ctx, &domain.AssetVideosQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := client.LastCall()
	if call.Path != pathVideoSearch {
		t.Errorf("unexpected path %q", call.Path)
	}
	q := call.Query
	if q.Get("page") != "1" || q.Get("page_size") != "10" {
		t.Errorf("expected paging defaults 1/10, got %s/%s", q.Get("page"), q.Get("page_size"))
	}

	before := client.CallCount()
	_, err := svc.AssetVideos(ctx, &domain.AssetVideosQuery{PageSize: "lots"})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "page_size" {
		t.Errorf("expected ValidationError naming page_size, got %v", err)
	}
	if client.CallCount() != before {
		t.Error("expected no upstream call for invalid paging")
	}
}

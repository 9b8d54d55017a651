package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
)

// VideoService relays advertiser video library operations.
type VideoService struct {
	client   domain.UpstreamClient
	defaults UpstreamDefaults
	logger   *zap.Logger
}

// NewVideoService creates a new video relay service.
func NewVideoService(client domain.UpstreamClient, defaults UpstreamDefaults, logger *zap.Logger) *VideoService {
	return &VideoService{client: client, defaults: defaults, logger: logger}
}

// Info relays a video metadata lookup for a JSON-array of video ids.
func (s *VideoService) Info(ctx context.Context, q *domain.VideoInfoQuery) (*domain.RelayResult, error) {
	token, err := resolveToken(q.AccessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	advertiserID, err := resolveAdvertiserID(q.AdvertiserID, s.defaults)
	if err != nil {
		return nil, err
	}
	raw, err := parseIDList(q.VideoIDs, "video_ids")
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"advertiser_id": {advertiserID},
		"video_ids":     {raw},
	}
	result, err := s.client.Call(ctx, http.MethodGet, pathVideoInfo, token, query, nil)
	if err != nil {
		return nil, err
	}
	return normalize(result, queryPayload(query)), nil
}

// AssetVideos relays a page of the advertiser's asset video library.
func (s *VideoService) AssetVideos(ctx context.Context, q *domain.AssetVideosQuery) (*domain.RelayResult, error) {
	token, err := resolveToken(q.AccessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	advertiserID, err := resolveAdvertiserID(q.AdvertiserID, s.defaults)
	if err != nil {
		return nil, err
	}
	p, err := parsePageValue(q.Page, defaultPage, "page")
	if err != nil {
		return nil, err
	}
	ps, err := parsePageValue(q.PageSize, assetVideoPageSize, "page_size")
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"advertiser_id": {advertiserID},
		"page":          {strconv.Itoa(p)},
		"page_size":     {strconv.Itoa(ps)},
	}
	s.logger.Debug("listing asset videos", zap.String("advertiser_id", advertiserID))

	result, err := s.client.Call(ctx, http.MethodGet, pathVideoSearch, token, query, nil)
	if err != nil {
		return nil, err
	}
	return normalize(result, queryPayload(query)), nil
}

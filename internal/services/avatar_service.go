package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
)

// AvatarService relays digital avatar operations.
type AvatarService struct {
	client   domain.UpstreamClient
	defaults UpstreamDefaults
	logger   *zap.Logger
}

// NewAvatarService creates a new avatar relay service.
func NewAvatarService(client domain.UpstreamClient, defaults UpstreamDefaults, logger *zap.Logger) *AvatarService {
	return &AvatarService{client: client, defaults: defaults, logger: logger}
}

// List relays the available-avatars listing.
func (s *AvatarService) List(ctx context.Context, accessToken, page, pageSize string) (*domain.RelayResult, error) {
	token, err := resolveToken(accessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	p, err := parsePageValue(page, defaultPage, "page")
	if err != nil {
		return nil, err
	}
	ps, err := parsePageValue(pageSize, avatarListPageSize, "page_size")
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"page":      {strconv.Itoa(p)},
		"page_size": {strconv.Itoa(ps)},
	}
	result, err := s.client.Call(ctx, http.MethodGet, pathAvatarGet, token, query, nil)
	if err != nil {
		return nil, err
	}
	return normalize(result, queryPayload(query)), nil
}

// CreateVideoTask validates the material packages and relays the avatar
// video task creation. Validation is fail-fast: the first offending package
// aborts the whole request before any upstream traffic.
func (s *AvatarService) CreateVideoTask(ctx context.Context, req *domain.AvatarVideoTaskRequest) (*domain.RelayResult, error) {
	token, err := resolveToken(req.AccessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	if len(req.MaterialPackages) == 0 {
		return nil, domain.RequiredField("material_packages")
	}
	for i, pkg := range req.MaterialPackages {
		if strings.TrimSpace(pkg.AvatarID) == "" {
			return nil, &domain.ValidationError{
				Field:   "avatar_id",
				Message: fmt.Sprintf("avatar_id is required in material_packages[%d]", i),
			}
		}
		if strings.TrimSpace(pkg.Script) == "" {
			return nil, &domain.ValidationError{
				Field:   "script",
				Message: fmt.Sprintf("script is required in material_packages[%d]", i),
			}
		}
	}

	payload := map[string]any{"material_packages": req.MaterialPackages}
	s.logger.Debug("creating avatar video task", zap.Int("packages", len(req.MaterialPackages)))

	result, err := s.client.Call(ctx, http.MethodPost, pathAvatarVideoTaskCreate, token, nil, payload)
	if err != nil {
		return nil, err
	}
	return normalize(result, payload), nil
}

// VideoTaskStatus relays a status lookup for a set of avatar video tasks.
// taskIDs arrives as a JSON-encoded array string and is forwarded verbatim
// once it parses.
func (s *AvatarService) VideoTaskStatus(ctx context.Context, accessToken, taskIDs string) (*domain.RelayResult, error) {
	token, err := resolveToken(accessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	raw, err := parseIDList(taskIDs, "task_ids")
	if err != nil {
		return nil, err
	}

	query := url.Values{"task_ids": {raw}}
	result, err := s.client.Call(ctx, http.MethodGet, pathAvatarVideoTaskGet, token, query, nil)
	if err != nil {
		return nil, err
	}
	return normalize(result, queryPayload(query)), nil
}

// ListVideos relays the avatar video listing. The filtering object is
// assembled only from the filters actually present and omitted entirely
// when none are.
func (s *AvatarService) ListVideos(ctx context.Context, q *domain.AvatarVideoListQuery) (*domain.RelayResult, error) {
	token, err := resolveToken(q.AccessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	p, err := parsePageValue(q.Page, defaultPage, "page")
	if err != nil {
		return nil, err
	}
	ps, err := parsePageValue(q.PageSize, avatarVideoPageSize, "page_size")
	if err != nil {
		return nil, err
	}

	filtering := map[string]string{}
	if v := strings.TrimSpace(q.AvatarID); v != "" {
		filtering["avatar_id"] = v
	}
	if v := strings.TrimSpace(q.StartDate); v != "" {
		filtering["start_date"] = v
	}
	if v := strings.TrimSpace(q.EndDate); v != "" {
		filtering["end_date"] = v
	}

	query := url.Values{
		"page":      {strconv.Itoa(p)},
		"page_size": {strconv.Itoa(ps)},
	}
	if len(filtering) > 0 {
		data, err := json.Marshal(filtering)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filtering: %w", err)
		}
		query.Set("filtering", string(data))
	}

	result, err := s.client.Call(ctx, http.MethodGet, pathAvatarVideoList, token, query, nil)
	if err != nil {
		return nil, err
	}
	return normalize(result, queryPayload(query)), nil
}

// RenameVideo relays an avatar video rename. The two fields travel verbatim.
func (s *AvatarService) RenameVideo(ctx context.Context, req *domain.RenameVideoRequest) (*domain.RelayResult, error) {
	token, err := resolveToken(req.AccessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	videoID := strings.TrimSpace(req.AvatarVideoID)
	if videoID == "" {
		return nil, domain.RequiredField("avatar_video_id")
	}
	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		return nil, domain.RequiredField("file_name")
	}

	payload := map[string]any{
		"avatar_video_id": videoID,
		"file_name":       fileName,
	}
	result, err := s.client.Call(ctx, http.MethodPost, pathVideoUpdate, token, nil, payload)
	if err != nil {
		return nil, err
	}
	return normalize(result, payload), nil
}

package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
)

// Script generation count bounds documented by the upstream API.
const (
	defaultScriptCount = 3
	minScriptCount     = 1
	maxScriptCount     = 8
)

// ScriptService relays script generation operations.
type ScriptService struct {
	client   domain.UpstreamClient
	defaults UpstreamDefaults
	logger   *zap.Logger
}

// NewScriptService creates a new script relay service.
func NewScriptService(client domain.UpstreamClient, defaults UpstreamDefaults, logger *zap.Logger) *ScriptService {
	return &ScriptService{client: client, defaults: defaults, logger: logger}
}

// defaultScriptInfo is attached to PRODUCT tasks when the caller omits one.
func defaultScriptInfo() map[string]any {
	return map[string]any{
		"tone":              "Friendly",
		"style":             "Product focused",
		"point_of_view":     "From consumer",
		"script_language":   "en",
		"relevant_industry": "All",
	}
}

// CreateTask validates a script task request, builds the mode-specific
// payload and relays it. The switch is exhaustive over the two modes so
// CUSTOM can never carry script_info (the upstream rejects it) and PRODUCT
// always carries one.
func (s *ScriptService) CreateTask(ctx context.Context, req *domain.ScriptTaskRequest) (*domain.RelayResult, error) {
	token, err := resolveToken(req.AccessToken, s.defaults)
	if err != nil {
		return nil, err
	}

	count := req.ScriptGenerationCount
	switch {
	case count == 0:
		count = defaultScriptCount
	case count < minScriptCount:
		count = minScriptCount
	case count > maxScriptCount:
		count = maxScriptCount
	}

	payload := map[string]any{"script_generation_count": count}

	switch mode := domain.ScriptMode(strings.ToUpper(req.Mode)); mode {
	case domain.ScriptModeCustom:
		prompt := strings.TrimSpace(req.CustomPrompt)
		if prompt == "" {
			return nil, &domain.ValidationError{
				Field:   "custom_prompt",
				Message: "custom_prompt is required for CUSTOM mode",
			}
		}
		payload["script_source"] = string(domain.ScriptModeCustom)
		payload["custom_prompt"] = prompt
	default:
		if req.ProductInfo == nil {
			return nil, &domain.ValidationError{
				Field:   "product_info",
				Message: "product_info is required for PRODUCT mode",
			}
		}
		payload["script_source"] = string(domain.ScriptModeProduct)
		info := req.ScriptInfo
		if info == nil {
			info = defaultScriptInfo()
		}
		payload["script_info"] = info
		payload["product_info"] = req.ProductInfo
		if req.MediaList != nil {
			payload["media_list"] = req.MediaList
		}
		// Anything outside the supported durations is dropped, not rejected.
		if req.VideoDuration == "15S" || req.VideoDuration == "30S" {
			payload["video_duration"] = req.VideoDuration
		}
	}

	s.logger.Debug("creating script task", zap.Any("payload", payload))
	result, err := s.client.Call(ctx, http.MethodPost, pathScriptTaskCreate, token, nil, payload)
	if err != nil {
		return nil, err
	}
	return normalize(result, payload), nil
}

// TaskStatus relays a script task status lookup.
func (s *ScriptService) TaskStatus(ctx context.Context, accessToken, taskID string) (*domain.RelayResult, error) {
	token, err := resolveToken(accessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, domain.RequiredField("task_id")
	}

	query := url.Values{"task_id": {taskID}}
	result, err := s.client.Call(ctx, http.MethodGet, pathScriptTaskGet, token, query, nil)
	if err != nil {
		return nil, err
	}
	return normalize(result, queryPayload(query)), nil
}

// List relays the generated-scripts listing.
func (s *ScriptService) List(ctx context.Context, accessToken, page, pageSize string) (*domain.RelayResult, error) {
	token, err := resolveToken(accessToken, s.defaults)
	if err != nil {
		return nil, err
	}
	p, err := parsePageValue(page, defaultPage, "page")
	if err != nil {
		return nil, err
	}
	ps, err := parsePageValue(pageSize, scriptListPageSize, "page_size")
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"page":      {strconv.Itoa(p)},
		"page_size": {strconv.Itoa(ps)},
	}
	result, err := s.client.Call(ctx, http.MethodGet, pathScriptList, token, query, nil)
	if err != nil {
		return nil, err
	}
	return normalize(result, queryPayload(query)), nil
}

package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pearmediallc/symphony-ai/domain"
)

// Upstream endpoint paths, relative to the configured base URL.
const (
	pathScriptTaskCreate      = "/creative/aigc/script_generation/task/create/"
	pathScriptTaskGet         = "/creative/aigc/script/task/get/"
	pathScriptList            = "/creative/aigc/script/list/"
	pathAvatarGet             = "/creative/digital_avatar/get/"
	pathAvatarVideoTaskCreate = "/creative/digital_avatar/video/task/create/"
	pathAvatarVideoTaskGet    = "/creative/digital_avatar/video/task/get/"
	pathAvatarVideoList       = "/creative/digital_avatar/video/list/"
	pathVideoUpdate           = "/file/video/ad/update/"
	pathVideoInfo             = "/file/video/ad/info/"
	pathVideoSearch           = "/file/video/ad/search/"
)

// Per-operation paging defaults.
const (
	defaultPage         = 1
	scriptListPageSize  = 20
	avatarListPageSize  = 10
	avatarVideoPageSize = 10
	assetVideoPageSize  = 10
)

// UpstreamDefaults carries the configured fallback credentials applied when
// a caller sends none of its own.
type UpstreamDefaults struct {
	AccessToken  string
	AdvertiserID string
}

func resolveToken(raw string, defaults UpstreamDefaults) (string, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		token = strings.TrimSpace(defaults.AccessToken)
	}
	if token == "" {
		return "", domain.RequiredField("access_token")
	}
	return token, nil
}

func resolveAdvertiserID(raw string, defaults UpstreamDefaults) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		id = strings.TrimSpace(defaults.AdvertiserID)
	}
	if id == "" {
		return "", domain.RequiredField("advertiser_id")
	}
	return id, nil
}

// parsePageValue validates one paging parameter, applying the per-operation
// default when the caller sent nothing.
func parsePageValue(raw string, def int, field string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Message: field + " must be an integer"}
	}
	return n, nil
}

// parseIDList validates a JSON-encoded array string (task_ids, video_ids)
// and hands back the trimmed raw value for verbatim forwarding.
func parseIDList(raw, field string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domain.RequiredField(field)
	}
	var ids []any
	if err := json.Unmarshal([]byte(trimmed), &ids); err != nil {
		return "", &domain.ValidationError{Field: field, Message: field + " must be a valid JSON array"}
	}
	return trimmed, nil
}

// queryPayload echoes forwarded query parameters back in error envelopes.
func queryPayload(query url.Values) map[string]any {
	payload := make(map[string]any, len(query))
	for k := range query {
		payload[k] = query.Get(k)
	}
	return payload
}

// normalize applies the upstream success convention: HTTP 200 together with
// a zero-equivalent code field means pass-through; anything else becomes an
// error envelope carrying enough context to debug the rejected call.
func normalize(result *domain.UpstreamResult, payload any) *domain.RelayResult {
	code, hasCode := result.Body["code"]
	if result.Status == http.StatusOK && hasCode && fmt.Sprintf("%v", code) == "0" {
		return &domain.RelayResult{Status: result.Status, Body: result.Body}
	}

	message := "Unknown error"
	if m, ok := result.Body["message"].(string); ok && m != "" {
		message = m
	}

	status := result.Status
	if status == http.StatusOK {
		// Logical failure under a success status.
		status = http.StatusBadRequest
	}

	return &domain.RelayResult{
		Status: status,
		Body: map[string]any{
			"error":           "TikTok API Error",
			"message":         message,
			"code":            code,
			"details":         fmt.Sprintf("Status: %d, Code: %v", result.Status, code),
			"request_payload": payload,
			"tiktok_response": result.Body,
		},
	}
}

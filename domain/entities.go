package domain

import "time"

// Session is the server-side authentication state for one browser. A session
// exists only between a successful login and the matching logout or expiry.
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// ScriptMode selects which field set a script generation task carries.
// Anything other than CUSTOM is treated as PRODUCT.
type ScriptMode string

const (
	ScriptModeCustom  ScriptMode = "CUSTOM"
	ScriptModeProduct ScriptMode = "PRODUCT"
)

// ScriptTaskRequest is the inbound body for script generation task creation.
// ScriptInfo, ProductInfo and MediaList are opaque pass-through objects.
type ScriptTaskRequest struct {
	AccessToken           string         `json:"access_token"`
	Mode                  string         `json:"mode"`
	CustomPrompt          string         `json:"custom_prompt"`
	ScriptGenerationCount int            `json:"script_generation_count"`
	ScriptInfo            map[string]any `json:"script_info"`
	ProductInfo           map[string]any `json:"product_info"`
	MediaList             map[string]any `json:"media_list"`
	VideoDuration         string         `json:"video_duration"`
}

// MaterialPackage bundles one avatar with one script for video generation.
type MaterialPackage struct {
	AvatarID  string `json:"avatar_id"`
	Script    string `json:"script"`
	VideoName string `json:"video_name,omitempty"`
	PackageID string `json:"package_id,omitempty"`
}

// AvatarVideoTaskRequest is the inbound body for avatar video task creation.
type AvatarVideoTaskRequest struct {
	AccessToken      string            `json:"access_token"`
	MaterialPackages []MaterialPackage `json:"material_packages"`
}

// RenameVideoRequest is the inbound body for renaming an avatar video.
type RenameVideoRequest struct {
	AccessToken   string `json:"access_token"`
	AvatarVideoID string `json:"avatar_video_id"`
	FileName      string `json:"file_name"`
}

// AvatarVideoListQuery filters the avatar video listing. Paging values stay
// raw strings until the translator validates them.
type AvatarVideoListQuery struct {
	AccessToken string
	AvatarID    string
	StartDate   string
	EndDate     string
	Page        string
	PageSize    string
}

// VideoInfoQuery looks up metadata for a set of videos. VideoIDs is a
// JSON-encoded array string, forwarded verbatim once it parses.
type VideoInfoQuery struct {
	AccessToken  string
	AdvertiserID string
	VideoIDs     string
}

// AssetVideosQuery pages through the advertiser's asset video library.
type AssetVideosQuery struct {
	AccessToken  string
	AdvertiserID string
	Page         string
	PageSize     string
}

// UpstreamResult is a decoded reply from the advertising API.
type UpstreamResult struct {
	Status int
	Body   map[string]any
}

// RelayResult is what a relay operation hands back to the HTTP layer: a
// status code and a body to emit verbatim.
type RelayResult struct {
	Status int
	Body   any
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
	"github.com/pearmediallc/symphony-ai/internal/services"
)

// RelayHandlers exposes the relay operations over HTTP. Every route here is
// behind the session gate.
type RelayHandlers struct {
	scriptSvc *services.ScriptService
	avatarSvc *services.AvatarService
	videoSvc  *services.VideoService
	defaults  services.UpstreamDefaults
	logger    *zap.Logger
}

// NewRelayHandlers creates new relay handlers.
func NewRelayHandlers(
	scriptSvc *services.ScriptService,
	avatarSvc *services.AvatarService,
	videoSvc *services.VideoService,
	defaults services.UpstreamDefaults,
	logger *zap.Logger,
) *RelayHandlers {
	return &RelayHandlers{
		scriptSvc: scriptSvc,
		avatarSvc: avatarSvc,
		videoSvc:  videoSvc,
		defaults:  defaults,
		logger:    logger,
	}
}

// GetConfig handles GET /api/get_config: the server-configured defaults the
// front end pre-fills its forms with.
func (h *RelayHandlers) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"access_token":  h.defaults.AccessToken,
		"advertiser_id": h.defaults.AdvertiserID,
	})
}

// CreateTask handles POST /api/create_task.
func (h *RelayHandlers) CreateTask(c *gin.Context) {
	var req domain.ScriptTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.scriptSvc.CreateTask(c.Request.Context(), &req)
	h.respond(c, result, err)
}

// TaskStatus handles GET /api/task_status.
func (h *RelayHandlers) TaskStatus(c *gin.Context) {
	result, err := h.scriptSvc.TaskStatus(c.Request.Context(), c.Query("access_token"), c.Query("task_id"))
	h.respond(c, result, err)
}

// ListScripts handles GET /api/list_scripts.
func (h *RelayHandlers) ListScripts(c *gin.Context) {
	result, err := h.scriptSvc.List(c.Request.Context(), c.Query("access_token"), c.Query("page"), c.Query("page_size"))
	h.respond(c, result, err)
}

// GetAvatars handles GET /api/get_avatars.
func (h *RelayHandlers) GetAvatars(c *gin.Context) {
	result, err := h.avatarSvc.List(c.Request.Context(), c.Query("access_token"), c.Query("page"), c.Query("page_size"))
	h.respond(c, result, err)
}

// CreateAvatarVideoTask handles POST /api/create_avatar_video_task.
func (h *RelayHandlers) CreateAvatarVideoTask(c *gin.Context) {
	var req domain.AvatarVideoTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.avatarSvc.CreateVideoTask(c.Request.Context(), &req)
	h.respond(c, result, err)
}

// AvatarVideoTaskStatus handles GET /api/get_avatar_video_task_status.
func (h *RelayHandlers) AvatarVideoTaskStatus(c *gin.Context) {
	result, err := h.avatarSvc.VideoTaskStatus(c.Request.Context(), c.Query("access_token"), c.Query("task_ids"))
	h.respond(c, result, err)
}

// ListAvatarVideos handles GET /api/list_avatar_videos.
func (h *RelayHandlers) ListAvatarVideos(c *gin.Context) {
	q := domain.AvatarVideoListQuery{
		AccessToken: c.Query("access_token"),
		AvatarID:    c.Query("avatar_id"),
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		Page:        c.Query("page"),
		PageSize:    c.Query("page_size"),
	}
	result, err := h.avatarSvc.ListVideos(c.Request.Context(), &q)
	h.respond(c, result, err)
}

// UpdateAvatarVideoName handles POST /api/update_avatar_video_name.
func (h *RelayHandlers) UpdateAvatarVideoName(c *gin.Context) {
	var req domain.RenameVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.avatarSvc.RenameVideo(c.Request.Context(), &req)
	h.respond(c, result, err)
}

// GetVideoInfo handles GET /api/get_video_info.
func (h *RelayHandlers) GetVideoInfo(c *gin.Context) {
	q := domain.VideoInfoQuery{
		AccessToken:  c.Query("access_token"),
		AdvertiserID: c.Query("advertiser_id"),
		VideoIDs:     c.Query("video_ids"),
	}
	result, err := h.videoSvc.Info(c.Request.Context(), &q)
	h.respond(c, result, err)
}

// GetAssetsVideos handles GET /api/get_assets_videos.
func (h *RelayHandlers) GetAssetsVideos(c *gin.Context) {
	q := domain.AssetVideosQuery{
		AccessToken:  c.Query("access_token"),
		AdvertiserID: c.Query("advertiser_id"),
		Page:         c.Query("page"),
		PageSize:     c.Query("page_size"),
	}
	result, err := h.videoSvc.AssetVideos(c.Request.Context(), &q)
	h.respond(c, result, err)
}

// respond emits a relay result, or maps the error taxonomy onto statuses:
// validation 400, transport 502, anything unexpected a wrapped 500.
func (h *RelayHandlers) respond(c *gin.Context, result *domain.RelayResult, err error) {
	if err != nil {
		var vErr *domain.ValidationError
		var tErr *domain.TransportError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
		case errors.As(err, &tErr):
			h.logger.Error("upstream transport failure", zap.Error(tErr))
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Request failed: %v", tErr.Err)})
		default:
			h.logger.Error("unexpected relay failure", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
		}
		return
	}
	c.JSON(result.Status, result.Body)
}

// bindError turns a gin binding failure into a 400, naming the offending
// fields when the validator knows them.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid fields", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}

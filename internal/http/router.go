package httpx

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/pearmediallc/symphony-ai/internal/http/handlers"
	"github.com/pearmediallc/symphony-ai/internal/http/middleware"
)

// BuildRouter wires every route. The login page and POST /login are open;
// everything operational sits behind the session gate.
func BuildRouter(ah *handlers.AuthHandlers, rh *handlers.RelayHandlers, sess *middleware.SessionMW, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/login", ah.Login)
	r.GET("/login", servePage(staticDir, "login.html"))

	pages := r.Group("/").Use(sess.RequireSession())
	pages.GET("/", servePage(staticDir, "index.html"))
	pages.GET("/script_generator", servePage(staticDir, "script_generator", "index.html"))
	pages.GET("/avatar", servePage(staticDir, "avatar", "index.html"))
	pages.GET("/logout", ah.Logout)

	api := r.Group("/api").Use(sess.RequireSession())
	api.GET("/get_config", rh.GetConfig)
	api.POST("/create_task", rh.CreateTask)
	api.GET("/task_status", rh.TaskStatus)
	api.GET("/list_scripts", rh.ListScripts)
	api.GET("/get_avatars", rh.GetAvatars)
	api.POST("/create_avatar_video_task", rh.CreateAvatarVideoTask)
	api.GET("/get_avatar_video_task_status", rh.AvatarVideoTaskStatus)
	api.GET("/list_avatar_videos", rh.ListAvatarVideos)
	api.POST("/update_avatar_video_name", rh.UpdateAvatarVideoName)
	api.GET("/get_video_info", rh.GetVideoInfo)
	api.GET("/get_assets_videos", rh.GetAssetsVideos)

	return r
}

func servePage(staticDir string, parts ...string) gin.HandlerFunc {
	page := filepath.Join(append([]string{staticDir}, parts...)...)
	return func(c *gin.Context) {
		c.File(page)
	}
}

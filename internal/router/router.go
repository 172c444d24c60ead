package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mahmoudessam820/planpilot/internal/config"
	"github.com/mahmoudessam820/planpilot/internal/handlers"
	"github.com/mahmoudessam820/planpilot/internal/middleware"
	"github.com/mahmoudessam820/planpilot/internal/types"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Disallowed methods on a known route answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded attachments, avatars and cover photos.
	r.Static(cfg.MediaURL, cfg.UploadDir)

	r.GET("/health/", handlers.HealthCheck)

	r.GET("/signup/", handlers.SignupPage)
	r.POST("/signup/", handlers.Signup)
	r.GET("/login/", handlers.LoginPage)
	r.POST("/login/", handlers.Login)
	r.POST("/logout/", handlers.Logout)

	authed := r.Group("", middleware.AuthMiddleware())
	{
		authed.GET("/me/", handlers.Me)

		authed.GET("/profile/", handlers.GetProfile)
		authed.GET("/profile/edit/", handlers.EditProfilePage)
		authed.POST("/profile/edit/", handlers.EditProfile)

		projects := authed.Group("/projects")
		{
			projects.GET("/", handlers.ListProjects)
			projects.POST("/add/", handlers.CreateProject)
			projects.GET("/:project_id/", handlers.GetProject)
			projects.GET("/:project_id/edit/", handlers.EditProjectPage)
			projects.POST("/:project_id/edit/", handlers.EditProject)
			projects.POST("/:project_id/delete/", handlers.DeleteProject)

			// Files and notes hang off the project.
			projects.POST("/:project_id/files/upload/", handlers.UploadFile)
			projects.POST("/:project_id/files/:file_id/delete/", handlers.DeleteFile)

			projects.POST("/:project_id/notes/add/", handlers.AddNote)
			projects.GET("/:project_id/notes/:note_id/", handlers.GetNote)
			projects.GET("/:project_id/notes/:note_id/edit/", handlers.EditNotePage)
			projects.POST("/:project_id/notes/:note_id/edit/", handlers.EditNote)
			projects.POST("/:project_id/notes/:note_id/delete/", handlers.DeleteNote)

			// Todolists and tasks follow the nested id path shape.
			projects.POST("/:project_id/add/", handlers.AddTodolist)
			projects.GET("/:project_id/:todolist_id/", handlers.GetTodolist)
			projects.GET("/:project_id/:todolist_id/edit/", handlers.EditTodolistPage)
			projects.POST("/:project_id/:todolist_id/edit/", handlers.EditTodolist)
			projects.POST("/:project_id/:todolist_id/delete/", handlers.DeleteTodolist)

			projects.POST("/:project_id/:todolist_id/add/", handlers.AddTask)
			projects.GET("/:project_id/:todolist_id/:task_id/", handlers.GetTask)
			projects.GET("/:project_id/:todolist_id/:task_id/edit/", handlers.EditTaskPage)
			projects.POST("/:project_id/:todolist_id/:task_id/edit/", handlers.EditTask)
			projects.POST("/:project_id/:todolist_id/:task_id/delete/", handlers.DeleteTask)
			projects.POST("/:project_id/:todolist_id/:task_id/complete/", handlers.CompleteTask)
		}
	}

	return r
}

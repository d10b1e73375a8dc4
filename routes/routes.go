package routes

import (
	"net/http"

	"blogly/handlers"
	"blogly/helper"
	"blogly/repositories"
	"blogly/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto the router.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, userRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)

	// Handlers
	h := helper.NewHTTPHelper()
	userHandler := handlers.NewUserHandler(userService, h)
	postHandler := handlers.NewPostHandler(postService, userService, tagService, h)
	tagHandler := handlers.NewTagHandler(tagService, h)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})

	users := r.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/new", userHandler.NewUserForm)
		users.POST("/new", userHandler.CreateUser)
		users.GET("/:id", userHandler.ShowUser)
		users.GET("/:id/edit", userHandler.EditUserForm)
		users.POST("/:id/edit", userHandler.UpdateUser)
		users.POST("/:id/delete", userHandler.DeleteUser)
		users.GET("/:id/posts/new", postHandler.NewPostForm)
		users.POST("/:id/posts/new", postHandler.CreatePost)
	}

	posts := r.Group("/posts")
	{
		posts.GET("/:id", postHandler.ShowPost)
		posts.GET("/:id/edit", postHandler.EditPostForm)
		posts.POST("/:id/edit", postHandler.UpdatePost)
		posts.POST("/:id/delete", postHandler.DeletePost)
	}

	tags := r.Group("/tags")
	{
		tags.GET("", tagHandler.ListTags)
		tags.GET("/new", tagHandler.NewTagForm)
		tags.POST("/new", tagHandler.CreateTag)
		tags.GET("/:id", tagHandler.ShowTag)
		tags.GET("/:id/edit", tagHandler.EditTagForm)
		tags.POST("/:id/edit", tagHandler.UpdateTag)
		tags.POST("/:id/delete", tagHandler.DeleteTag)
	}

	r.NoRoute(func(c *gin.Context) {
		h.RenderNotFound(c, "")
	})
}

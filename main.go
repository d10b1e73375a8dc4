package main

import (
	"log"
	"os"
	"time"

	"blogly/config"
	"blogly/models"
	"blogly/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	if os.Getenv("SEED_DB") == "true" {
		seedDatabase(db)
	}

	// Setup router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.SetFuncMap(routes.TemplateFuncs)
	router.LoadHTMLGlob("templates/*.html")

	routes.SetupRoutes(router, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(router.Run(":" + port))
}

// seedDatabase loads the sample users and posts on an empty database.
func seedDatabase(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	users := []models.User{
		{FirstName: "Vera", LastName: "Nouaime", ImageURL: models.DefaultImageURL},
		{FirstName: "John", LastName: "Smith", ImageURL: models.DefaultImageURL},
		{FirstName: "Susie", LastName: "Sal", ImageURL: models.DefaultImageURL},
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("Failed to seed users: ", err)
		}
	}

	titles := []string{"First Post", "Second Post", "Third Post"}
	contents := []string{
		"This is my first post!",
		"This is my second post!",
		"This is my third post!",
	}

	for _, user := range users {
		for i := range titles {
			post := models.Post{
				Title:     titles[i],
				Content:   contents[i],
				CreatedAt: time.Now(),
				UserID:    user.ID,
			}
			if err := db.Create(&post).Error; err != nil {
				log.Fatal("Failed to seed posts: ", err)
			}
		}
	}

	log.Println("Database seeded with sample data")
}

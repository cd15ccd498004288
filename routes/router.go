package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/config"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/controllers"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/middlewares"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/services"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/storage"
)

// SetupRouter wires every endpoint. Public reads and team submissions are
// open (teams authenticate by access code on the client); admin mutations
// require a staff bearer token.
func SetupRouter(store storage.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = services.MaxUploadBytes

	// Uploaded images are served straight from disk.
	r.Static("/uploads", cfg.UploadDir)

	uploader := services.NewUploader(cfg.UploadDir)
	secret := []byte(cfg.JWTSecret)

	authCtrl := controllers.NewAuthController(store, secret)
	teamCtrl := controllers.NewTeamController(store)
	challengeCtrl := controllers.NewChallengeController(store)
	photoCtrl := controllers.NewPhotoController(store, uploader)
	facebookCtrl := controllers.NewFacebookController(store, uploader)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authCtrl.Login)
			authRoutes.POST("/register", middlewares.JWTAuth(secret), authCtrl.Register)
		}

		api.GET("/teams", teamCtrl.List)
		api.GET("/teams/code/:code", teamCtrl.GetByCode)
		api.GET("/teams/:id", teamCtrl.GetByID)
		api.GET("/teams/:id/photos", photoCtrl.ListByTeam)

		api.GET("/challenges", challengeCtrl.List)
		api.GET("/challenges/:id", challengeCtrl.GetByID)

		api.GET("/photos", photoCtrl.List)
		api.POST("/photos", photoCtrl.Create)
		api.POST("/upload-photo", photoCtrl.Upload)

		facebookRoutes := api.Group("/facebook")
		{
			facebookRoutes.GET("/albums", facebookCtrl.ListAlbums)
			facebookRoutes.GET("/albums/:id", facebookCtrl.GetAlbum)
			facebookRoutes.GET("/albums/:id/photos", facebookCtrl.ListAlbumPhotos)
		}

		adminRoutes := api.Group("")
		adminRoutes.Use(middlewares.JWTAuth(secret))
		{
			adminRoutes.POST("/teams", teamCtrl.Create)
			adminRoutes.PATCH("/teams/:id/score", teamCtrl.UpdateScore)
			adminRoutes.POST("/challenges", challengeCtrl.Create)
			adminRoutes.PATCH("/photos/:id/status", photoCtrl.UpdateStatus)
			adminRoutes.POST("/facebook/albums", facebookCtrl.CreateAlbum)
			adminRoutes.POST("/facebook/photos", facebookCtrl.CreatePhoto)
			adminRoutes.POST("/facebook/albums/cover-upload", facebookCtrl.UploadCover)
		}
	}

	return r
}

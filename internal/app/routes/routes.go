package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	jwtService *auth.JWTService,
	users middleware.UserLoader,
	uploadsDir string,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Uploaded files are served straight from local storage
	router.Static("/uploads", uploadsDir)

	// --- Public auth routes ---
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", ctrls.Auth.Register)
		authRoutes.POST("/login", ctrls.Auth.Login)
		authRoutes.POST("/refresh", ctrls.Auth.RefreshToken)
	}

	// --- Public read routes ---
	// Approved content is readable without a token; a valid token widens
	// the view to the caller's own pending uploads and fills in hasLiked.
	public := v1.Group("")
	public.Use(middleware.OptionalJWTAuth(jwtService, users))
	{
		public.GET("/categories", ctrls.Category.ListCategories)
		public.GET("/categories/:id", ctrls.Category.GetCategoryByID)

		public.GET("/photos", ctrls.Photo.ListPhotos)
		public.GET("/photos/featured", ctrls.Photo.ListFeaturedPhotos)
		public.GET("/photos/:id", ctrls.Photo.GetPhotoByID)

		public.GET("/rewards", ctrls.Reward.ListRewards)
		public.GET("/rewards/:id", ctrls.Reward.GetRewardByID)

		public.GET("/documents", ctrls.Document.ListDocuments)
		public.GET("/documents/:id", ctrls.Document.GetDocumentByID)

		public.GET("/comments", ctrls.Comment.ListComments)

		public.GET("/featured-photos", ctrls.Photo.ListFeaturedPhotos)

		public.GET("/search", ctrls.Search.Search)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService, users))
	{
		authenticated.POST("/auth/logout", ctrls.Auth.Logout)

		// Profile routes for the calling account
		profile := authenticated.Group("/auth/profile")
		{
			profile.GET("", ctrls.User.GetMyProfile)
			profile.PUT("", ctrls.User.UpdateMyProfile)
			profile.POST("/photo", ctrls.User.UploadProfilePhoto)
		}

		// User routes
		usersRoutes := authenticated.Group("/users")
		{
			usersRoutes.GET("/:id", ctrls.User.GetUserByID)

			usersAdmin := usersRoutes.Group("")
			usersAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				usersAdmin.GET("", ctrls.User.ListUsers)
			}
		}

		// Category writes. Creation is limited to staff and representatives,
		// updates and deletes are further checked against ownership.
		categories := authenticated.Group("/categories")
		categories.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleRepresentative))
		{
			categories.POST("", ctrls.Category.CreateCategory)
			categories.PUT("/:id", ctrls.Category.UpdateCategory)
			categories.DELETE("/:id", ctrls.Category.DeleteCategory)
		}

		// Photo writes
		photos := authenticated.Group("/photos")
		{
			photos.POST("", ctrls.Photo.UploadPhoto)
			photos.PUT("/:id", ctrls.Photo.UpdatePhoto)
			photos.DELETE("/:id", ctrls.Photo.DeletePhoto)
			photos.POST("/:id/like", ctrls.Photo.ToggleLikePhoto)

			photosAdmin := photos.Group("")
			photosAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				photosAdmin.POST("/:id/approve", ctrls.Photo.ApprovePhoto)
			}
		}

		// Reward writes. Creation is limited to staff and representatives.
		rewards := authenticated.Group("/rewards")
		{
			rewards.POST("/:id/like", ctrls.Reward.ToggleLikeReward)

			rewardsProtected := rewards.Group("")
			rewardsProtected.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleRepresentative))
			{
				rewardsProtected.POST("", ctrls.Reward.CreateReward)
				rewardsProtected.PUT("/:id", ctrls.Reward.UpdateReward)
				rewardsProtected.DELETE("/:id", ctrls.Reward.DeleteReward)
			}
		}

		// Document writes
		documents := authenticated.Group("/documents")
		{
			documents.POST("", ctrls.Document.UploadDocument)
			documents.PUT("/:id", ctrls.Document.UpdateDocument)
			documents.DELETE("/:id", ctrls.Document.DeleteDocument)
			documents.POST("/:id/like", ctrls.Document.ToggleLikeDocument)

			documentsAdmin := documents.Group("")
			documentsAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				documentsAdmin.POST("/:id/approve", ctrls.Document.ApproveDocument)
			}
		}

		// Comment writes span all commentable resources
		comments := authenticated.Group("/comments")
		{
			comments.POST("", ctrls.Comment.CreateComment)
			comments.PUT("/:id", ctrls.Comment.UpdateComment)
			comments.DELETE("/:id", ctrls.Comment.DeleteComment)
		}

		// Representative application routes. Applicants see their own
		// applications; review actions are admin only.
		representativeRequests := authenticated.Group("/representative-requests")
		{
			representativeRequests.POST("", ctrls.Representative.SubmitRequest)
			representativeRequests.GET("", ctrls.Representative.ListRequests)
			representativeRequests.GET("/:id", ctrls.Representative.GetRequestByID)

			representativeAdmin := representativeRequests.Group("")
			representativeAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				representativeAdmin.POST("/:id/approve", ctrls.Representative.ApproveRequest)
				representativeAdmin.POST("/:id/reject", ctrls.Representative.RejectRequest)
			}
		}

		// Featured rotation management
		featured := authenticated.Group("/featured-photos")
		featured.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleRepresentative))
		{
			featured.DELETE("/:id", ctrls.Photo.RetireFeaturedPhoto)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}

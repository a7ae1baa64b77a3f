package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/controllers/carwash_controller"
	"github.com/zenapticlabs/washbuddy-backend/controllers/catalog_controller"
	"github.com/zenapticlabs/washbuddy-backend/controllers/offer_controller"
	"github.com/zenapticlabs/washbuddy-backend/controllers/payment_controller"
	"github.com/zenapticlabs/washbuddy-backend/controllers/review_controller"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
)

// SetupCarWashRoutes wires discovery, catalog, offer, review, and payment
// endpoints under /carwash.
func SetupCarWashRoutes(router *gin.RouterGroup) {
	carwash := router.Group("/carwash")
	{
		// Discovery (public; optional auth only feeds attribution + points)
		carwash.GET("/list-car-wash", carwash_controller.ListCarWashes)
		carwash.GET("/:id", carwash_controller.GetCarWashByID)
		carwash.POST("", middleware.OptionalAuth(), carwash_controller.CreateCarWash)
		carwash.PATCH("/:id", middleware.AuthMiddleware(), carwash_controller.UpdateCarWash)
		carwash.POST("/:id/images", middleware.AuthMiddleware(), carwash_controller.UploadCarWashImages)

		// Filter panel catalogs
		carwash.GET("/wash-types", catalog_controller.GetWashTypes)
		carwash.GET("/amenities", catalog_controller.GetAmenities)

		// Offers
		offers := carwash.Group("/offers")
		{
			offers.GET("/search", offer_controller.SearchOffers)
			offers.GET("/featured", offer_controller.GetFeaturedOffer)
			offers.POST("", middleware.AuthMiddleware(), offer_controller.CreateOffer)
		}

		// Reviews
		carwash.GET("/:id/reviews", review_controller.GetReviews)
		carwash.POST("/:id/reviews", middleware.AuthMiddleware(), review_controller.CreateReview)

		// Payments
		carwash.POST("/create-payment-intent", middleware.OptionalAuth(), payment_controller.CreatePaymentIntent)
		carwash.GET("/payment-status/:paymentIntentId", payment_controller.GetPaymentStatus)
		carwash.POST("/stripe-webhook", payment_controller.StripeWebhook)
		payments := carwash.Group("/payments", middleware.AuthMiddleware())
		{
			payments.GET("/history", payment_controller.GetPaymentHistory)
			payments.GET("/:id/receipt", payment_controller.DownloadReceiptPDF)
		}
	}
}

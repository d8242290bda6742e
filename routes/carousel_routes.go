package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/controllers"
)

func SetupCarouselRoutes(admin *gin.RouterGroup, carouselController *controllers.CarouselController) {
	carousel := admin.Group("/carousel-images")
	{
		carousel.GET("/all", carouselController.ListAllImages)
		carousel.POST("", carouselController.CreateImage)
		carousel.PUT("/:id", carouselController.UpdateImage)
		carousel.DELETE("/:id", carouselController.DeleteImage)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/controllers"
)

func SetupPlaceRoutes(protected *gin.RouterGroup, placeController *controllers.PlaceController, placeTypeController *controllers.PlaceTypeController) {
	places := protected.Group("/places")
	{
		places.POST("", placeController.CreatePlace)
		places.PUT("/:id", placeController.UpdatePlace)
		places.DELETE("/:id", placeController.DeletePlace)
	}

	placeTypes := protected.Group("/place-types")
	{
		placeTypes.POST("", placeTypeController.CreatePlaceType)
		placeTypes.PUT("/:id", placeTypeController.UpdatePlaceType)
		placeTypes.DELETE("/:id", placeTypeController.DeletePlaceType)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/controllers"
)

func SetupFriendRoutes(protected *gin.RouterGroup, friendController *controllers.FriendController, feedController *controllers.FeedController) {
	friends := protected.Group("/friends")
	{
		friends.GET("", friendController.ListFriends)
		friends.POST("", friendController.AddFriend)
		friends.DELETE("/:id", friendController.RemoveFriend)
		friends.GET("/:id/places", friendController.ListFriendPlaces)
		friends.POST("/places/:placeId/clone", friendController.ClonePlace)
	}

	feed := protected.Group("/feed")
	{
		feed.GET("", feedController.GetFeed)
	}
}

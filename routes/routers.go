package routes

import (
	"net/http"

	"hotelinfo/constants"
	"hotelinfo/controllers"
	"hotelinfo/docs"
	"hotelinfo/metrics"
	middlewares "hotelinfo/middleware"
	"hotelinfo/repository"
	"hotelinfo/services"
	"hotelinfo/services/logger"
	"hotelinfo/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the HTTP layer is built from.
type Dependencies struct {
	Repo     repository.HotelInfoRepository
	Cache    services.Cache
	Blobs    services.BlobStore
	Tokens   *services.TokenService
	Auth     *services.AuthService
	Booking  *services.BookingFacade
	Search   *services.SearchService
	Logger   *logger.ZerologLogger
	Registry *prometheus.Registry
	// LoginLimiter throttles POST /auth/login per client IP; nil disables it.
	LoginLimiter *middlewares.RateLimiter
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	validator.Setup()

	router.Use(
		middlewares.RequestID(),
		middlewares.Logger(deps.Logger.Zerolog()),
		middlewares.Metrics(),
		middlewares.ErrorHandler(deps.Logger.Zerolog()),
	)

	cityController := controllers.NewCityController(deps.Repo, deps.Cache, deps.Logger)
	hotelController := controllers.NewHotelController(deps.Repo, deps.Cache, deps.Logger)
	roomController := controllers.NewRoomController(deps.Repo, deps.Cache, deps.Logger)
	roomClassController := controllers.NewRoomClassController(deps.Repo, deps.Cache, deps.Logger)
	amenityController := controllers.NewAmenityController(deps.Repo, deps.Cache, deps.Logger)
	photoController := controllers.NewPhotoController(deps.Repo, deps.Blobs, deps.Cache, deps.Logger)
	bookingController := controllers.NewBookingController(deps.Repo, deps.Booking)
	authController := controllers.NewAuthController(deps.Auth)
	searchController := controllers.NewSearchController(deps.Search)

	authenticated := middlewares.AuthMiddleware(deps.Tokens)
	requireAdmin := middlewares.RoleMiddleware(constants.RoleAdmin)
	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{authenticated, requireAdmin, h}
	}

	v1 := router.Group(docs.SwaggerInfo.BasePath)

	login := []gin.HandlerFunc{authController.Login}
	if deps.LoginLimiter != nil {
		login = append([]gin.HandlerFunc{deps.LoginLimiter.Middleware()}, login...)
	}
	v1.POST("/auth/login", login...)

	v1.GET("/cities", cityController.GetCities)
	v1.POST("/cities", admin(cityController.CreateCity)...)
	v1.GET("/cities/:cityId", cityController.GetCity)
	v1.PUT("/cities/:cityId", admin(cityController.UpdateCity)...)
	v1.PATCH("/cities/:cityId", admin(cityController.PartiallyUpdateCity)...)
	v1.DELETE("/cities/:cityId", admin(cityController.DeleteCity)...)
	v1.GET("/cities/:cityId/hotels", cityController.GetHotelsForCity)
	v1.POST("/cities/:cityId/hotels", admin(cityController.CreateHotelForCity)...)
	v1.DELETE("/cities/:cityId/hotels/:hotelId", admin(cityController.DeleteHotelForCity)...)
	photoRoutes(v1, admin, photoController, "/cities/:cityId", repository.OwnerCity, "cityId")

	v1.GET("/hotels", hotelController.GetHotels)
	v1.GET("/hotels/:hotelId", hotelController.GetHotel)
	v1.PUT("/hotels/:hotelId", admin(hotelController.UpdateHotel)...)
	v1.PATCH("/hotels/:hotelId", admin(hotelController.PartiallyUpdateHotel)...)
	v1.DELETE("/hotels/:hotelId", admin(hotelController.DeleteHotel)...)
	v1.GET("/hotels/:hotelId/rooms", hotelController.GetRoomsForHotel)
	v1.POST("/hotels/:hotelId/rooms", admin(hotelController.CreateRoomForHotel)...)
	v1.DELETE("/hotels/:hotelId/rooms/:roomId", admin(hotelController.DeleteRoomForHotel)...)
	v1.GET("/hotels/:hotelId/amenities", hotelController.GetAmenitiesForHotel)
	v1.POST("/hotels/:hotelId/amenities", admin(hotelController.CreateAmenityForHotel)...)
	v1.DELETE("/hotels/:hotelId/amenities/:amenityId", admin(hotelController.RemoveAmenityFromHotel)...)
	photoRoutes(v1, admin, photoController, "/hotels/:hotelId", repository.OwnerHotel, "hotelId")

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/:roomId", roomController.GetRoom)
	v1.PUT("/rooms/:roomId", admin(roomController.UpdateRoom)...)
	v1.PATCH("/rooms/:roomId", admin(roomController.PartiallyUpdateRoom)...)
	v1.DELETE("/rooms/:roomId", admin(roomController.DeleteRoom)...)
	v1.GET("/rooms/:roomId/amenities", roomController.GetAmenitiesForRoom)
	v1.POST("/rooms/:roomId/amenities", admin(roomController.CreateAmenityForRoom)...)
	v1.DELETE("/rooms/:roomId/amenities/:amenityId", admin(roomController.RemoveAmenityFromRoom)...)
	photoRoutes(v1, admin, photoController, "/rooms/:roomId", repository.OwnerRoom, "roomId")

	v1.GET("/room-classes", roomClassController.GetRoomClasses)
	v1.POST("/room-classes", admin(roomClassController.CreateRoomClass)...)
	v1.GET("/room-classes/:roomClassId", roomClassController.GetRoomClass)
	v1.PUT("/room-classes/:roomClassId", admin(roomClassController.UpdateRoomClass)...)
	v1.PATCH("/room-classes/:roomClassId", admin(roomClassController.PartiallyUpdateRoomClass)...)
	v1.DELETE("/room-classes/:roomClassId", admin(roomClassController.DeleteRoomClass)...)
	v1.GET("/room-classes/:roomClassId/rooms", roomClassController.GetRoomsForRoomClass)
	v1.POST("/room-classes/:roomClassId/rooms", admin(roomClassController.AssignRoomToRoomClass)...)
	v1.DELETE("/room-classes/:roomClassId/rooms/:roomId", admin(roomClassController.UnassignRoomFromRoomClass)...)
	v1.GET("/room-classes/:roomClassId/amenities", roomClassController.GetAmenitiesForRoomClass)
	v1.POST("/room-classes/:roomClassId/amenities", admin(roomClassController.CreateAmenityForRoomClass)...)
	v1.DELETE("/room-classes/:roomClassId/amenities/:amenityId", admin(roomClassController.RemoveAmenityFromRoomClass)...)
	photoRoutes(v1, admin, photoController, "/room-classes/:roomClassId", repository.OwnerRoomClass, "roomClassId")

	v1.GET("/hotel-amenities", amenityController.GetHotelAmenities)
	v1.POST("/hotel-amenities", admin(amenityController.CreateHotelAmenity)...)
	v1.GET("/hotel-amenities/:amenityId", amenityController.GetHotelAmenity)
	v1.PUT("/hotel-amenities/:amenityId", admin(amenityController.UpdateHotelAmenity)...)
	v1.PATCH("/hotel-amenities/:amenityId", admin(amenityController.PartiallyUpdateHotelAmenity)...)
	v1.DELETE("/hotel-amenities/:amenityId", admin(amenityController.DeleteHotelAmenity)...)

	v1.GET("/room-amenities", amenityController.GetRoomAmenities)
	v1.POST("/room-amenities", admin(amenityController.CreateRoomAmenity)...)
	v1.GET("/room-amenities/:amenityId", amenityController.GetRoomAmenity)
	v1.PUT("/room-amenities/:amenityId", admin(amenityController.UpdateRoomAmenity)...)
	v1.PATCH("/room-amenities/:amenityId", admin(amenityController.PartiallyUpdateRoomAmenity)...)
	v1.DELETE("/room-amenities/:amenityId", admin(amenityController.DeleteRoomAmenity)...)

	v1.POST("/photos", admin(photoController.UploadPhotos)...)
	v1.GET("/photos/:photoId", photoController.GetPhoto)
	v1.PUT("/photos/:photoId", admin(photoController.UpdatePhoto)...)
	v1.PATCH("/photos/:photoId", admin(photoController.PartiallyUpdatePhoto)...)
	v1.DELETE("/photos/:photoId", admin(photoController.DeletePhoto)...)

	v1.GET("/bookings", authenticated, bookingController.GetBookings)
	v1.POST("/bookings", authenticated, bookingController.CreateBooking)
	v1.GET("/bookings/:bookingId", authenticated, bookingController.GetBooking)

	v1.GET("/search-results", searchController.GetSearchResults)
	v1.GET("/search-results/amenities", searchController.GetSearchAmenities)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func photoRoutes(g *gin.RouterGroup, admin func(gin.HandlerFunc) []gin.HandlerFunc, pc *controllers.PhotoController, base string, kind repository.OwnerKind, param string) {
	g.GET(base+"/photos", pc.ListFor(kind, param))
	g.POST(base+"/photos", admin(pc.AddFor(kind, param))...)
	g.DELETE(base+"/photos/:photoId", admin(pc.RemoveFor(kind, param))...)
}

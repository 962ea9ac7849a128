package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// buildRouter wires the public storefront routes and the admin console API.
func buildRouter(logger *log.Logger, client *mongo.Client, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{opts.FrontendURL}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Session-ID")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(client))

	if opts.UploadDir != "" {
		router.Static("/uploads", opts.UploadDir)
	}

	api := router.Group("/api")
	api.GET("/health", healthHandler)

	api.POST("/auth/login", loginHandler(deps.AdminSvc))

	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))
	api.GET("/categories", listCategoriesHandler(deps.CategorySvc))
	api.GET("/categories/:id", getCategoryHandler(deps.CategorySvc))
	api.GET("/settings/public", publicSettingsHandler(deps.SettingsSvc))
	api.POST("/orders", createOrderHandler(deps.OrderSvc))

	cartGroup := api.Group("/cart", sessionRequired())
	cartGroup.GET("", getCartHandler(deps.CartSvc))
	cartGroup.DELETE("", clearCartHandler(deps.CartSvc))
	cartGroup.POST("/items", addCartItemHandler(deps.CartSvc))
	cartGroup.PUT("/items/:productId", updateCartItemHandler(deps.CartSvc))
	cartGroup.DELETE("/items/:productId", removeCartItemHandler(deps.CartSvc))
	cartGroup.POST("/checkout", checkoutHandler(deps.CheckoutSvc))

	admin := api.Group("", authRequired(deps.AdminSvc))
	admin.GET("/products/admin/all", adminListProductsHandler(deps.ProductSvc))
	admin.POST("/products", createProductHandler(deps.ProductSvc))
	admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
	admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))

	admin.POST("/categories", createCategoryHandler(deps.CategorySvc))
	admin.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc))
	admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))

	admin.GET("/orders", listOrdersHandler(deps.OrderSvc))
	admin.GET("/orders/stats/summary", orderStatsHandler(deps.OrderSvc))
	admin.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

	admin.GET("/settings", getSettingsHandler(deps.SettingsSvc))
	admin.PUT("/settings", updateSettingsHandler(deps.SettingsSvc))

	admin.POST("/upload/single", uploadSingleHandler(opts.UploadDir))
	admin.POST("/upload/multiple", uploadMultipleHandler(opts.UploadDir))

	return router
}

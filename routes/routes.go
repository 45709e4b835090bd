package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/it22117250/ITPM-Project/controllers"
	"github.com/it22117250/ITPM-Project/middleware"
)

type Controllers struct {
	Users      *controllers.UserController
	Suppliers  *controllers.SupplierController
	Categories *controllers.CategoryController
	Products   *controllers.ProductController
	Orders     *controllers.OrderController
	Forecast   *controllers.ForecastController
}

// Register wires all API routes. Everything except login and registration
// sits behind JWT auth; user administration and deletes are admin-only.
func Register(r *gin.Engine, c Controllers, jwtSecret []byte) {
	api := r.Group("/api")

	auth := middleware.RequireAuth(jwtSecret)
	adminOnly := middleware.RequireRole("admin")

	users := api.Group("/users")
	users.POST("/login", middleware.RateLimitMiddleware(), c.Users.Login)
	users.POST("/", c.Users.Register)
	users.GET("/", auth, adminOnly, c.Users.GetUsers)
	users.GET("/:id", auth, c.Users.GetUserByID)
	users.PUT("/:id", auth, adminOnly, c.Users.UpdateUser)
	users.DELETE("/:id", auth, adminOnly, c.Users.DeleteUser)
	users.PUT("/:id/change-password", auth, c.Users.ChangePassword)

	suppliers := api.Group("/suppliers")
	suppliers.Use(auth)
	suppliers.POST("/", c.Suppliers.CreateSupplier)
	suppliers.GET("/", c.Suppliers.GetSuppliers)
	suppliers.GET("/:id", c.Suppliers.GetSupplierByID)
	suppliers.PUT("/:id", c.Suppliers.UpdateSupplier)
	suppliers.DELETE("/:id", adminOnly, c.Suppliers.DeleteSupplier)

	categories := api.Group("/categories")
	categories.Use(auth)
	categories.POST("/", c.Categories.CreateCategory)
	categories.GET("/", c.Categories.GetCategories)
	categories.GET("/:id", c.Categories.GetCategoryByID)
	categories.PUT("/:id", c.Categories.UpdateCategory)
	categories.DELETE("/:id", adminOnly, c.Categories.DeleteCategory)

	products := api.Group("/products")
	products.Use(auth)
	products.POST("/", c.Products.CreateProduct)
	products.GET("/", c.Products.GetProducts)
	products.GET("/:id", c.Products.GetProductByID)
	products.PUT("/:id", c.Products.UpdateProduct)
	products.DELETE("/:id", adminOnly, c.Products.DeleteProduct)

	orders := api.Group("/orders")
	orders.Use(auth)
	orders.POST("/", c.Orders.CreateOrder)
	orders.GET("/", c.Orders.GetOrders)
	orders.GET("/:id", c.Orders.GetOrderByID)
	orders.PUT("/:id", c.Orders.UpdateOrder)
	orders.DELETE("/:id", adminOnly, c.Orders.DeleteOrder)
	orders.POST("/:id/complete", c.Orders.CompleteOrder)

	api.GET("/forecast/:productId", auth, c.Forecast.GetForecast)
}

package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flipSOsigma/catering-app/controllers"
	"github.com/flipSOsigma/catering-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares. Middleware harus terpasang sebelum route
	// didaftarkan; gin mengikat chain per route saat registrasi.
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	orderCtrl := controllers.NewOrderController(db)
	documentCtrl := controllers.NewDocumentController(db)
	importCtrl := controllers.NewImportController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Gerbang auth front end: validasi token dari cookie
	r.GET("/auth/:token", userCtrl.CheckToken)

	// ----------------------------------------------------------------
	//                      ORDER ROUTES (auth)
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/order", orderCtrl.GetAllOrders)
		authed.GET("/order/draft/:category", orderCtrl.NewDraft)
		authed.GET("/order/:uid", orderCtrl.GetOrderByUID)
		authed.POST("/order", orderCtrl.CreateOrder)
		authed.PUT("/order/:uid", orderCtrl.UpdateOrder)
		authed.DELETE("/order/:uid", middlewares.AdminOnly(), orderCtrl.DeleteOrder)

		// Dokumen cetak: invoice, surat-jalan, surat-dapur
		authed.GET("/order/:uid/document/:variant", documentCtrl.GenerateDocument)

		// Link konfirmasi WhatsApp
		authed.GET("/order/:uid/whatsapp", orderCtrl.GetWhatsAppLink)

		// Bulk import dari spreadsheet
		authed.POST("/order/xlsx", importCtrl.ImportOrders)

		// Feed dashboard real-time
		authed.GET("/order/ws", controllers.FeedHandler)
	}

	return r
}

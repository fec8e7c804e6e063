package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dungeonshelf_back_end/internal/handlers"
	"dungeonshelf_back_end/internal/templates"
)

// Register branche les templates et toutes les routes sur le moteur gin.
func Register(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.Default())
	r.SetHTMLTemplate(templates.New())

	r.GET("/", h.Home)

	// Authentification
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// Catalogue et panier (identité requise, sinon redirection /login)
	r.GET("/index", h.Index)
	r.POST("/agregar_carrito", h.AddToCart)
	r.POST("/update_cart", h.UpdateCart)
	r.POST("/remove_cart", h.RemoveFromCart)
	r.POST("/checkout", h.Checkout)
}

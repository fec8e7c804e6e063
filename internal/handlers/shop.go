package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"dungeonshelf_back_end/internal/cart"
	"dungeonshelf_back_end/internal/models"
)

// Vues pré-formatées pour les templates : les prix sortent en texte à deux
// décimales, le template ne calcule rien.
type comicView struct {
	IssueName string
	Price     string
}

type cartLineView struct {
	IssueName string
	Price     string
	Quantity  int
}

// Index : GET /index affiche le catalogue complet, le panier courant et son
// total recalculé à chaque affichage.
func (h *Handler) Index(c *gin.Context) {
	sess := h.loadAuthenticated(c)
	if sess == nil {
		return
	}

	comics, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	comicViews := make([]comicView, 0, len(comics))
	for _, comic := range comics {
		comicViews = append(comicViews, comicView{
			IssueName: comic.IssueName,
			Price:     comic.Price.StringFixed(2),
		})
	}

	lineViews := make([]cartLineView, 0, len(sess.Cart))
	for _, line := range sess.Cart {
		lineViews = append(lineViews, cartLineView{
			IssueName: line.IssueName,
			Price:     line.Price.StringFixed(2),
			Quantity:  line.Quantity,
		})
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Username": sess.Username,
		"Comics":   comicViews,
		"Cart":     lineViews,
		"Total":    cart.Total(sess.Cart).StringFixed(2),
	})
}

// AddToCart : POST /agregar_carrito ajoute un exemplaire de l'article au
// panier, au prix envoyé par le formulaire du catalogue.
func (h *Handler) AddToCart(c *gin.Context) {
	sess := h.loadAuthenticated(c)
	if sess == nil {
		return
	}

	issueName := c.PostForm("issue_name")
	priceStr := c.PostForm("price")
	if issueName == "" || priceStr == "" {
		h.renderError(c, http.StatusBadRequest, "Por favor completa todos los campos", "/index")
		return
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Precio inválido", "/index")
		return
	}

	sess.Cart = cart.AddOrIncrement(sess.Cart, issueName, price)
	h.saveAndRedirect(c, sess)
}

// UpdateCart : POST /update_cart remplace la quantité d'une ligne. Une
// quantité nulle ou négative est rejetée par le moteur sans toucher au
// panier ; supprimer passe par /remove_cart.
func (h *Handler) UpdateCart(c *gin.Context) {
	sess := h.loadAuthenticated(c)
	if sess == nil {
		return
	}

	issueName := c.PostForm("issue_name")
	quantityStr := c.PostForm("quantity")
	if issueName == "" || quantityStr == "" {
		h.renderError(c, http.StatusBadRequest, "Por favor completa todos los campos", "/index")
		return
	}

	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Cantidad inválida", "/index")
		return
	}

	sess.Cart = cart.SetQuantity(sess.Cart, issueName, quantity)
	h.saveAndRedirect(c, sess)
}

// RemoveFromCart : POST /remove_cart supprime la ligne si elle existe.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	sess := h.loadAuthenticated(c)
	if sess == nil {
		return
	}

	issueName := c.PostForm("issue_name")
	if issueName == "" {
		h.renderError(c, http.StatusBadRequest, "Por favor completa todos los campos", "/index")
		return
	}

	sess.Cart = cart.Remove(sess.Cart, issueName)
	h.saveAndRedirect(c, sess)
}

// Checkout : POST /checkout vide le panier sans validation de stock ni de
// prix et affiche la confirmation.
func (h *Handler) Checkout(c *gin.Context) {
	sess := h.loadAuthenticated(c)
	if sess == nil {
		return
	}

	sess.Cart = cart.Checkout(sess.Cart)
	if err := h.sessions.Save(c, sess); err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "checkout", gin.H{"Username": sess.Username})
}

func (h *Handler) saveAndRedirect(c *gin.Context, sess *models.Session) {
	if err := h.sessions.Save(c, sess); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/index")
}

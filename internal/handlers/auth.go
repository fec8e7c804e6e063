package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dungeonshelf_back_end/internal/models"
	"dungeonshelf_back_end/internal/store"
	"dungeonshelf_back_end/internal/utils"
)

// Home : GET / redirige vers le formulaire d'inscription.
func (h *Handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/register")
}

// RegisterForm : GET /register
func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register", nil)
}

// Register : POST /register crée l'utilisateur puis ouvre directement une
// session authentifiée avec un panier vide.
func (h *Handler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.renderError(c, http.StatusBadRequest, "Por favor completa todos los campos", "/register")
		return
	}

	ctx := c.Request.Context()

	taken, err := h.credentials.Exists(ctx, username)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if taken {
		h.renderError(c, http.StatusConflict, "El usuario ya existe", "/register")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		h.serverError(c, err)
		return
	}

	// La pré-vérification n'est pas atomique : l'insertion conditionnelle
	// tranche si une inscription concurrente a gagné entre-temps.
	if err := h.credentials.Put(ctx, username, hash); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			h.renderError(c, http.StatusConflict, "El usuario ya existe", "/register")
			return
		}
		h.serverError(c, err)
		return
	}

	h.openSession(c, username)
}

// LoginForm : GET /login
func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login", nil)
}

// Login : POST /login vérifie les identifiants et ouvre une session avec un
// panier vide.
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.renderError(c, http.StatusBadRequest, "Por favor completa todos los campos", "/login")
		return
	}

	user, err := h.credentials.Get(c.Request.Context(), username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.serverError(c, err)
		return
	}

	// Même message pour utilisateur inconnu et mot de passe erroné : pas
	// d'énumération des comptes.
	if user == nil {
		h.renderError(c, http.StatusUnauthorized, "Credenciales incorrectas", "/login")
		return
	}
	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !ok {
		h.renderError(c, http.StatusUnauthorized, "Credenciales incorrectas", "/login")
		return
	}

	h.openSession(c, username)
}

// Logout : GET /logout détruit la session, panier compris.
func (h *Handler) Logout(c *gin.Context) {
	sess, err := h.sessions.Load(c)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if err := h.sessions.Destroy(c, sess); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// openSession remplace la session courante par une session authentifiée au
// panier vide puis redirige vers le catalogue.
func (h *Handler) openSession(c *gin.Context, username string) {
	sess, err := h.sessions.Load(c)
	if err != nil {
		h.serverError(c, err)
		return
	}
	sess.Username = username
	sess.Cart = models.Cart{}
	if err := h.sessions.Save(c, sess); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/index")
}

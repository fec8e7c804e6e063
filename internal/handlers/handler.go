// Package handlers orchestre les routes HTTP : chaque handler charge la
// session, applique au plus une opération du panier ou du stockage, persiste,
// puis rend une page ou redirige.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dungeonshelf_back_end/internal/models"
	"dungeonshelf_back_end/internal/session"
	"dungeonshelf_back_end/internal/store"
)

// Handler porte les dépendances injectées au démarrage.
type Handler struct {
	credentials store.Credentials
	catalog     store.Catalog
	sessions    *session.Manager
}

func New(credentials store.Credentials, catalog store.Catalog, sessions *session.Manager) *Handler {
	return &Handler{
		credentials: credentials,
		catalog:     catalog,
		sessions:    sessions,
	}
}

// renderError affiche un message en ligne avec un lien de retour, comme les
// mini-pages d'erreur d'origine.
func (h *Handler) renderError(c *gin.Context, status int, message, backURL string) {
	c.HTML(status, "error", gin.H{"Message": message, "BackURL": backURL})
}

// serverError : une panne du stockage devient une réponse 500 générique,
// jamais un crash du processus. Le détail part dans les logs, pas au client.
func (h *Handler) serverError(c *gin.Context, err error) {
	log.Printf("❌ Erreur interne: %v", err)
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Message": "Error interno del servidor",
		"BackURL": "/index",
	})
}

// loadAuthenticated charge la session et barre la route aux anonymes :
// identité absente = redirection vers /login, pas une page d'erreur.
// Retourne nil si la réponse a déjà été écrite.
func (h *Handler) loadAuthenticated(c *gin.Context) *models.Session {
	sess, err := h.sessions.Load(c)
	if err != nil {
		h.serverError(c, err)
		return nil
	}
	if !sess.Authenticated() {
		c.Redirect(http.StatusFound, "/login")
		return nil
	}
	return sess
}

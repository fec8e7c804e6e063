// Package session relie le cookie signé du navigateur à l'état de session
// conservé côté serveur. Le cookie ne transporte que l'identifiant ; le
// contenu (identité + panier) vit dans le Backend en JSON.
package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"dungeonshelf_back_end/internal/models"
)

const (
	cookieName = "dungeonshelf_session"
	keyPrefix  = "session:"
	sessionTTL = 30 * 24 * time.Hour
)

// Manager charge la session en entrée de requête et la persiste en sortie.
// Deux requêtes simultanées du même navigateur ne sont pas sérialisées : la
// dernière écriture gagne sur l'ensemble du blob.
type Manager struct {
	cookies *sessions.CookieStore
	backend Backend
}

func NewManager(secret string, backend Backend) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(int(sessionTTL.Seconds()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{cookies: store, backend: backend}
}

// Load retrouve la session du navigateur. Cookie absent, signature invalide,
// ou état serveur expiré : on repart sur une session anonyme neuve.
func (m *Manager) Load(c *gin.Context) (*models.Session, error) {
	ck, _ := m.cookies.Get(c.Request, cookieName)
	if sid, ok := ck.Values["sid"].(string); ok && sid != "" {
		data, err := m.backend.Get(c.Request.Context(), keyPrefix+sid)
		switch {
		case err == nil:
			var sess models.Session
			if json.Unmarshal(data, &sess) == nil && sess.ID == sid {
				return &sess, nil
			}
		case !errors.Is(err, ErrNoSession):
			return nil, err
		}
	}
	return &models.Session{ID: uuid.NewString(), Cart: models.Cart{}}, nil
}

// Save écrit l'état côté serveur puis pose le cookie signé.
func (m *Manager) Save(c *gin.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := m.backend.Set(c.Request.Context(), keyPrefix+sess.ID, data, sessionTTL); err != nil {
		return err
	}
	ck, _ := m.cookies.Get(c.Request, cookieName)
	ck.Values["sid"] = sess.ID
	return ck.Save(c.Request, c.Writer)
}

// Destroy supprime l'état serveur et invalide le cookie du navigateur.
func (m *Manager) Destroy(c *gin.Context, sess *models.Session) error {
	if err := m.backend.Del(c.Request.Context(), keyPrefix+sess.ID); err != nil {
		return err
	}
	ck, _ := m.cookies.Get(c.Request, cookieName)
	delete(ck.Values, "sid")
	ck.Options.MaxAge = -1
	return ck.Save(c.Request, c.Writer)
}

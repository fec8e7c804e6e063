package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dungeonshelf_back_end/internal/handlers"
	"dungeonshelf_back_end/internal/models"
	"dungeonshelf_back_end/internal/routes"
	"dungeonshelf_back_end/internal/session"
	"dungeonshelf_back_end/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func comic(name, price string) models.ComicIssue {
	return models.ComicIssue{IssueName: name, Price: decimal.RequireFromString(price)}
}

// newServer monte le routeur complet sur les implémentations en mémoire.
func newServer(comics ...models.ComicIssue) (*gin.Engine, *store.MemoryCredentials) {
	creds := store.NewMemoryCredentials()
	catalog := store.NewMemoryCatalog(comics...)
	sessions := session.NewManager("secret-de-test", session.NewMemoryBackend())

	r := gin.New()
	routes.Register(r, handlers.New(creds, catalog, sessions))
	return r, creds
}

// client rejoue le cookie de session d'une requête à l'autre, comme un
// navigateur.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, path, nil)
}

func (cl *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, path, form)
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		cl.cookies = set
	}
	return w
}

// register inscrit un utilisateur et vérifie la redirection vers le
// catalogue.
func (cl *client) register(username, password string) {
	cl.t.Helper()
	w := cl.postForm("/register", url.Values{"username": {username}, "password": {password}})
	require.Equal(cl.t, http.StatusFound, w.Code)
	require.Equal(cl.t, "/index", w.Header().Get("Location"))
}

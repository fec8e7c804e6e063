package models

// Session est l'état serveur d'un navigateur : identité + panier.
// Username vide = visiteur anonyme.
type Session struct {
	ID       string `json:"session_id"`
	Username string `json:"username,omitempty"`
	Cart     Cart   `json:"cart"`
}

func (s *Session) Authenticated() bool {
	return s.Username != ""
}

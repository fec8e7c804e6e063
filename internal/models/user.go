package models

type User struct {
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/gocql/gocql"
	"github.com/shopspring/decimal"

	"dungeonshelf_back_end/internal/models"
)

// ScyllaCredentials stocke les utilisateurs dans la table users
// (name text PRIMARY KEY, password_hash text).
type ScyllaCredentials struct {
	session *gocql.Session
}

func NewScyllaCredentials(session *gocql.Session) *ScyllaCredentials {
	return &ScyllaCredentials{session: session}
}

func (s *ScyllaCredentials) Exists(ctx context.Context, name string) (bool, error) {
	var found string
	err := s.session.Query(`SELECT name FROM users WHERE name = ?`, name).
		WithContext(ctx).Scan(&found)
	if errors.Is(err, gocql.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lecture utilisateur '%s': %w", name, err)
	}
	return true, nil
}

func (s *ScyllaCredentials) Get(ctx context.Context, name string) (*models.User, error) {
	var hash string
	err := s.session.Query(`SELECT password_hash FROM users WHERE name = ?`, name).
		WithContext(ctx).Scan(&hash)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lecture utilisateur '%s': %w", name, err)
	}
	return &models.User{Name: name, PasswordHash: hash}, nil
}

// Put insère avec IF NOT EXISTS : la transaction légère tranche la course
// entre la pré-vérification du handler et l'insertion.
func (s *ScyllaCredentials) Put(ctx context.Context, name, passwordHash string) error {
	previous := map[string]interface{}{}
	applied, err := s.session.Query(
		`INSERT INTO users (name, password_hash) VALUES (?, ?) IF NOT EXISTS`,
		name, passwordHash).
		WithContext(ctx).MapScanCAS(previous)
	if err != nil {
		return fmt.Errorf("création utilisateur '%s': %w", name, err)
	}
	if !applied {
		return ErrAlreadyExists
	}
	return nil
}

// ScyllaCatalog lit la table comics (issue_name text PRIMARY KEY, price text).
// Le prix est stocké en texte et décodé en décimal exact côté application.
type ScyllaCatalog struct {
	session *gocql.Session
}

func NewScyllaCatalog(session *gocql.Session) *ScyllaCatalog {
	return &ScyllaCatalog{session: session}
}

func (s *ScyllaCatalog) ListAll(ctx context.Context) ([]models.ComicIssue, error) {
	iter := s.session.Query(`SELECT issue_name, price FROM comics`).
		WithContext(ctx).Iter()

	var comics []models.ComicIssue
	var issueName, priceStr string

	for iter.Scan(&issueName, &priceStr) {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("prix invalide pour '%s': %w", issueName, err)
		}
		comics = append(comics, models.ComicIssue{IssueName: issueName, Price: price})
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("scan du catalogue: %w", err)
	}
	return comics, nil
}

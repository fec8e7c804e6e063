// Package store expose les deux tables clé-valeur du système : les
// identifiants (users) et le catalogue (comics). Les handlers ne dépendent
// que des interfaces ; l'implémentation ScyllaDB est branchée au démarrage.
package store

import (
	"context"
	"errors"

	"dungeonshelf_back_end/internal/models"
)

var (
	// ErrNotFound : aucune entrée pour cette clé.
	ErrNotFound = errors.New("entrée introuvable")
	// ErrAlreadyExists : la clé est déjà prise (inscription en double).
	ErrAlreadyExists = errors.New("entrée déjà existante")
)

// Credentials est la table des utilisateurs, clé = nom.
// Put doit rester conditionnel : deux inscriptions concurrentes sur le même
// nom ne doivent produire qu'un seul utilisateur, la seconde reçoit
// ErrAlreadyExists même si une pré-vérification Exists a dit le contraire.
type Credentials interface {
	Exists(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, name string) (*models.User, error)
	Put(ctx context.Context, name, passwordHash string) error
}

// Catalog est la table des comics, lecture seule : scan complet, ordre natif
// du stockage, sans filtre ni pagination.
type Catalog interface {
	ListAll(ctx context.Context) ([]models.ComicIssue, error)
}

package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession : aucune donnée côté serveur pour cet identifiant (jamais
// créée, expirée ou détruite au logout).
var ErrNoSession = errors.New("session introuvable")

// Backend stocke l'état de session sérialisé côté serveur, clé = identifiant
// de session. Redis en production, mémoire dans les tests.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

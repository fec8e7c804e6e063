package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"

	"dungeonshelf_back_end/internal/config"
)

// Databases regroupe les connexions ouvertes au démarrage. Le handle est
// injecté dans les composants qui en ont besoin, pas de variables globales.
type Databases struct {
	Scylla *gocql.Session
	Redis  *redis.Client
}

// Connect ouvre ScyllaDB puis Redis. Échec = on n'a rien à servir.
func Connect(cfg *config.Config) (*Databases, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	scylla, err := connectScylla(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		scylla.Close()
		return nil, err
	}

	log.Println("✅ Toutes les bases de données sont connectées")
	return &Databases{Scylla: scylla, Redis: rdb}, nil
}

func (d *Databases) Close() {
	d.Scylla.Close()
	log.Println("🔌 Session ScyllaDB fermée")
	if err := d.Redis.Close(); err == nil {
		log.Println("🔌 Connexion Redis fermée")
	}
}

// Note: les tables doivent être créées via scripts/scylladb_init.cql,
// l'initialisation automatique est désactivée pour éviter les problèmes de
// permissions.
func connectScylla(cfg *config.Config) (*gocql.Session, error) {
	cluster := gocql.NewCluster(strings.Split(cfg.ScyllaHosts, ",")...)
	cluster.Keyspace = cfg.ScyllaKeyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 4
	cluster.ReconnectInterval = 1 * time.Second

	if cfg.ScyllaRole != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.ScyllaRole,
			Password: cfg.ScyllaPassword,
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("erreur création session ScyllaDB: %w", err)
	}

	log.Printf("✅ Session ScyllaDB ouverte sur le keyspace '%s'", cfg.ScyllaKeyspace)
	return session, nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erreur connexion Redis: %w", err)
	}

	log.Println("✅ Connecté à Redis")
	return client, nil
}

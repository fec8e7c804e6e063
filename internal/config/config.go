package config

import (
	"fmt"
	"log"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config regroupe tout ce dont le serveur a besoin au démarrage. Construite
// une seule fois dans main puis injectée : aucun os.Getenv dans les handlers.
type Config struct {
	Port          string `env:"PORT,default=8080"`
	SessionSecret string `env:"SESSION_SECRET,required"`

	ScyllaHosts    string `env:"SCYLLA_HOSTS,default=127.0.0.1"`
	ScyllaKeyspace string `env:"SCYLLA_KEYSPACE,default=dungeonshelf"`
	ScyllaRole     string `env:"SCYLLA_ROLE"`
	ScyllaPassword string `env:"SCYLLA_PASSWORD"`

	RedisHost     string `env:"REDIS_HOST,default=localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load charge le fichier .env s'il existe puis décode la configuration depuis
// l'environnement.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("configuration invalide: %w", err)
	}
	return &cfg, nil
}

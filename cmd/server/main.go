package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"dungeonshelf_back_end/internal/config"
	"dungeonshelf_back_end/internal/database"
	"dungeonshelf_back_end/internal/handlers"
	"dungeonshelf_back_end/internal/routes"
	"dungeonshelf_back_end/internal/session"
	"dungeonshelf_back_end/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	dbs, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Échec connexion bases de données: %v", err)
	}
	defer dbs.Close()

	sessions := session.NewManager(cfg.SessionSecret, session.NewRedisBackend(dbs.Redis))
	h := handlers.New(
		store.NewScyllaCredentials(dbs.Scylla),
		store.NewScyllaCatalog(dbs.Scylla),
		sessions,
	)

	r := gin.Default()
	routes.Register(r, h)

	log.Println("🚀 Serveur DungeonShelf lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Serveur arrêté: %v", err)
	}
}

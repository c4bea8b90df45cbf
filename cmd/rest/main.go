package main

import (
	"log"

	"github.com/jubyaid123/hemovita/internal/bootstrap"
	"github.com/jubyaid123/hemovita/internal/config"
	"github.com/jubyaid123/hemovita/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Run Server
	log.Fatal(srv.Run())
}

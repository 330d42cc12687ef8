package main

import (
	"crm/cmd/migration/initialize"
	"crm/cmd/migration/seed"
	"crm/config"
	"crm/internal/database"
	"crm/internal/logger"
	"flag"
	"os"
)

func main() {
	runSeed := flag.Bool("seed", false, "load demo data after migrating")
	flag.Parse()

	log := logger.New("migration")

	config, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.NewSQL(config)
	if err != nil {
		log.Er("failed to open database", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	applied, err := db.Migrate()
	if err != nil {
		log.Er("failed to run migrations", err)
		os.Exit(1)
	}
	log.Info("migrations complete", "applied", applied)

	if err := initialize.InitializeTables(db.SQL, config, log); err != nil {
		log.Er("failed to initialize tables", err)
		os.Exit(1)
	}

	if *runSeed {
		if err := seed.Seed(db.SQL, config, log); err != nil {
			log.Er("failed to seed database", err)
			os.Exit(1)
		}
	}
}

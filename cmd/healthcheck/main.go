// Command healthcheck probes the database and Authorizer endpoints and
// exits non-zero when either is unavailable. Intended for container
// HEALTHCHECK directives and orchestrator liveness probes.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/greenloop/ewastedb/internal/config"
	"github.com/greenloop/ewastedb/internal/database"
	"github.com/greenloop/ewastedb/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: config error: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: database connect error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close(db)

	result := services.HealthCheck(cfg, db)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: marshal error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if result.Status != "healthy" {
		os.Exit(1)
	}
}

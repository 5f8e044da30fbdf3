// migrate aplica en orden los scripts SQL de internal/infrastructure/postgres/migrations.
//
// Uso: go run ./cmd/migrate [dir]
// Lee la conexión de DATABASE_URL (o DB_HOST, DB_PORT, ...) vía la
// configuración estándar de la aplicación.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tu-usuario/stock-alerts-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/stock-alerts-api/pkg/config"
)

func main() {
	dir := "internal/infrastructure/postgres/migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	matches, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar scripts: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		fmt.Fprintf(os.Stderr, "sin scripts .sql en %s\n", dir)
		os.Exit(1)
	}

	for _, path := range matches {
		sqlBytes, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "leer %s: %v\n", path, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			fmt.Fprintf(os.Stderr, "aplicar %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("aplicado %s\n", filepath.Base(path))
	}
	fmt.Println("migraciones completas")
}

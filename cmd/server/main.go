// Command server runs the vocabulary HTTP API.
//
// Flags:
//
//	--migrate  apply pending database migrations before serving
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wortschatz-backend/internal/app"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{Migrate: *migrateFlag}); err != nil {
		log.Fatalf("server: %v", err)
	}
}

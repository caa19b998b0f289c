package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"blogapi/app/routes"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogapi version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogapi <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API server.

Environment:
  BLOG_DB_PATH                   Badger database directory (default: data/badger).
  PORT                           HTTP port to listen on (default: 8080).
`
	fmt.Println(helpText)
}

// serve opens the storage backend once, wires the routes against it and
// serves until terminated. A failed open exits immediately; the handle is
// closed on shutdown.
func serve() {
	dbPath := os.Getenv("BLOG_DB_PATH")
	if dbPath == "" {
		dbPath = "data/badger"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	opts := badger.DefaultOptions(dbPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("Shutting down")
		if err := db.Close(); err != nil {
			log.Printf("Failed to close Badger DB: %v", err)
		}
		os.Exit(0)
	}()

	router := routes.SetupRoutes(db)

	log.Printf("Starting blog API on port %s", port)
	if err := routes.StartServer(":"+port, router); err != nil {
		db.Close()
		log.Fatalf("Server error: %v", err)
	}
}

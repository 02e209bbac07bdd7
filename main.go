package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"assembly-config-poc/internal/cli"
	"assembly-config-poc/internal/config"
	"assembly-config-poc/internal/datastore"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 1
	}

	command := os.Args[1]
	args := os.Args[2:]

	// Handle help command without a data store connection
	if command == "help" {
		printUsage()
		return 0
	}

	// All other commands require a data store
	cfg := config.GetDataStoreConfig()

	dataStore, err := datastore.NewDataStore(cfg)
	if err != nil {
		log.Printf("Failed to initialize data store: %v", err)
		return 1
	}
	defer dataStore.Close()

	// Print mode information for clarity
	if config.IsMockMode() {
		fmt.Printf("Running in MOCK mode (data from: %s)\n", cfg.MockDataPath)
	} else {
		fmt.Println("Running in DATABASE mode")
	}

	ctx := context.Background()

	switch command {
	case "init-db":
		err = dataStore.InitDB(ctx)
		if err != nil {
			log.Printf("Failed to initialize database: %v", err)
			return 1
		}
		fmt.Println("Database initialized successfully.")

	case "seed-catalog":
		err = dataStore.SeedCatalog(ctx)
		if err != nil {
			log.Printf("Failed to seed catalog: %v", err)
			return 1
		}
		fmt.Println("Catalog seeded successfully with sample data.")

	case "list-components":
		err = cli.RunListComponents(ctx, dataStore, args)

	case "compatible":
		err = cli.RunCompatible(ctx, dataStore, args)

	case "validate-selection":
		err = cli.RunValidateSelection(ctx, dataStore, args)

	case "price":
		err = cli.RunPrice(ctx, dataStore, args)

	case "save-selection":
		err = cli.RunSaveSelection(ctx, dataStore, args)

	case "list-selections":
		err = cli.RunListSelections(ctx, dataStore, args)

	case "delete-selection":
		err = cli.RunDeleteSelection(ctx, dataStore, args)

	case "create-quote":
		err = cli.RunCreateQuote(ctx, dataStore, args)

	case "list-quotes":
		err = cli.RunListQuotes(ctx, dataStore, args)

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		return 1
	}

	if err != nil {
		log.Printf("Command failed: %v", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println("Usage: acp <command> [arguments]")
	fmt.Println("\nStore Management:")
	fmt.Println("  init-db            Create the database schema")
	fmt.Println("  seed-catalog       Load the sample catalog")

	fmt.Println("\nCatalog and Compatibility:")
	fmt.Println("  list-components [category]")
	fmt.Println("                     List catalog components, optionally one category")
	fmt.Println("  compatible <target-category> [component-id...]")
	fmt.Println("                     Show components selectable in a category given a partial selection")
	fmt.Println("  validate-selection <component-id...>")
	fmt.Println("                     Check mutual compatibility of a full selection")

	fmt.Println("\nPricing:")
	fmt.Println("  price <component-id...>")
	fmt.Println("                     Generate a priced bill of materials")

	fmt.Println("\nSelections:")
	fmt.Println("  save-selection [--name=<name>] <component-id...>")
	fmt.Println("  list-selections")
	fmt.Println("  delete-selection <selection-id>")

	fmt.Println("\nQuotes:")
	fmt.Println("  create-quote <component-id...> --user <id> [--valid-days <n>] [--notes <text>]")
	fmt.Println("  list-quotes <user-id>")

	fmt.Println("\nEnvironment:")
	fmt.Println("  ACP_STORE_TYPE     postgresql (default) or mock")
	fmt.Println("  DB_CONN_STRING     PostgreSQL connection string")
	fmt.Println("  ACP_MOCK_DATA_PATH Mock data directory (default data/mocks)")
}

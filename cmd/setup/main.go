package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/Du7chy/Seedlings/internal/database/schema"
)

// starterSeed describes one seed definition with its loot table, keyed by
// plant name. Weights are unnormalized; probability is weight over the sum.
type starterSeed struct {
	name        string
	description string
	cost        int
	minTime     int
	maxTime     int
	loot        map[string]int
}

type starterPlant struct {
	name     string
	rarity   string
	minValue int
	maxValue int
}

var starterPlants = []starterPlant{
	{"carrot", "COMMON", 5, 15},
	{"potato", "COMMON", 4, 12},
	{"tulip", "UNCOMMON", 12, 25},
	{"sunflower", "UNCOMMON", 15, 30},
	{"orchid", "RARE", 40, 80},
	{"golden_carrot", "RARE", 50, 120},
	{"moonflower", "EPIC", 120, 250},
	{"world_tree_sapling", "LEGENDARY", 400, 800},
}

var starterSeeds = []starterSeed{
	{
		name:        "carrot_seed",
		description: "A dependable orange classic.",
		cost:        10, minTime: 30, maxTime: 60,
		loot: map[string]int{"carrot": 90, "golden_carrot": 10},
	},
	{
		name:        "potato_seed",
		description: "Grows fast and asks for nothing.",
		cost:        8, minTime: 20, maxTime: 45,
		loot: map[string]int{"potato": 100},
	},
	{
		name:        "flower_mix",
		description: "A surprise bouquet in every packet.",
		cost:        25, minTime: 60, maxTime: 120,
		loot: map[string]int{"tulip": 50, "sunflower": 40, "orchid": 10},
	},
	{
		name:        "mystic_seed",
		description: "Hums faintly under moonlight.",
		cost:        100, minTime: 180, maxTime: 360,
		loot: map[string]int{"orchid": 60, "moonflower": 35, "world_tree_sapling": 5},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "seedlings")

	ctx := context.Background()

	// Connect to the default database first to create the target one.
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbname)
		if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbname)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbname)
	}
	conn.Close(ctx)

	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
	targetConn, err := pgx.Connect(ctx, targetConnString)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbname, err)
	}
	defer targetConn.Close(ctx)

	fmt.Println("Applying schema...")
	if _, err := targetConn.Exec(ctx, schema.SchemaSQL); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	fmt.Println("Seeding starter content...")
	if err := seedContent(ctx, targetConn); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// seedContent upserts the starter catalog. Running setup twice is safe:
// definitions are updated in place and loot tables are rebuilt.
func seedContent(ctx context.Context, conn *pgx.Conn) error {
	plantIDs := make(map[string]int)
	for _, p := range starterPlants {
		var id int
		err := conn.QueryRow(ctx,
			`INSERT INTO plants (plant_name, rarity, min_value, max_value)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (plant_name) DO UPDATE
			   SET rarity = EXCLUDED.rarity,
			       min_value = EXCLUDED.min_value,
			       max_value = EXCLUDED.max_value
			 RETURNING plant_id`,
			p.name, p.rarity, p.minValue, p.maxValue).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to upsert plant %s: %w", p.name, err)
		}
		plantIDs[p.name] = id
	}

	for _, s := range starterSeeds {
		var seedID int
		err := conn.QueryRow(ctx,
			`INSERT INTO seeds (seed_name, seed_description, cost, min_time, max_time)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (seed_name) DO UPDATE
			   SET seed_description = EXCLUDED.seed_description,
			       cost = EXCLUDED.cost,
			       min_time = EXCLUDED.min_time,
			       max_time = EXCLUDED.max_time
			 RETURNING seed_id`,
			s.name, s.description, s.cost, s.minTime, s.maxTime).Scan(&seedID)
		if err != nil {
			return fmt.Errorf("failed to upsert seed %s: %w", s.name, err)
		}

		if _, err := conn.Exec(ctx, `DELETE FROM loot_entries WHERE seed_id = $1`, seedID); err != nil {
			return fmt.Errorf("failed to clear loot entries for %s: %w", s.name, err)
		}
		for plantName, weight := range s.loot {
			plantID, ok := plantIDs[plantName]
			if !ok {
				return fmt.Errorf("seed %s references unknown plant %s", s.name, plantName)
			}
			_, err := conn.Exec(ctx,
				`INSERT INTO loot_entries (seed_id, plant_id, weight) VALUES ($1, $2, $3)`,
				seedID, plantID, weight)
			if err != nil {
				return fmt.Errorf("failed to insert loot entry %s -> %s: %w", s.name, plantName, err)
			}
		}
	}

	return nil
}

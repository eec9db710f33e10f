package schema

// SchemaSQL contains the full database schema initialization script.
// players.room_id is the membership back-reference; its foreign key is
// added after rooms exists because the two tables reference each other.
const SchemaSQL = `
-- Content tables (owned by the catalog, mutated only by authoring)

CREATE TABLE IF NOT EXISTS plants (
    plant_id SERIAL PRIMARY KEY,
    plant_name VARCHAR(100) UNIQUE NOT NULL,
    rarity VARCHAR(20) NOT NULL CHECK (rarity IN ('COMMON', 'UNCOMMON', 'RARE', 'EPIC', 'LEGENDARY')),
    min_value INTEGER NOT NULL CHECK (min_value >= 0),
    max_value INTEGER NOT NULL,
    CHECK (max_value >= min_value)
);

CREATE TABLE IF NOT EXISTS seeds (
    seed_id SERIAL PRIMARY KEY,
    seed_name VARCHAR(100) UNIQUE NOT NULL,
    seed_description TEXT NOT NULL DEFAULT '',
    cost INTEGER NOT NULL CHECK (cost >= 0),
    min_time INTEGER NOT NULL CHECK (min_time >= 0),
    max_time INTEGER NOT NULL,
    CHECK (max_time >= min_time)
);

CREATE TABLE IF NOT EXISTS loot_entries (
    seed_id INTEGER NOT NULL REFERENCES seeds(seed_id) ON DELETE CASCADE,
    plant_id INTEGER NOT NULL REFERENCES plants(plant_id) ON DELETE CASCADE,
    weight INTEGER NOT NULL CHECK (weight > 0),
    PRIMARY KEY (seed_id, plant_id)
);

-- Players and rooms

CREATE TABLE IF NOT EXISTS players (
    player_id UUID PRIMARY KEY,
    username VARCHAR(50) UNIQUE NOT NULL,
    balance INTEGER NOT NULL DEFAULT 100 CHECK (balance >= 0),
    room_id INTEGER,
    registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS rooms (
    room_id SERIAL PRIMARY KEY,
    room_name VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    is_private BOOLEAN NOT NULL DEFAULT FALSE,
    join_code CHAR(4) UNIQUE,
    max_members INTEGER NOT NULL CHECK (max_members BETWEEN 1 AND 10),
    owner_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    CHECK ((is_private AND join_code IS NOT NULL) OR (NOT is_private AND join_code IS NULL))
);

DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint WHERE conname = 'fk_players_room'
    ) THEN
        ALTER TABLE players
            ADD CONSTRAINT fk_players_room
            FOREIGN KEY (room_id) REFERENCES rooms(room_id) ON DELETE SET NULL;
    END IF;
END $$;

-- Per-player inventories and growing plants

CREATE TABLE IF NOT EXISTS seed_inventory (
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    seed_id INTEGER NOT NULL REFERENCES seeds(seed_id) ON DELETE CASCADE,
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    PRIMARY KEY (player_id, seed_id)
);

CREATE TABLE IF NOT EXISTS plant_inventory (
    plant_inventory_id SERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    plant_id INTEGER NOT NULL REFERENCES plants(plant_id) ON DELETE CASCADE,
    value INTEGER NOT NULL CHECK (value >= 0)
);

CREATE INDEX IF NOT EXISTS idx_plant_inventory_player ON plant_inventory(player_id);

CREATE TABLE IF NOT EXISTS growing_plants (
    growing_plant_id SERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    seed_id INTEGER NOT NULL REFERENCES seeds(seed_id) ON DELETE CASCADE,
    planted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    growth_time INTEGER NOT NULL CHECK (growth_time >= 0),
    is_ready BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_growing_plants_player ON growing_plants(player_id);
CREATE INDEX IF NOT EXISTS idx_growing_plants_due ON growing_plants(is_ready, planted_at);

-- Per-player discovery stats, one row per plant the player has harvested.

CREATE TABLE IF NOT EXISTS plant_codex (
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    plant_id INTEGER NOT NULL REFERENCES plants(plant_id) ON DELETE CASCADE,
    times_grown INTEGER NOT NULL DEFAULT 0 CHECK (times_grown >= 0),
    first_discovered TIMESTAMPTZ NOT NULL,
    last_grown TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (player_id, plant_id)
);

-- Room chat

CREATE TABLE IF NOT EXISTS chat_messages (
    chat_message_id SERIAL PRIMARY KEY,
    room_id INTEGER NOT NULL REFERENCES rooms(room_id) ON DELETE CASCADE,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    message_content VARCHAR(500) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_chat_messages_room ON chat_messages(room_id, created_at);
`

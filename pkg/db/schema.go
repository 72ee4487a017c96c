package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Series table: one row per tracked series, mirroring the spreadsheet
-- columns. position doubles as the stable row identifier used for
-- targeted writes.
CREATE TABLE IF NOT EXISTS series (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    link TEXT NOT NULL DEFAULT '',
    watched_episode INTEGER NOT NULL DEFAULT 0,
    site_episode INTEGER NOT NULL DEFAULT 0,
    total_episodes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_series_name ON series(name);
`

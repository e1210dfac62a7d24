package db

const schemaSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS picks (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    sport TEXT NOT NULL,
    home_team TEXT NOT NULL,
    away_team TEXT NOT NULL,
    team TEXT NOT NULL,
    bet_type TEXT NOT NULL,
    side TEXT NOT NULL,
    line REAL,
    odds INTEGER NOT NULL,
    commence_time TEXT,
    confidence INTEGER NOT NULL,
    tier TEXT NOT NULL,
    recommendation TEXT NOT NULL,
    headline TEXT,
    signals TEXT NOT NULL,
    closing_line REAL,
    closing_odds INTEGER,
    clv REAL,
    clv_cents REAL,
    result TEXT,
    graded_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_picks_sport ON picks(sport);
CREATE INDEX IF NOT EXISTS idx_picks_created ON picks(created_at);
CREATE INDEX IF NOT EXISTS idx_picks_ungraded ON picks(result) WHERE result IS NULL;

CREATE TABLE IF NOT EXISTS weight_tests (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ran_at TEXT NOT NULL DEFAULT (datetime('now')),
    weights TEXT NOT NULL,
    threshold INTEGER NOT NULL,
    picks_scored INTEGER NOT NULL,
    picks_passing INTEGER NOT NULL,
    wins INTEGER NOT NULL,
    losses INTEGER NOT NULL,
    pushes INTEGER NOT NULL,
    hit_rate REAL NOT NULL,
    pnl REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_weight_tests_ran ON weight_tests(ran_at);
`

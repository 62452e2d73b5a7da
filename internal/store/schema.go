package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    t_date      TEXT NOT NULL,
    description TEXT,
    category    TEXT,
    amount      REAL NOT NULL,
    account     TEXT DEFAULT 'Cash',
    created_at  TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT
);

INSERT OR IGNORE INTO settings(key, value) VALUES('initial_balance', '0');

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(t_date);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
`

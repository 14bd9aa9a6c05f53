package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: families must be created BEFORE individuals due to foreign key constraint.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS families (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'green',
    district TEXT,
    phone TEXT,
    address TEXT,
    primary_contact_id TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS individuals (
    id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    id_number TEXT NOT NULL UNIQUE,
    date_of_birth TEXT,
    gender TEXT,
    phone TEXT,
    district TEXT NOT NULL DEFAULT '',
    address TEXT,
    family_id TEXT,
    list_status TEXT NOT NULL DEFAULT 'whitelist',
    assistance_types TEXT NOT NULL DEFAULT '[]',
    additional_members TEXT NOT NULL DEFAULT '[]',
    created_by TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS family_members (
    family_id TEXT NOT NULL,
    individual_id TEXT NOT NULL,
    role TEXT NOT NULL,
    PRIMARY KEY (family_id, individual_id),
    FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE,
    FOREIGN KEY (individual_id) REFERENCES individuals(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS children (
    id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    date_of_birth TEXT,
    gender TEXT,
    school_stage TEXT,
    parent_id TEXT NOT NULL,
    family_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (parent_id) REFERENCES individuals(id) ON DELETE CASCADE,
    FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS distributions (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    aid_type TEXT NOT NULL,
    description TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    value TEXT NOT NULL,
    value_per_unit TEXT,
    status TEXT NOT NULL,
    created_by TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS distribution_recipients (
    id TEXT PRIMARY KEY,
    distribution_id TEXT NOT NULL,
    individual_id TEXT,
    child_id TEXT,
    recipient_name TEXT,
    quantity_received INTEGER NOT NULL CHECK (quantity_received >= 1),
    value_received TEXT NOT NULL,
    notes TEXT,
    position INTEGER NOT NULL,
    CHECK (individual_id IS NULL OR child_id IS NULL),
    FOREIGN KEY (distribution_id) REFERENCES distributions(id) ON DELETE CASCADE,
    FOREIGN KEY (individual_id) REFERENCES individuals(id),
    FOREIGN KEY (child_id) REFERENCES children(id)
);

CREATE TABLE IF NOT EXISTS needs (
    id TEXT PRIMARY KEY,
    individual_id TEXT NOT NULL,
    category TEXT NOT NULL,
    priority TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    description TEXT NOT NULL,
    created_by TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (individual_id) REFERENCES individuals(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS pending_requests (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    data TEXT NOT NULL,
    submitted_by TEXT NOT NULL,
    submitted_at INTEGER NOT NULL,
    reviewed_by TEXT,
    reviewed_at INTEGER,
    admin_comment TEXT,
    version INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS approval_logs (
    id TEXT PRIMARY KEY,
    action TEXT NOT NULL,
    request_id TEXT,
    request_type TEXT,
    actor_id TEXT,
    actor_name TEXT,
    target_name TEXT,
    details TEXT,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_individuals_family_id ON individuals(family_id);
CREATE INDEX IF NOT EXISTS idx_individuals_district ON individuals(district);
CREATE INDEX IF NOT EXISTS idx_family_members_family_id ON family_members(family_id);
CREATE INDEX IF NOT EXISTS idx_children_family_id ON children(family_id);
CREATE INDEX IF NOT EXISTS idx_distributions_date ON distributions(date);
CREATE INDEX IF NOT EXISTS idx_recipients_distribution_id ON distribution_recipients(distribution_id);
CREATE INDEX IF NOT EXISTS idx_recipients_individual_id ON distribution_recipients(individual_id);
CREATE INDEX IF NOT EXISTS idx_needs_individual_id ON needs(individual_id);
CREATE INDEX IF NOT EXISTS idx_pending_requests_status ON pending_requests(status);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

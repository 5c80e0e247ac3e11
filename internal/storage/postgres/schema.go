package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the full DDL for the tracking store. Foreign keys are plain
// references with no ON DELETE action: deleting a project with dependent
// rows fails at the constraint instead of cascading.
const Schema = `
CREATE TABLE IF NOT EXISTS projects (
    id              BIGSERIAL PRIMARY KEY,
    code            VARCHAR(12) NOT NULL UNIQUE,
    type            VARCHAR(20) NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    analyst         VARCHAR(50) NOT NULL DEFAULT '',
    manager         VARCHAR(50) NOT NULL DEFAULT '',
    status          VARCHAR(20) NOT NULL DEFAULT 'new',
    last_edited_by  VARCHAR(50) NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS csp_lob_mappings (
    id               BIGSERIAL PRIMARY KEY,
    project_id       BIGINT NOT NULL REFERENCES projects(id),
    csp_code         VARCHAR(50) NOT NULL,
    lob_type         VARCHAR(20) NOT NULL,
    description      TEXT NOT NULL DEFAULT '',
    status           VARCHAR(20) NOT NULL DEFAULT 'active',
    effective_date   TIMESTAMPTZ NOT NULL,
    termination_date TIMESTAMPTZ,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uix_csp_lob UNIQUE (csp_code, lob_type)
);

CREATE TABLE IF NOT EXISTS y_lines (
    id                BIGSERIAL PRIMARY KEY,
    project_id        BIGINT NOT NULL REFERENCES projects(id),
    ipa_number        VARCHAR(50) NOT NULL UNIQUE,
    product_code      VARCHAR(50) NOT NULL,
    description       TEXT NOT NULL DEFAULT '',
    pre_award_status  VARCHAR(20) NOT NULL DEFAULT '',
    post_award_status VARCHAR(20) NOT NULL DEFAULT '',
    estimated_value   DOUBLE PRECISION,
    actual_value      DOUBLE PRECISION,
    status            VARCHAR(20) NOT NULL DEFAULT 'pending',
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS project_notes (
    id          BIGSERIAL PRIMARY KEY,
    project_id  BIGINT NOT NULL REFERENCES projects(id),
    note        TEXT NOT NULL,
    action_item BOOLEAN NOT NULL DEFAULT FALSE,
    category    VARCHAR(50) NOT NULL DEFAULT '',
    authored_by VARCHAR(50) NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS competitors (
    id             BIGSERIAL PRIMARY KEY,
    project_id     BIGINT NOT NULL REFERENCES projects(id),
    payor          VARCHAR(50) NOT NULL,
    product        VARCHAR(60) NOT NULL DEFAULT '',
    product_code   VARCHAR(50) NOT NULL DEFAULT '',
    ei             BOOLEAN NOT NULL DEFAULT FALSE,
    cs             BOOLEAN NOT NULL DEFAULT FALSE,
    mr             BOOLEAN NOT NULL DEFAULT FALSE,
    last_edited_by VARCHAR(50) NOT NULL DEFAULT '',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS service_areas (
    id             BIGSERIAL PRIMARY KEY,
    project_id     BIGINT NOT NULL REFERENCES projects(id),
    region         VARCHAR(30) NOT NULL DEFAULT '',
    state          VARCHAR(2) NOT NULL DEFAULT '',
    county         VARCHAR(75) NOT NULL DEFAULT '',
    report_include BOOLEAN NOT NULL DEFAULT TRUE,
    max_mileage    INTEGER,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS project_status_history (
    id          BIGSERIAL PRIMARY KEY,
    project_id  BIGINT NOT NULL REFERENCES projects(id),
    status      VARCHAR(20) NOT NULL,
    status_date TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_by  VARCHAR(50) NOT NULL DEFAULT '',
    comments    VARCHAR(500) NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_csp_lob_project ON csp_lob_mappings (project_id);
CREATE INDEX IF NOT EXISTS idx_y_lines_project ON y_lines (project_id);
CREATE INDEX IF NOT EXISTS idx_y_lines_updated ON y_lines (updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_project_notes_project ON project_notes (project_id);
CREATE INDEX IF NOT EXISTS idx_competitors_project ON competitors (project_id);
CREATE INDEX IF NOT EXISTS idx_service_areas_project ON service_areas (project_id);
CREATE INDEX IF NOT EXISTS idx_status_history_project ON project_status_history (project_id, status_date DESC);
`

// EnsureSchema creates the tracking tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upOrderStatusChangesTable, downOrderStatusChangesTable)
}

func upOrderStatusChangesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE order_status_changes
(
    id              BIGSERIAL PRIMARY KEY,
    order_id        BIGINT      NOT NULL REFERENCES orders (id),
    previous_status TEXT        NOT NULL,
    new_status      TEXT        NOT NULL,
    changed_at      TIMESTAMPTZ NOT NULL,
    actor           TEXT        NOT NULL
);
CREATE INDEX order_status_changes_order_idx ON order_status_changes (order_id, changed_at, id);`)
	return err
}

func downOrderStatusChangesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE order_status_changes;")
	return err
}

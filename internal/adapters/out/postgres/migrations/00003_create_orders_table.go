package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upOrdersTable, downOrdersTable)
}

func upOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE orders
(
    id                   BIGSERIAL PRIMARY KEY,
    channel              TEXT           NOT NULL CHECK (channel IN ('WEB', 'IN_PERSON')),
    customer_id          BIGINT         NOT NULL REFERENCES customers (id),
    created_at           TIMESTAMPTZ    NOT NULL,
    total_amount         NUMERIC(14, 2) NOT NULL CHECK (total_amount >= 0),
    status               TEXT           NOT NULL CHECK (status IN
        ('PENDING', 'PROCESSING', 'COMPLETED', 'DELIVERED', 'CANCELLED', 'VOIDED')),
    external_payment_ref TEXT,
    CHECK ((channel = 'WEB') = (external_payment_ref IS NOT NULL))
);
CREATE INDEX orders_channel_status_idx ON orders (channel, status);
CREATE INDEX orders_customer_created_idx ON orders (customer_id, created_at);`)
	return err
}

func downOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE orders;")
	return err
}

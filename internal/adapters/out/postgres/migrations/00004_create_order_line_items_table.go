package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upOrderLineItemsTable, downOrderLineItemsTable)
}

func upOrderLineItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE order_line_items
(
    id          BIGSERIAL PRIMARY KEY,
    order_id    BIGINT         NOT NULL REFERENCES orders (id),
    position    INT            NOT NULL,
    product_ref BIGINT         NOT NULL,
    quantity    INT            NOT NULL CHECK (quantity > 0),
    unit_price  NUMERIC(14, 2) NOT NULL CHECK (unit_price >= 0),
    subtotal    NUMERIC(14, 2) NOT NULL,
    UNIQUE (order_id, position)
);`)
	return err
}

func downOrderLineItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE order_line_items;")
	return err
}

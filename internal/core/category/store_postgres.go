package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on top of a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s
	`,
		strings.Join(schema.CoreCategory.Columns(), ", "),
		schema.CoreCategory.Table,
		schema.CoreCategory.IsActive,
		schema.CoreCategory.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Name, &c.IsActive); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, dberr.Wrap(rows.Err(), "iterate_categories")
}

func (repository *PostgresRepository) Create(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, TRUE)
		RETURNING %s, %s
	`,
		schema.CoreCategory.Table, schema.CoreCategory.ParentID, schema.CoreCategory.Name, schema.CoreCategory.IsActive,
		schema.CoreCategory.ID, schema.CoreCategory.IsActive,
	)

	err := repository.db.QueryRow(context, query, c.ParentID, c.Name).Scan(&c.ID, &c.IsActive)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) Rename(context context.Context, id int, name string) (*Category, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2
		WHERE %s = $1 AND %s = TRUE
		RETURNING %s
	`,
		schema.CoreCategory.Table, schema.CoreCategory.Name, schema.CoreCategory.ID, schema.CoreCategory.IsActive,
		strings.Join(schema.CoreCategory.Columns(), ", "),
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, id, name).Scan(&c.ID, &c.ParentID, &c.Name, &c.IsActive)
	if err != nil {
		return nil, dberr.Wrap(err, "rename_category")
	}
	return c, nil
}

func (repository *PostgresRepository) SoftDelete(context context.Context, ids []int) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE WHERE %s = ANY($1) AND %s = TRUE`,
		schema.CoreCategory.Table, schema.CoreCategory.IsActive, schema.CoreCategory.ID, schema.CoreCategory.IsActive,
	)

	cmd, err := repository.db.Exec(context, query, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_categories")
	}
	return cmd.RowsAffected(), nil
}

package country

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

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s, %s
	`,
		strings.Join(schema.CoreCountry.Columns(), ", "),
		schema.CoreCountry.Table,
		schema.CoreCountry.IsActive,
		schema.CoreCountry.Name, schema.CoreCountry.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_countries")
	}
	defer rows.Close()

	countries := make([]*Country, 0)
	for rows.Next() {
		c := &Country{}
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			return nil, dberr.Wrap(err, "scan_country")
		}
		countries = append(countries, c)
	}

	return countries, dberr.Wrap(rows.Err(), "iterate_countries")
}

func (repository *PostgresRepository) Create(context context.Context, c *Country) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, TRUE)
		RETURNING %s, %s
	`,
		schema.CoreCountry.Table, schema.CoreCountry.Name, schema.CoreCountry.IsActive,
		schema.CoreCountry.ID, schema.CoreCountry.IsActive,
	)

	err := repository.db.QueryRow(context, query, c.Name).Scan(&c.ID, &c.IsActive)
	return dberr.Wrap(err, "create_country")
}

func (repository *PostgresRepository) Rename(context context.Context, id int, name string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 AND %s = TRUE`,
		schema.CoreCountry.Table, schema.CoreCountry.Name, schema.CoreCountry.ID, schema.CoreCountry.IsActive,
	)

	cmd, err := repository.db.Exec(context, query, id, name)
	if err != nil {
		return dberr.Wrap(err, "rename_country")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SoftDelete(context context.Context, id int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE WHERE %s = $1 AND %s = TRUE`,
		schema.CoreCountry.Table, schema.CoreCountry.IsActive, schema.CoreCountry.ID, schema.CoreCountry.IsActive,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_country")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

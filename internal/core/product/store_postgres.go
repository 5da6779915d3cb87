package product

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) List(context context.Context, filter Filter) (*Result, error) {
	built := buildListQuery(filter)

	countQuery, countArgs := built.Count()
	result := &Result{Products: make([]*View, 0)}
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&result.Count); err != nil {
		return nil, dberr.Wrap(err, "count_products")
	}

	if result.Count == 0 {
		return result, nil
	}

	pageQuery, pageArgs := built.Page(selectColumns(), filter.Window.Take, filter.Window.Skip)
	rows, err := repository.db.Query(context, pageQuery, pageArgs...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		result.Products = append(result.Products, view)
	}

	return result, dberr.Wrap(rows.Err(), "iterate_products")
}

func scanView(row pgx.Row) (*View, error) {
	v := &View{}
	err := row.Scan(
		&v.ID, &v.CategoryID, &v.Code, &v.Name, &v.Price, &v.CountryID,
		&v.StartDate, &v.EndDate, &v.IsActive, &v.CountryName, &v.CategoryName,
	)
	return v, err
}

func (repository *PostgresRepository) Create(context context.Context, p *Product) error {
	t := schema.CoreProduct
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING %s, %s
	`,
		t.Table, t.CategoryID, t.Code, t.Name, t.Price, t.CountryID, t.StartDate, t.EndDate, t.IsActive,
		t.ID, t.IsActive,
	)

	err := repository.db.QueryRow(context, query,
		p.CategoryID, p.Code, p.Name, p.Price, p.CountryID, p.StartDate, p.EndDate,
	).Scan(&p.ID, &p.IsActive)
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) Update(context context.Context, p *Product) error {
	t := schema.CoreProduct
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1 AND %s = TRUE
		RETURNING %s
	`,
		t.Table, t.CategoryID, t.Code, t.Name, t.Price, t.CountryID, t.StartDate, t.EndDate,
		t.ID, t.IsActive,
		t.IsActive,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.CategoryID, p.Code, p.Name, p.Price, p.CountryID, p.StartDate, p.EndDate,
	).Scan(&p.IsActive)
	return dberr.Wrap(err, "update_product")
}

func (repository *PostgresRepository) SoftDelete(context context.Context, ids []int) (int64, error) {
	t := schema.CoreProduct
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE WHERE %s = ANY($1) AND %s = TRUE`,
		t.Table, t.IsActive, t.ID, t.IsActive,
	)

	cmd, err := repository.db.Exec(context, query, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_products")
	}
	return cmd.RowsAffected(), nil
}

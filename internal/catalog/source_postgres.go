package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

const (
	listProductsQuery = `
		SELECT product_id, product_name, product_desc, category, brand, product_price, discount, product_pic, affiliate_url
		FROM product
		ORDER BY product_id
	`
	listProductsByCategoryQuery = `
		SELECT product_id, product_name, product_desc, category, brand, product_price, discount, product_pic, affiliate_url
		FROM product
		WHERE category = ANY($1)
		ORDER BY product_id
	`
	listCategoriesQuery = `SELECT "categoryName" FROM category ORDER BY ord DESC, "categoryID"`
)

// PostgresSource loads products from the `product` table. When Categories
// is non-empty only those categories are loaded.
type PostgresSource struct {
	db         *sql.DB
	Categories []string
}

func NewPostgresSource(db *sql.DB, categories []string) *PostgresSource {
	return &PostgresSource{db: db, Categories: categories}
}

// OpenPostgres opens and pings a pgx-backed database handle.
func OpenPostgres(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s *PostgresSource) Load(ctx context.Context) ([]Product, []string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(s.Categories) > 0 {
		rows, err = s.db.QueryContext(ctx, listProductsByCategoryQuery, pq.Array(s.Categories))
	} else {
		rows, err = s.db.QueryContext(ctx, listProductsQuery)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	// the category table is optional; categories then come from the products
	categories := s.Categories
	if len(categories) == 0 {
		categories = s.listCategories(ctx)
	}
	return out, categories, nil
}

func (s *PostgresSource) listCategories(ctx context.Context) []string {
	rows, err := s.db.QueryContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			continue
		}
		if name.Valid {
			out = append(out, name.String)
		}
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	var (
		id           int64
		name         sql.NullString
		desc         sql.NullString
		category     sql.NullString
		brand        sql.NullString
		price        sql.NullFloat64
		discount     sql.NullFloat64
		pic          sql.NullString
		affiliateURL sql.NullString
	)
	if err := scanner.Scan(&id, &name, &desc, &category, &brand, &price, &discount, &pic, &affiliateURL); err != nil {
		return Product{}, err
	}

	p := Product{
		ID:           IDFromInt(id),
		Name:         name.String,
		Description:  desc.String,
		Category:     category.String,
		Brand:        brand.String,
		Image:        pic.String,
		AffiliateURL: affiliateURL.String,
	}
	if price.Valid {
		v := price.Float64
		p.Price = &v
	}
	if discount.Valid {
		v := discount.Float64
		p.Discount = &v
	}
	return p, nil
}

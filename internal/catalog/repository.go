package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/Lilianobi/audiophile/internal/domain"
)

// Repository reads the seeded product set from SQLite. It is only touched
// at startup; all runtime lookups go through the in-memory Catalog.
type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repository) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, slug, name, category, category_name, is_new, price,
		       description, features, includes, gallery, image, cart_image, others
		FROM products
		ORDER BY category, price`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	var p domain.Product
	var includes, gallery, image, others []byte

	err := rows.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Category, &p.CategoryName, &p.New,
		&p.Price, &p.Description, &p.Features,
		&includes, &gallery, &image, &p.CartImage, &others,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	if err := json.Unmarshal(includes, &p.Includes); err != nil {
		return nil, fmt.Errorf("failed to decode includes for %s: %w", p.Slug, err)
	}
	if err := json.Unmarshal(gallery, &p.Gallery); err != nil {
		return nil, fmt.Errorf("failed to decode gallery for %s: %w", p.Slug, err)
	}
	if err := json.Unmarshal(image, &p.Image); err != nil {
		return nil, fmt.Errorf("failed to decode image for %s: %w", p.Slug, err)
	}
	if err := json.Unmarshal(others, &p.Others); err != nil {
		return nil, fmt.Errorf("failed to decode others for %s: %w", p.Slug, err)
	}

	return &p, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

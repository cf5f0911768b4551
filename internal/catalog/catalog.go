package catalog

import (
	"context"
	"fmt"

	"github.com/Lilianobi/audiophile/internal/domain"
)

// Catalog holds the full product set in memory. It is built once at startup
// and read-only afterwards, so lookups need no locking.
type Catalog struct {
	ordered    []*domain.Product
	byID       map[string]*domain.Product
	bySlug     map[string]*domain.Product
	byCategory map[domain.Category][]*domain.Product
}

// Load reads every product from the repository and indexes it.
func Load(ctx context.Context, repo *Repository) (*Catalog, error) {
	products, err := repo.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return New(products), nil
}

// New indexes an already-loaded product set.
func New(products []*domain.Product) *Catalog {
	c := &Catalog{
		ordered:    products,
		byID:       make(map[string]*domain.Product, len(products)),
		bySlug:     make(map[string]*domain.Product, len(products)),
		byCategory: make(map[domain.Category][]*domain.Product),
	}

	for _, p := range products {
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
	}

	return c
}

// All returns every product in catalog order.
func (c *Catalog) All() []*domain.Product {
	return c.ordered
}

func (c *Catalog) ByID(id string) (*domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) BySlug(slug string) (*domain.Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

func (c *Catalog) ByCategory(category domain.Category) []*domain.Product {
	return c.byCategory[category]
}

// Related resolves the product's "others" slugs, skipping any that no
// longer exist in the catalog.
func (c *Catalog) Related(slug string) []*domain.Product {
	p, ok := c.bySlug[slug]
	if !ok {
		return nil
	}

	related := make([]*domain.Product, 0, len(p.Others))
	for _, other := range p.Others {
		if rp, ok := c.bySlug[other]; ok {
			related = append(related, rp)
		}
	}
	return related
}

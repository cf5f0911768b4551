package domain

type Category string

const (
	CategoryHeadphones Category = "headphones"
	CategorySpeakers   Category = "speakers"
	CategoryEarphones  Category = "earphones"
)

// ProductInclude is one "in the box" entry.
type ProductInclude struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}

type ProductGallery struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// ProductImage holds the responsive variants of the main product shot.
type ProductImage struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
}

type Product struct {
	ID           string           `json:"id"`
	Slug         string           `json:"slug"`
	Name         string           `json:"name"`
	Category     Category         `json:"category"`
	CategoryName string           `json:"categoryName"`
	New          bool             `json:"new"`
	Price        int              `json:"price"`
	Description  string           `json:"description"`
	Features     string           `json:"features"`
	Includes     []ProductInclude `json:"includes"`
	Gallery      ProductGallery   `json:"gallery"`
	Image        ProductImage     `json:"image"`
	CartImage    string           `json:"cartImage"`
	Others       []string         `json:"others"`
}

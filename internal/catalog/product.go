package catalog

// ProductImage is a display asset for a product, optionally bound to a
// variant colour.
type ProductImage struct {
	URL   string `json:"url"`
	Color string `json:"color,omitempty"`
	Main  bool   `json:"main,omitempty"`
}

// ProductVariant is a purchasable variation of a product.
type ProductVariant struct {
	Color string `json:"color"`
}

// Product is a catalogue entry. Price is in major currency units and
// Discount is a percentage in [0, 100].
type Product struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Discount    float64          `json:"discount,omitempty"`
	Description string           `json:"description,omitempty"`
	Images      []ProductImage   `json:"images"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	BoxContents []string         `json:"boxContents,omitempty"`
	Slug        string           `json:"slug"`
	Tags        []string         `json:"tags,omitempty"`
}

// MainImage returns the primary display image URL, falling back to the
// first image when none is flagged as main.
func (p Product) MainImage() string {
	for _, img := range p.Images {
		if img.Main {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

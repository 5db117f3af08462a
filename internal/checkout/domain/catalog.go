package domain

// Catalog owns product lifetimes. Carts and shipment summaries alias the
// references it hands out; nothing outside the catalog creates or deletes
// products within a run.
type Catalog struct {
	order    []string
	products map[string]Product
}

func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]Product)}
}

// Register adds a product under its name. Re-registering a name replaces
// the product but keeps its original position.
func (c *Catalog) Register(p Product) {
	if _, ok := c.products[p.Name()]; !ok {
		c.order = append(c.order, p.Name())
	}
	c.products[p.Name()] = p
}

func (c *Catalog) Get(name string) (Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

// List returns products in registration order.
func (c *Catalog) List() []Product {
	out := make([]Product, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.products[name])
	}
	return out
}

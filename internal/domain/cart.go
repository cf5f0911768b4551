package domain

// CartItem is one line item in a session cart. Quantity is always >= 1;
// a zero or negative quantity removes the line instead.
type CartItem struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Price    int    `json:"price" bson:"price"`
	Quantity int    `json:"quantity" bson:"quantity"`
	Image    string `json:"image" bson:"image"`
}

// CartTotal is the sum of price*quantity across items.
func CartTotal(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

// CartCount is the sum of quantities, not the number of lines.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

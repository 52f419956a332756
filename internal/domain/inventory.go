package domain

// Inventory is a stocked item.
type Inventory struct {
	Meta
	Name        string  `json:"name" dynamodbav:"name"`
	Description string  `json:"description" dynamodbav:"description"`
	Quantity    int     `json:"quantity" dynamodbav:"quantity"`
	Price       float64 `json:"price" dynamodbav:"price"`
	Category    string  `json:"category" dynamodbav:"category"`
	Supplier    string  `json:"supplier,omitempty" dynamodbav:"supplier"`
}

type InventoryInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required,max=50"`
	Supplier    string   `json:"supplier" validate:"omitempty,max=100"`
}

func NewInventory(in *InventoryInput) *Inventory {
	return &Inventory{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    *in.Quantity,
		Price:       *in.Price,
		Category:    in.Category,
		Supplier:    in.Supplier,
	}
}

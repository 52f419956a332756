package domain

type Order struct {
	Meta
	OrderID   string  `json:"orderId" dynamodbav:"order_id"`
	ProductID string  `json:"productId" dynamodbav:"product_id"`
	Quantity  int     `json:"quantity" dynamodbav:"quantity"`
	Price     float64 `json:"price" dynamodbav:"price"`
}

type OrderInput struct {
	OrderID   string   `json:"orderId" validate:"required,max=30"`
	ProductID string   `json:"productId" validate:"required,max=30"`
	Quantity  *int     `json:"quantity" validate:"required,gte=1"`
	Price     *float64 `json:"price" validate:"required,gt=0"`
}

func NewOrder(in *OrderInput) *Order {
	return &Order{
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		Quantity:  *in.Quantity,
		Price:     *in.Price,
	}
}

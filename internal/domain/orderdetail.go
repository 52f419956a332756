package domain

// OrderDetail is a single order line. TotalPrice is derived, never taken from
// the client: NewOrderDetail computes it from the validated quantity and
// price before persistence.
type OrderDetail struct {
	Meta
	OrderID    string  `json:"orderId" dynamodbav:"order_id"`
	ProductID  string  `json:"productId" dynamodbav:"product_id"`
	Quantity   int     `json:"quantity" dynamodbav:"quantity"`
	Price      float64 `json:"price" dynamodbav:"price"`
	TotalPrice float64 `json:"totalPrice" dynamodbav:"total_price"`
}

type OrderDetailInput struct {
	OrderID   string   `json:"orderId" validate:"required"`
	ProductID string   `json:"productId" validate:"required"`
	Quantity  *int     `json:"quantity" validate:"required,gte=1"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
}

func NewOrderDetail(in *OrderDetailInput) *OrderDetail {
	return &OrderDetail{
		OrderID:    in.OrderID,
		ProductID:  in.ProductID,
		Quantity:   *in.Quantity,
		Price:      *in.Price,
		TotalPrice: float64(*in.Quantity) * *in.Price,
	}
}

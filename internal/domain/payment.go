package domain

type Payment struct {
	Meta
	PaymentID     string  `json:"paymentId" dynamodbav:"payment_id"`
	OrderID       string  `json:"orderId" dynamodbav:"order_id"`
	PaymentDate   string  `json:"paymentDate" dynamodbav:"payment_date"`
	PaymentMethod string  `json:"paymentMethod" dynamodbav:"payment_method"`
	PaymentAmount float64 `json:"paymentAmount" dynamodbav:"payment_amount"`
}

type PaymentInput struct {
	PaymentID     string   `json:"paymentId" validate:"required,max=30"`
	OrderID       string   `json:"orderId" validate:"required,max=30"`
	PaymentDate   string   `json:"paymentDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	PaymentMethod string   `json:"paymentMethod" validate:"required,max=100"`
	PaymentAmount *float64 `json:"paymentAmount" validate:"required,gt=0"`
}

func NewPayment(in *PaymentInput) *Payment {
	return &Payment{
		PaymentID:     in.PaymentID,
		OrderID:       in.OrderID,
		PaymentDate:   in.PaymentDate,
		PaymentMethod: in.PaymentMethod,
		PaymentAmount: *in.PaymentAmount,
	}
}

package domain

type Transaction struct {
	Meta
	TransactionID   string  `json:"transactionID" dynamodbav:"transaction_id"`
	ProductID       string  `json:"productID" dynamodbav:"product_id"`
	InventoryID     string  `json:"inventoryID" dynamodbav:"inventory_id"`
	OrderID         string  `json:"orderID" dynamodbav:"order_id"`
	TransactionType string  `json:"transactionType" dynamodbav:"transaction_type"`
	TransactionDate string  `json:"transactionDate" dynamodbav:"transaction_date"`
	Quantity        int     `json:"quantity" dynamodbav:"quantity"`
	Payment         float64 `json:"payment" dynamodbav:"payment"`
}

type TransactionInput struct {
	TransactionID   string   `json:"transactionID" validate:"required"`
	ProductID       string   `json:"productID" validate:"required"`
	InventoryID     string   `json:"inventoryID" validate:"required"`
	OrderID         string   `json:"orderID" validate:"required"`
	TransactionType string   `json:"transactionType" validate:"required,oneof=purchase sale"`
	TransactionDate string   `json:"transactionDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Quantity        *int     `json:"quantity" validate:"required,gte=0"`
	Payment         *float64 `json:"payment" validate:"required,gte=0"`
}

func NewTransaction(in *TransactionInput) *Transaction {
	return &Transaction{
		TransactionID:   in.TransactionID,
		ProductID:       in.ProductID,
		InventoryID:     in.InventoryID,
		OrderID:         in.OrderID,
		TransactionType: in.TransactionType,
		TransactionDate: in.TransactionDate,
		Quantity:        *in.Quantity,
		Payment:         *in.Payment,
	}
}

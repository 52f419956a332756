package domain

type Product struct {
	Meta
	Name          string  `json:"name" dynamodbav:"name"`
	Description   string  `json:"description" dynamodbav:"description"`
	Price         float64 `json:"price" dynamodbav:"price"`
	StockQuantity int     `json:"stockQuantity" dynamodbav:"stock_quantity"`
	CategoryID    string  `json:"categoryId" dynamodbav:"category_id"`
	SupplierID    string  `json:"supplierId" dynamodbav:"supplier_id"`
}

type ProductInput struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Description   string   `json:"description" validate:"required,max=500"`
	Price         *float64 `json:"price" validate:"required,gt=0"`
	StockQuantity *int     `json:"stockQuantity" validate:"required,gte=0"`
	CategoryID    string   `json:"categoryId" validate:"required,max=50"`
	SupplierID    string   `json:"supplierId" validate:"required"`
}

func NewProduct(in *ProductInput) *Product {
	return &Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         *in.Price,
		StockQuantity: *in.StockQuantity,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
	}
}

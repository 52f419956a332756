package domain

type Supplier struct {
	Meta
	SupplierID   string `json:"supplierId" dynamodbav:"supplier_id"`
	SupplierName string `json:"supplierName" dynamodbav:"supplier_name"`
	ContactInfo  string `json:"contactInfo" dynamodbav:"contact_info"`
	Address      string `json:"address" dynamodbav:"address"`
}

type SupplierInput struct {
	SupplierID   string `json:"supplierId" validate:"required,max=30"`
	SupplierName string `json:"supplierName" validate:"required,max=100"`
	ContactInfo  string `json:"contactInfo" validate:"required,max=50"`
	Address      string `json:"address" validate:"required,max=200"`
}

func NewSupplier(in *SupplierInput) *Supplier {
	return &Supplier{
		SupplierID:   in.SupplierID,
		SupplierName: in.SupplierName,
		ContactInfo:  in.ContactInfo,
		Address:      in.Address,
	}
}

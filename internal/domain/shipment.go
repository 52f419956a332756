package domain

type Shipment struct {
	Meta
	ShipmentID     string `json:"shipmentId" dynamodbav:"shipment_id"`
	OrderID        string `json:"orderId" dynamodbav:"order_id"`
	ShipmentDate   string `json:"shipmentDate" dynamodbav:"shipment_date"`
	ShipmentMethod string `json:"shipmentMethod" dynamodbav:"shipment_method"`
	TrackingNumber string `json:"trackingNumber" dynamodbav:"tracking_number"`
	Status         string `json:"status" dynamodbav:"status"`
}

type ShipmentInput struct {
	ShipmentID     string `json:"shipmentId" validate:"required"`
	OrderID        string `json:"orderId" validate:"required"`
	ShipmentDate   string `json:"shipmentDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ShipmentMethod string `json:"shipmentMethod" validate:"required,max=50"`
	TrackingNumber string `json:"trackingNumber" validate:"required"`
	Status         string `json:"status" validate:"required,max=50"`
}

func NewShipment(in *ShipmentInput) *Shipment {
	return &Shipment{
		ShipmentID:     in.ShipmentID,
		OrderID:        in.OrderID,
		ShipmentDate:   in.ShipmentDate,
		ShipmentMethod: in.ShipmentMethod,
		TrackingNumber: in.TrackingNumber,
		Status:         in.Status,
	}
}

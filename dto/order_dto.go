package dto

type OrderItemDTO struct {
	ProductID string  `json:"productId" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Image     string  `json:"image"`
}

type CustomerInfoDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address" binding:"required"`
}

type CreateOrderDTO struct {
	Items          []OrderItemDTO  `json:"items" binding:"required,min=1,dive"`
	Subtotal       float64         `json:"subtotal" binding:"gte=0"`
	Shipping       float64         `json:"shipping" binding:"gte=0"`
	Total          float64         `json:"total" binding:"gte=0"`
	Customer       CustomerInfoDTO `json:"customer" binding:"required"`
	ShippingMethod string          `json:"shippingMethod" binding:"omitempty,oneof='Standard Shipping' 'Express Shipping'"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

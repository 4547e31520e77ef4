package dto

type CreateProductDTO struct {
	Title           string   `json:"title" binding:"required,min=3"`
	Slug            string   `json:"slug"` // auto-generated from Title if empty
	Description     string   `json:"description"`
	DescriptionFull string   `json:"descriptionFull"`
	Price           float64  `json:"price" binding:"required,gte=0"`
	DiscountPrice   *float64 `json:"discountPrice" binding:"omitempty,gte=0"`
	Category        string   `json:"category" binding:"required"`
	Stock           int      `json:"stock" binding:"gte=0"`
	Materials       string   `json:"materials"`
	Dimensions      string   `json:"dimensions"`
	Images          []string `json:"images"`
	Active          *bool    `json:"active"` // defaults to true
}

type UpdateProductDTO struct {
	Title           *string   `json:"title,omitempty"`
	Slug            *string   `json:"slug,omitempty"`
	Description     *string   `json:"description,omitempty"`
	DescriptionFull *string   `json:"descriptionFull,omitempty"`
	Price           *float64  `json:"price,omitempty" binding:"omitempty,gte=0"`
	DiscountPrice   *float64  `json:"discountPrice,omitempty" binding:"omitempty,gte=0"`
	Category        *string   `json:"category,omitempty"`
	Stock           *int      `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Materials       *string   `json:"materials,omitempty"`
	Dimensions      *string   `json:"dimensions,omitempty"`
	Images          *[]string `json:"images,omitempty"`
	Active          *bool     `json:"active,omitempty"`
}

type RemoveProductImagesDTO struct {
	ImageUrls []string `json:"imageUrls" binding:"required,min=1"`
}

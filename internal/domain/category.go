package domain

type Category struct {
	Meta
	CategoryID   string `json:"categoryId" dynamodbav:"category_id"`
	CategoryName string `json:"categoryName" dynamodbav:"category_name"`
	Description  string `json:"description,omitempty" dynamodbav:"description"`
}

type CategoryInput struct {
	CategoryID   string `json:"categoryId" validate:"required"`
	CategoryName string `json:"categoryName" validate:"required,max=100"`
	Description  string `json:"description" validate:"omitempty,max=500"`
}

func NewCategory(in *CategoryInput) *Category {
	return &Category{
		CategoryID:   in.CategoryID,
		CategoryName: in.CategoryName,
		Description:  in.Description,
	}
}

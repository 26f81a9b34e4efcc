package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateCategory = "category added successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessGetCategory    = "category retrieved successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedCreateCategory = "failed to add category"
	MessageFailedGetCategories  = "failed to fetch categories"
	MessageFailedGetCategory    = "failed to fetch category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	MessageSuccessCreateProduct = "product added successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessGetProduct    = "product retrieved successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"

	MessageFailedCreateProduct = "failed to add product"
	MessageFailedGetProducts   = "failed to fetch products"
	MessageFailedGetProduct    = "failed to fetch product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"

	ErrCategoryNotFound  = NewError(ErrNotFound, "category not found")
	ErrProductNotFound   = NewError(ErrNotFound, "product not found")
	ErrImageRequired     = NewError(ErrInvalidInput, "image is required")
	ErrInvalidPrice      = NewError(ErrInvalidInput, "price per unit must be greater than zero")
	ErrInvalidUnitType   = NewError(ErrInvalidInput, "unit type must be piece or weight")
	ErrInvalidImageType  = NewError(ErrInvalidInput, "invalid image format")
	ErrImageUploadFailed = NewError(ErrUnexpected, "image upload failed")
)

// UnitType is how a product is priced: per piece or per kilogram.
type UnitType string

const (
	UnitTypePiece  UnitType = "piece"
	UnitTypeWeight UnitType = "weight"
)

func (t UnitType) IsValid() bool {
	return t == UnitTypePiece || t == UnitTypeWeight
}

// AvailableUnits lists the order units a product of this type can be sold in.
func (t UnitType) AvailableUnits() []Unit {
	if t == UnitTypeWeight {
		return []Unit{UnitGram, UnitKg}
	}
	return []Unit{UnitPiece}
}

// Allows reports whether u is a legal order unit for this product type.
func (t UnitType) Allows(u Unit) bool {
	for _, available := range t.AvailableUnits() {
		if available == u {
			return true
		}
	}
	return false
}

type (
	CreateCategoryRequest struct {
		Name     string                `form:"name" json:"name" validate:"required"`
		ImageURL string                `form:"image" json:"image" validate:"omitempty,url"`
		Image    *multipart.FileHeader `form:"-" json:"-"`
	}

	UpdateCategoryRequest struct {
		Name     string                `form:"name" json:"name" validate:"omitempty"`
		ImageURL string                `form:"image" json:"image" validate:"omitempty,url"`
		Image    *multipart.FileHeader `form:"-" json:"-"`
	}

	CategoryResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Image     string    `json:"image"`
		CreatedAt time.Time `json:"created_at"`
	}

	CreateProductRequest struct {
		Name         string                `form:"name" json:"name" validate:"required"`
		Description  string                `form:"description" json:"description" validate:"required"`
		CategoryID   string                `form:"category" json:"category" validate:"required,uuid"`
		UnitType     UnitType              `form:"unit_type" json:"unit_type" validate:"omitempty,oneof=piece weight"`
		PricePerUnit float64               `form:"price_per_unit" json:"price_per_unit" validate:"required,gt=0"`
		InStock      *bool                 `form:"in_stock" json:"in_stock"`
		ImageURL     string                `form:"image" json:"image" validate:"omitempty,url"`
		Image        *multipart.FileHeader `form:"-" json:"-"`
	}

	UpdateProductRequest struct {
		Name         string                `form:"name" json:"name" validate:"omitempty"`
		Description  string                `form:"description" json:"description" validate:"omitempty"`
		CategoryID   string                `form:"category" json:"category" validate:"omitempty,uuid"`
		UnitType     UnitType              `form:"unit_type" json:"unit_type" validate:"omitempty,oneof=piece weight"`
		PricePerUnit float64               `form:"price_per_unit" json:"price_per_unit" validate:"omitempty,gt=0"`
		InStock      *bool                 `form:"in_stock" json:"in_stock"`
		ImageURL     string                `form:"image" json:"image" validate:"omitempty,url"`
		Image        *multipart.FileHeader `form:"-" json:"-"`
	}

	ProductResponse struct {
		ID             string            `json:"id"`
		Name           string            `json:"name"`
		Description    string            `json:"description"`
		Image          string            `json:"image"`
		Category       *CategoryResponse `json:"category,omitempty"`
		CategoryID     string            `json:"category_id"`
		UnitType       UnitType          `json:"unit_type"`
		PricePerUnit   float64           `json:"price_per_unit"`
		AvailableUnits []Unit            `json:"available_units"`
		DisplayPrice   string            `json:"display_price"`
		InStock        bool              `json:"in_stock"`
		CreatedAt      time.Time         `json:"created_at"`
	}
)

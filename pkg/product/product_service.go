package product

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"Pickup-Order-System/internal/utils/storage"
	"Pickup-Order-System/pkg/category"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const imageFolder = "products"

type (
	ProductService interface {
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, categoryID string) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, id string) error
	}

	productService struct {
		productRepository  ProductRepository
		categoryRepository category.CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, categoryRepository category.CategoryRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository:  productRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

// DisplayPrice renders the price the way the storefront shows it, e.g. ₹120/kg.
func DisplayPrice(unitType domain.UnitType, price decimal.Decimal) string {
	if unitType == domain.UnitTypeWeight {
		return fmt.Sprintf("₹%s/kg", price.String())
	}
	return fmt.Sprintf("₹%s/piece", price.String())
}

func ToProductResponse(product *entities.Product) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:             product.ID.String(),
		Name:           product.Name,
		Description:    product.Description,
		Image:          product.Image,
		CategoryID:     product.CategoryID.String(),
		UnitType:       product.UnitType,
		PricePerUnit:   product.PricePerUnit.InexactFloat64(),
		AvailableUnits: product.UnitType.AvailableUnits(),
		DisplayPrice:   DisplayPrice(product.UnitType, product.PricePerUnit),
		InStock:        product.InStock,
		CreatedAt:      product.CreatedAt,
	}
	if product.Category != nil {
		categoryRes := category.ToCategoryResponse(product.Category)
		res.Category = &categoryRes
	}
	return res
}

func (s *productService) checkCategory(ctx context.Context, id string) (*entities.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	cat, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, domain.Unexpected(err)
	}
	return cat, nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	unitType := req.UnitType
	if unitType == "" {
		unitType = domain.UnitTypePiece
	}
	if !unitType.IsValid() {
		return domain.ProductResponse{}, domain.ErrInvalidUnitType
	}

	price := decimal.NewFromFloat(req.PricePerUnit).Round(2)
	if !price.IsPositive() {
		return domain.ProductResponse{}, domain.ErrInvalidPrice
	}

	cat, err := s.checkCategory(ctx, req.CategoryID)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	image := strings.TrimSpace(req.ImageURL)
	if req.Image != nil {
		link, err := storage.UploadImage(s.s3, req.Image, imageFolder)
		if err != nil {
			return domain.ProductResponse{}, err
		}
		image = link
	}
	if image == "" {
		return domain.ProductResponse{}, domain.ErrImageRequired
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &entities.Product{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		Image:        image,
		CategoryID:   cat.ID,
		UnitType:     unitType,
		PricePerUnit: price,
		InStock:      inStock,
	}
	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, domain.Unexpected(err)
	}

	product.Category = cat
	return ToProductResponse(product), nil
}

func (s *productService) GetProducts(ctx context.Context, categoryID string) ([]domain.ProductResponse, error) {
	if categoryID != "" {
		if _, err := uuid.Parse(categoryID); err != nil {
			return nil, domain.ErrParseUUID
		}
	}

	products, err := s.productRepository.GetProducts(ctx, categoryID)
	if err != nil {
		return nil, domain.Unexpected(err)
	}

	res := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		res = append(res, ToProductResponse(product))
	}
	return res, nil
}

func (s *productService) getProduct(ctx context.Context, id string) (*entities.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrProductNotFound
	}
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Unexpected(err)
	}
	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.getProduct(ctx, id)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	return ToProductResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (domain.ProductResponse, error) {
	product, err := s.getProduct(ctx, id)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	if req.CategoryID != "" {
		cat, err := s.checkCategory(ctx, req.CategoryID)
		if err != nil {
			return domain.ProductResponse{}, err
		}
		product.CategoryID = cat.ID
		product.Category = cat
	}
	if req.UnitType != "" {
		if !req.UnitType.IsValid() {
			return domain.ProductResponse{}, domain.ErrInvalidUnitType
		}
		product.UnitType = req.UnitType
	}
	if req.PricePerUnit != 0 {
		price := decimal.NewFromFloat(req.PricePerUnit).Round(2)
		if !price.IsPositive() {
			return domain.ProductResponse{}, domain.ErrInvalidPrice
		}
		product.PricePerUnit = price
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		product.Name = name
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		product.Description = description
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	oldImage := product.Image
	if req.Image != nil {
		link, err := storage.UploadImage(s.s3, req.Image, imageFolder)
		if err != nil {
			return domain.ProductResponse{}, err
		}
		product.Image = link
	} else if url := strings.TrimSpace(req.ImageURL); url != "" {
		product.Image = url
	}

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, domain.Unexpected(err)
	}
	if oldImage != product.Image {
		storage.RemoveImage(s.s3, oldImage)
	}
	return ToProductResponse(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.getProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return domain.Unexpected(err)
	}
	storage.RemoveImage(s.s3, product.Image)
	return nil
}

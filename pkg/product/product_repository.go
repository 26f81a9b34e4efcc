package product

import (
	"Pickup-Order-System/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProducts(ctx context.Context, categoryID string) ([]*entities.Product, error)
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProductsByIDs(ctx context.Context, ids []string) ([]*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProducts(ctx context.Context, categoryID string) ([]*entities.Product, error) {
	var products []*entities.Product
	query := r.db.WithContext(ctx).Preload("Category")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsByIDs returns the products that exist; missing ids are simply absent.
func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]*entities.Product, error) {
	var products []*entities.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Omit("Category").Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

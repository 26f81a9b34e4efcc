package product

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const cdn = "https://cdn.test/bucket/"

type fakeS3 struct {
	deleted []string
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (f *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, cdn) {
		return ""
	}
	return strings.TrimPrefix(link, cdn)
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return cdn + objectKey
}

type fakeCategoryRepository struct {
	categories map[string]*entities.Category
}

func (f *fakeCategoryRepository) CreateCategory(_ context.Context, c *entities.Category) error {
	f.categories[c.ID.String()] = c
	return nil
}

func (f *fakeCategoryRepository) GetCategories(_ context.Context) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepository) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepository) UpdateCategory(_ context.Context, c *entities.Category) error {
	f.categories[c.ID.String()] = c
	return nil
}

func (f *fakeCategoryRepository) DeleteCategory(_ context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

type fakeProductRepository struct {
	products map[string]*entities.Product
}

func (f *fakeProductRepository) CreateProduct(_ context.Context, p *entities.Product) error {
	copied := *p
	f.products[p.ID.String()] = &copied
	return nil
}

func (f *fakeProductRepository) GetProducts(_ context.Context, categoryID string) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range f.products {
		if categoryID == "" || p.CategoryID.String() == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepository) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepository) UpdateProduct(_ context.Context, p *entities.Product) error {
	copied := *p
	f.products[p.ID.String()] = &copied
	return nil
}

func (f *fakeProductRepository) DeleteProduct(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.products, id)
	return nil
}

type fixture struct {
	svc        ProductService
	s3         *fakeS3
	products   *fakeProductRepository
	categoryID string
}

func newFixture() fixture {
	cat := &entities.Category{ID: uuid.New(), Name: "Vegetables", Image: cdn + "categories/veg.png"}
	categories := &fakeCategoryRepository{categories: map[string]*entities.Category{cat.ID.String(): cat}}
	products := &fakeProductRepository{products: map[string]*entities.Product{}}
	s3 := &fakeS3{}
	return fixture{
		svc:        NewProductService(products, categories, s3),
		s3:         s3,
		products:   products,
		categoryID: cat.ID.String(),
	}
}

func TestCreateProductDefaults(t *testing.T) {
	f := newFixture()

	res, err := f.svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		Name:         "Paneer",
		Description:  "Fresh paneer",
		CategoryID:   f.categoryID,
		PricePerUnit: 20,
		ImageURL:     "https://images.test/paneer.png",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.UnitTypePiece, res.UnitType)
	assert.True(t, res.InStock)
	assert.Equal(t, []domain.Unit{domain.UnitPiece}, res.AvailableUnits)
	assert.Equal(t, "₹20/piece", res.DisplayPrice)
	require.NotNil(t, res.Category)
	assert.Equal(t, "Vegetables", res.Category.Name)
}

func TestCreateProductWeight(t *testing.T) {
	f := newFixture()
	inStock := false

	res, err := f.svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		Name:         "Tomato",
		Description:  "Farm tomatoes",
		CategoryID:   f.categoryID,
		UnitType:     domain.UnitTypeWeight,
		PricePerUnit: 40.5,
		InStock:      &inStock,
		ImageURL:     "https://images.test/tomato.png",
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.Unit{domain.UnitGram, domain.UnitKg}, res.AvailableUnits)
	assert.Equal(t, "₹40.5/kg", res.DisplayPrice)
	assert.False(t, res.InStock)
}

func TestCreateProductErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateProduct(ctx, domain.CreateProductRequest{
		Name: "Paneer", Description: "x", CategoryID: uuid.NewString(), PricePerUnit: 20, ImageURL: "https://images.test/p.png",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = f.svc.CreateProduct(ctx, domain.CreateProductRequest{
		Name: "Paneer", Description: "x", CategoryID: f.categoryID, PricePerUnit: 20,
	})
	assert.ErrorIs(t, err, domain.ErrImageRequired)

	_, err = f.svc.CreateProduct(ctx, domain.CreateProductRequest{
		Name: "Paneer", Description: "x", CategoryID: f.categoryID, PricePerUnit: 0.001, ImageURL: "https://images.test/p.png",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	assert.Empty(t, f.products.products)
}

func TestUpdateProductReplacesImage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	id := uuid.New()
	f.products.products[id.String()] = &entities.Product{
		ID:           id,
		Name:         "Milk",
		Image:        cdn + "products/milk.png",
		CategoryID:   uuid.MustParse(f.categoryID),
		UnitType:     domain.UnitTypePiece,
		PricePerUnit: decimal.NewFromInt(30),
		InStock:      true,
	}

	res, err := f.svc.UpdateProduct(ctx, id.String(), domain.UpdateProductRequest{
		PricePerUnit: 32,
		ImageURL:     "https://images.test/milk-new.png",
	})
	require.NoError(t, err)

	assert.Equal(t, 32.0, res.PricePerUnit)
	assert.Equal(t, "Milk", res.Name)
	assert.Equal(t, "https://images.test/milk-new.png", res.Image)
	assert.Equal(t, []string{"products/milk.png"}, f.s3.deleted)

	_, err = f.svc.UpdateProduct(ctx, uuid.NewString(), domain.UpdateProductRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductsFilterAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.svc.CreateProduct(ctx, domain.CreateProductRequest{
		Name: "Paneer", Description: "x", CategoryID: f.categoryID, PricePerUnit: 20, ImageURL: "https://images.test/p.png",
	})
	require.NoError(t, err)

	list, err := f.svc.GetProducts(ctx, f.categoryID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.svc.GetProducts(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.svc.GetProducts(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.svc.DeleteProduct(ctx, res.ID))
	assert.ErrorIs(t, f.svc.DeleteProduct(ctx, res.ID), domain.ErrProductNotFound)
}

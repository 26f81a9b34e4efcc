package category

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const cdn = "https://cdn.test/bucket/"

type fakeS3 struct {
	uploads []string
	deleted []string
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName
	f.uploads = append(f.uploads, key)
	return key, nil
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
	copied := *c
	f.categories[c.ID.String()] = &copied
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
	copied := *c
	return &copied, nil
}

func (f *fakeCategoryRepository) UpdateCategory(_ context.Context, c *entities.Category) error {
	copied := *c
	f.categories[c.ID.String()] = &copied
	return nil
}

func (f *fakeCategoryRepository) DeleteCategory(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.categories, id)
	return nil
}

func newService() (CategoryService, *fakeCategoryRepository, *fakeS3) {
	repo := &fakeCategoryRepository{categories: map[string]*entities.Category{}}
	s3 := &fakeS3{}
	return NewCategoryService(repo, s3), repo, s3
}

func TestCreateCategory(t *testing.T) {
	svc, repo, s3 := newService()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Dairy"})
	assert.ErrorIs(t, err, domain.ErrImageRequired)
	assert.Empty(t, repo.categories)

	res, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{
		Name:  "  Dairy ",
		Image: &multipart.FileHeader{Filename: "dairy.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dairy", res.Name)
	require.Len(t, s3.uploads, 1)
	assert.True(t, strings.HasPrefix(s3.uploads[0], "categories/"))
	assert.Equal(t, cdn+s3.uploads[0], res.Image)

	res, err = svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Bakery", ImageURL: "https://img.example/bread.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/bread.jpg", res.Image)
	assert.Len(t, repo.categories, 2)
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	svc, repo, s3 := newService()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{
		Name:  "Dairy",
		Image: &multipart.FileHeader{Filename: "dairy.png"},
	})
	require.NoError(t, err)
	oldKey := s3.uploads[0]

	updated, err := svc.UpdateCategory(ctx, created.ID, domain.UpdateCategoryRequest{ImageURL: "https://img.example/milk.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Dairy", updated.Name)
	assert.Equal(t, "https://img.example/milk.jpg", updated.Image)
	assert.Equal(t, []string{oldKey}, s3.deleted)

	_, err = svc.UpdateCategory(ctx, uuid.NewString(), domain.UpdateCategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	_, err = svc.GetCategoryByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))
	assert.Empty(t, repo.categories)
	assert.Len(t, s3.deleted, 1)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, created.ID), domain.ErrCategoryNotFound)
}

package category

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"Pickup-Order-System/internal/utils/storage"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const imageFolder = "categories"

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id string) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewCategoryService(categoryRepository CategoryRepository, s3 storage.AwsS3) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func ToCategoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Image:     category.Image,
		CreatedAt: category.CreatedAt,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	image := strings.TrimSpace(req.ImageURL)
	if req.Image != nil {
		link, err := storage.UploadImage(s.s3, req.Image, imageFolder)
		if err != nil {
			return domain.CategoryResponse{}, err
		}
		image = link
	}
	if image == "" {
		return domain.CategoryResponse{}, domain.ErrImageRequired
	}

	category := &entities.Category{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(req.Name),
		Image: image,
	}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, domain.Unexpected(err)
	}
	return ToCategoryResponse(category), nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, domain.Unexpected(err)
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, ToCategoryResponse(category))
	}
	return res, nil
}

func (s *categoryService) getCategory(ctx context.Context, id string) (*entities.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, domain.Unexpected(err)
	}
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (domain.CategoryResponse, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	return ToCategoryResponse(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		category.Name = name
	}

	oldImage := category.Image
	if req.Image != nil {
		link, err := storage.UploadImage(s.s3, req.Image, imageFolder)
		if err != nil {
			return domain.CategoryResponse{}, err
		}
		category.Image = link
	} else if url := strings.TrimSpace(req.ImageURL); url != "" {
		category.Image = url
	}

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, domain.Unexpected(err)
	}
	if oldImage != category.Image {
		storage.RemoveImage(s.s3, oldImage)
	}
	return ToCategoryResponse(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return domain.Unexpected(err)
	}
	storage.RemoveImage(s.s3, category.Image)
	return nil
}

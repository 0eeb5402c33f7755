package apiclient

import (
	"context"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"
)

// CategoryClient - клиент ресурса categories с привязанным кешем экрана
type CategoryClient struct {
	resourceClient[entity.Category]
	cache *cache.ViewCache[entity.Category]
}

func NewCategoryClient(transport *Transport, viewCache *cache.ViewCache[entity.Category]) *CategoryClient {
	return &CategoryClient{
		resourceClient: newResourceClient[entity.Category](transport, "/categories", "categories"),
		cache:          viewCache,
	}
}

// List загружает категории и перезаполняет кеш экрана
func (c *CategoryClient) List(ctx context.Context, query ...QueryParam) ([]entity.Category, error) {
	categories, err := c.resourceClient.List(ctx, query...)
	if err != nil {
		if IsUnrecognizedShape(err) {
			c.cache.Replace(nil)
		}
		return nil, err
	}
	c.cache.Replace(categories)
	return categories, nil
}

// Create создает категорию; имя обязательно, проверяется до похода в сеть
func (c *CategoryClient) Create(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	category, err := c.createItem(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*category)
	return category, nil
}

func (c *CategoryClient) Update(ctx context.Context, id string, req *entity.UpdateCategoryRequest) (*entity.Category, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	category, err := c.updateItem(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*category)
	return category, nil
}

func (c *CategoryClient) Delete(ctx context.Context, id string) error {
	err := c.resourceClient.Delete(ctx, id)
	if err == nil || IsNotFound(err) {
		c.cache.Remove(id)
	}
	return err
}

// Cached возвращает текущее содержимое кеша экрана
func (c *CategoryClient) Cached() []entity.Category {
	return c.cache.Items()
}

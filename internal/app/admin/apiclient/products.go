package apiclient

import (
	"context"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"
)

// ProductClient - клиент ресурса products с привязанным кешем экрана
type ProductClient struct {
	resourceClient[entity.Product]
	cache *cache.ViewCache[entity.Product]
}

// NewProductClient создает клиент товаров.
// viewCache принадлежит экрану каталога и перезаполняется каждым List
func NewProductClient(transport *Transport, viewCache *cache.ViewCache[entity.Product]) *ProductClient {
	return &ProductClient{
		resourceClient: newResourceClient[entity.Product](transport, "/products", "products"),
		cache:          viewCache,
	}
}

// List загружает товары и перезаполняет кеш экрана
func (c *ProductClient) List(ctx context.Context, query ...QueryParam) ([]entity.Product, error) {
	products, err := c.resourceClient.List(ctx, query...)
	if err != nil {
		if IsUnrecognizedShape(err) {
			// Сервер доступен, но контракт нарушен: экран показывает
			// пустой список и отдельное состояние ошибки формата
			c.cache.Replace(nil)
		}
		return nil, err
	}
	c.cache.Replace(products)
	return products, nil
}

// Create создает товар. Инвариант каталога: товар без digitalContent
// не может продаваться, поэтому isAvailable принудительно сбрасывается
// еще до отправки - backend этого не гарантирует
func (c *ProductClient) Create(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if len(req.DigitalContent) == 0 {
		req.IsAvailable = false
	}

	product, err := c.createItem(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*product)
	return product, nil
}

// Update отправляет только измененные поля.
// Тот же инвариант: пустой digitalContent сбрасывает isAvailable
func (c *ProductClient) Update(ctx context.Context, id string, req *entity.UpdateProductRequest) (*entity.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.DigitalContent != nil && len(*req.DigitalContent) == 0 {
		unavailable := false
		req.IsAvailable = &unavailable
	}

	product, err := c.updateItem(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*product)
	return product, nil
}

// Delete удаляет товар. KindNotFound пробрасывается вызывающему,
// но из кеша запись убирается в обоих случаях - товара больше нет
func (c *ProductClient) Delete(ctx context.Context, id string) error {
	err := c.resourceClient.Delete(ctx, id)
	if err == nil || IsNotFound(err) {
		c.cache.Remove(id)
	}
	return err
}

// Cached возвращает текущее содержимое кеша экрана
func (c *ProductClient) Cached() []entity.Product {
	return c.cache.Items()
}

package apiclient

import (
	"context"
	"net/http"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"
)

// UserClient - клиент ресурса users с привязанным кешем экрана
type UserClient struct {
	resourceClient[entity.User]
	cache *cache.ViewCache[entity.User]
}

func NewUserClient(transport *Transport, viewCache *cache.ViewCache[entity.User]) *UserClient {
	return &UserClient{
		resourceClient: newResourceClient[entity.User](transport, "/users", "users"),
		cache:          viewCache,
	}
}

// List загружает пользователей и перезаполняет кеш экрана
func (c *UserClient) List(ctx context.Context, query ...QueryParam) ([]entity.User, error) {
	users, err := c.resourceClient.List(ctx, query...)
	if err != nil {
		if IsUnrecognizedShape(err) {
			c.cache.Replace(nil)
		}
		return nil, err
	}
	c.cache.Replace(users)
	return users, nil
}

func (c *UserClient) Create(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := c.createItem(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*user)
	return user, nil
}

// Update меняет профиль и флаг isAccepted; telegramId неизменяем,
// поэтому его в update-запросе просто нет
func (c *UserClient) Update(ctx context.Context, id string, req *entity.UpdateUserRequest) (*entity.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := c.updateItem(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*user)
	return user, nil
}

func (c *UserClient) Delete(ctx context.Context, id string) error {
	err := c.resourceClient.Delete(ctx, id)
	if err == nil || IsNotFound(err) {
		c.cache.Remove(id)
	}
	return err
}

// SendMessage отправляет пользователю прямое сообщение через backend.
// Кеш не трогаем - у действия нет локального состояния
func (c *UserClient) SendMessage(ctx context.Context, id string, message string) error {
	req := &entity.SendMessageRequest{Message: message}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	_, err := c.transport.Send(ctx, http.MethodPost, c.basePath+"/"+id+"/send-message", req, nil)
	return err
}

// Cached возвращает текущее содержимое кеша экрана
func (c *UserClient) Cached() []entity.User {
	return c.cache.Items()
}

package apiclient

import (
	"context"

	"storeadmin/internal/app/admin/cache"
	"storeadmin/internal/app/admin/entity"
)

// NotificationClient - клиент ресурса notifications с привязанным кешем экрана
type NotificationClient struct {
	resourceClient[entity.Notification]
	cache *cache.ViewCache[entity.Notification]
}

func NewNotificationClient(transport *Transport, viewCache *cache.ViewCache[entity.Notification]) *NotificationClient {
	return &NotificationClient{
		resourceClient: newResourceClient[entity.Notification](transport, "/notifications", "notifications"),
		cache:          viewCache,
	}
}

// List загружает рассылки и перезаполняет кеш экрана
func (c *NotificationClient) List(ctx context.Context, query ...QueryParam) ([]entity.Notification, error) {
	notifications, err := c.resourceClient.List(ctx, query...)
	if err != nil {
		if IsUnrecognizedShape(err) {
			c.cache.Replace(nil)
		}
		return nil, err
	}
	c.cache.Replace(notifications)
	return notifications, nil
}

// Create создает рассылку. Инвариант аудитории: targetUserIds обязателен
// при audience == specific_users и не отправляется при audience == all
func (c *NotificationClient) Create(ctx context.Context, req *entity.CreateNotificationRequest) (*entity.Notification, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Audience == entity.AudienceSpecificUsers && len(req.TargetUserIDs) == 0 {
		return nil, newValidationError("targetUserIds is required for specific_users audience")
	}
	if req.Audience == entity.AudienceAll {
		req.TargetUserIDs = nil
	}

	notification, err := c.createItem(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*notification)
	return notification, nil
}

func (c *NotificationClient) Update(ctx context.Context, id string, req *entity.UpdateNotificationRequest) (*entity.Notification, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Audience != nil && *req.Audience == entity.AudienceSpecificUsers &&
		(req.TargetUserIDs == nil || len(*req.TargetUserIDs) == 0) {
		return nil, newValidationError("targetUserIds is required for specific_users audience")
	}

	notification, err := c.updateItem(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(*notification)
	return notification, nil
}

func (c *NotificationClient) Delete(ctx context.Context, id string) error {
	err := c.resourceClient.Delete(ctx, id)
	if err == nil || IsNotFound(err) {
		c.cache.Remove(id)
	}
	return err
}

// Cached возвращает текущее содержимое кеша экрана
func (c *NotificationClient) Cached() []entity.Notification {
	return c.cache.Items()
}

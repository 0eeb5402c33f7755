package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storeadmin/pkg/metrics"

	"github.com/go-playground/validator/v10"
)

// Общий validator для всех клиентов; draft-валидация выполняется
// до похода в сеть и при провале запрос не отправляется вовсе
var validate = validator.New()

// resourceClient - общая часть клиентов всех видов ресурсов.
// Знает свой путь и ключ keyed-конверта, остальное делают Transport
// и нормализатор. Типизированные клиенты (OrderClient и другие)
// встраивают его и добавляют ресурсо-специфичные действия
type resourceClient[T any] struct {
	transport *Transport
	basePath  string // Например "/orders"
	listKey   string // Ключ keyed-конверта, например "orders"
}

func newResourceClient[T any](transport *Transport, basePath, listKey string) resourceClient[T] {
	return resourceClient[T]{
		transport: transport,
		basePath:  basePath,
		listKey:   listKey,
	}
}

// List получает и нормализует список сущностей.
// Распознанный, но пустой список - это успех с пустым срезом;
// нераспознанный конверт - ошибка KindUnrecognizedShape
func (c *resourceClient[T]) List(ctx context.Context, query ...QueryParam) ([]T, error) {
	raw, err := c.transport.Send(ctx, http.MethodGet, c.basePath, nil, query)
	if err != nil {
		return nil, err
	}

	result := NormalizeList(raw, c.listKey)
	metrics.RecordEnvelopeShape(serviceName, c.listKey, string(result.Shape))
	if result.Shape == ShapeUnrecognized {
		return nil, newShapeError(c.listKey)
	}

	return decodeEntityList[T](result.Items, c.listKey)
}

// Get получает сущность по id; 404 приходит от транспорта как KindNotFound
func (c *resourceClient[T]) Get(ctx context.Context, id string) (*T, error) {
	raw, err := c.transport.Send(ctx, http.MethodGet, c.basePath+"/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntityItem[T](raw, c.listKey)
}

// Delete удаляет сущность. Повторное удаление уже удаленного id backend
// отдает как 404 - вызывающий получает KindNotFound и сам решает,
// считать ли это успехом
func (c *resourceClient[T]) Delete(ctx context.Context, id string) error {
	_, err := c.transport.Send(ctx, http.MethodDelete, c.basePath+"/"+id, nil, nil)
	return err
}

// createItem отправляет POST и декодирует возвращенную сущность
func (c *resourceClient[T]) createItem(ctx context.Context, body any) (*T, error) {
	return c.doItem(ctx, http.MethodPost, c.basePath, body)
}

// updateItem отправляет PUT только с измененными полями
func (c *resourceClient[T]) updateItem(ctx context.Context, id string, body any) (*T, error) {
	return c.doItem(ctx, http.MethodPut, c.basePath+"/"+id, body)
}

// doItem - общий путь для запросов, отвечающих одной сущностью
func (c *resourceClient[T]) doItem(ctx context.Context, method, path string, body any) (*T, error) {
	raw, err := c.transport.Send(ctx, method, path, body, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntityItem[T](raw, c.listKey)
}

// decodeEntityList разбирает нормализованный массив в канонические сущности,
// приводя _id к id для каждого элемента
func decodeEntityList[T any](items json.RawMessage, resource string) ([]T, error) {
	var rawItems []json.RawMessage
	if err := json.Unmarshal(items, &rawItems); err != nil {
		return nil, newShapeError(resource)
	}

	entities := make([]T, 0, len(rawItems))
	for _, rawItem := range rawItems {
		var entity T
		if err := json.Unmarshal(canonicalizeID(rawItem), &entity); err != nil {
			return nil, &Error{
				Kind:    KindUnrecognizedShape,
				Message: fmt.Sprintf("malformed %s entity: %v", resource, err),
			}
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// decodeEntityItem разбирает ответ с одной сущностью
func decodeEntityItem[T any](raw json.RawMessage, resource string) (*T, error) {
	result := NormalizeItem(raw)
	if result.Shape == ShapeUnrecognized {
		return nil, newShapeError(resource)
	}

	var entity T
	if err := json.Unmarshal(canonicalizeID(result.Item), &entity); err != nil {
		return nil, &Error{
			Kind:    KindUnrecognizedShape,
			Message: fmt.Sprintf("malformed %s entity: %v", resource, err),
		}
	}
	return &entity, nil
}

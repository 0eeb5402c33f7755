package apiclient

import (
	"bytes"
	"encoding/json"
)

// Нормализатор конвертов. Storefront backend развивался неравномерно и
// разные эндпоинты (и разные деплои) заворачивают полезную нагрузку
// по-разному: голый массив, {data: [...]}, {orders: [...], total},
// {success, data}. Нормализатор приводит все к одному виду и никогда
// не паникует на незнакомой форме - вместо этого возвращает ShapeUnrecognized

// Shape - распознанная форма конверта ответа
type Shape string

const (
	ShapeArray        Shape = "array"         // Голый JSON массив
	ShapeDataWrapper  Shape = "data_wrapper"  // {data: [...]} или {success, data}
	ShapeKeyedWrapper Shape = "keyed_wrapper" // {orders: [...], total: N} и подобные
	ShapeItem         Shape = "item"          // Эндпоинт вернул саму сущность
	ShapeUnrecognized Shape = "unrecognized"  // Ни одна форма не подошла
)

// ListResult - итог нормализации списочного ответа.
// Items валиден только когда Shape != ShapeUnrecognized
type ListResult struct {
	Shape Shape
	Items json.RawMessage // JSON массив элементов
}

// ItemResult - итог нормализации ответа с одной сущностью
type ItemResult struct {
	Shape Shape
	Item  json.RawMessage // JSON объект сущности
}

// NormalizeList извлекает список из любого известного конверта.
// Порядок проверки фиксирован, побеждает первое совпадение:
//  1. сам ответ - массив
//  2. объект с полем data-массивом
//  3. объект с полем resourceKey-массивом (например "orders")
//  4. иначе ShapeUnrecognized, исходный ответ не трогаем
func NormalizeList(raw json.RawMessage, resourceKey string) ListResult {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ListResult{Shape: ShapeUnrecognized}
	}

	if trimmed[0] == '[' {
		return ListResult{Shape: ShapeArray, Items: trimmed}
	}

	if trimmed[0] != '{' {
		return ListResult{Shape: ShapeUnrecognized}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return ListResult{Shape: ShapeUnrecognized}
	}

	if items, ok := arrayField(fields, "data"); ok {
		return ListResult{Shape: ShapeDataWrapper, Items: items}
	}

	if resourceKey != "" {
		if items, ok := arrayField(fields, resourceKey); ok {
			return ListResult{Shape: ShapeKeyedWrapper, Items: items}
		}
	}

	return ListResult{Shape: ShapeUnrecognized}
}

// NormalizeItem извлекает одну сущность из ответа.
// Та же логика, что у NormalizeList, минус случай голого массива.
// Если объект сам похож на сущность (есть id или _id), он и есть ответ -
// create/update эндпоинты обычно просто отдают сущность обратно,
// даже если рядом лежит поле data
func NormalizeItem(raw json.RawMessage) ItemResult {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ItemResult{Shape: ShapeUnrecognized}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return ItemResult{Shape: ShapeUnrecognized}
	}

	if _, hasID := fields["id"]; hasID {
		return ItemResult{Shape: ShapeItem, Item: trimmed}
	}
	if _, hasID := fields["_id"]; hasID {
		return ItemResult{Shape: ShapeItem, Item: trimmed}
	}

	if item, ok := objectField(fields, "data"); ok {
		return ItemResult{Shape: ShapeDataWrapper, Item: item}
	}

	return ItemResult{Shape: ShapeUnrecognized}
}

// arrayField достает из объекта поле-массив по имени
func arrayField(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	value, ok := fields[key]
	if !ok {
		return nil, false
	}
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	return trimmed, true
}

// objectField достает из объекта поле-объект по имени
func objectField(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	value, ok := fields[key]
	if !ok {
		return nil, false
	}
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	return trimmed, true
}

// canonicalizeID переименовывает mongo-подобный _id в id, если каноничного
// id в объекте нет. Разные деплои backend именуют идентификатор по-разному,
// дальше этой границы разница не проходит
func canonicalizeID(raw json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw
	}

	underscored, hasUnderscored := fields["_id"]
	if _, hasPlain := fields["id"]; hasPlain || !hasUnderscored {
		return raw
	}

	fields["id"] = underscored
	delete(fields, "_id")

	remarshaled, err := json.Marshal(fields)
	if err != nil {
		return raw
	}
	return remarshaled
}

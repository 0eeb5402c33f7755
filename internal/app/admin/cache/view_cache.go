package cache

import "sync"

// ViewCache - упорядоченная in-memory копия сущностей одного экрана.
// Единственный источник, который читает слой представления. Живет только
// в памяти процесса, между экранами не разделяется: каждый экран держит
// свой экземпляр и перезаполняет его при каждом list()
//
// Оригинальная админ-панель крутится в однопоточном event loop; здесь
// запросы выполняются на горутинах, поэтому доступ закрыт RWMutex
type ViewCache[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
}

// NewViewCache создает кеш с функцией извлечения id сущности
func NewViewCache[T any](idOf func(T) string) *ViewCache[T] {
	return &ViewCache[T]{idOf: idOf}
}

// Replace полностью перезаполняет кеш результатом list()
func (c *ViewCache[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Items возвращает копию содержимого в порядке сервера
func (c *ViewCache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get находит сущность по id
func (c *ViewCache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Patch заменяет сущность с данным id результатом apply.
// Возвращает false, если сущности в кеше нет
func (c *ViewCache[T]) Patch(id string, apply func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items[i] = apply(item)
			return true
		}
	}
	return false
}

// Upsert заменяет сущность с тем же id или добавляет новую в конец
func (c *ViewCache[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.idOf(item)
	for i, existing := range c.items {
		if c.idOf(existing) == id {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove удаляет сущность по id; отсутствие записи не ошибка
func (c *ViewCache[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Len возвращает текущее количество сущностей
func (c *ViewCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

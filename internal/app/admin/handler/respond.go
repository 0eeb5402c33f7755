package handler

import (
	"errors"
	"net/http"

	"storeadmin/internal/app/admin/apiclient"
	"storeadmin/internal/app/admin/entity"

	"github.com/gin-gonic/gin"
)

// respondError переводит типизированную ошибку клиента storefront API
// в HTTP ответ админ-панели. Только этот слой решает, как ошибка выглядит
// для UI - ниже по стеку kind не меняется
func respondError(c *gin.Context, err error) {
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "internal",
			Message: err.Error(),
		})
		return
	}

	switch apiErr.Kind {
	case apiclient.KindValidation:
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "validation",
			Message: apiErr.Message,
		})
	case apiclient.KindNotFound:
		c.JSON(http.StatusNotFound, entity.ErrorResponse{
			Error:   "not_found",
			Message: apiErr.Message,
		})
	case apiclient.KindTimeout:
		c.JSON(http.StatusGatewayTimeout, entity.ErrorResponse{
			Error:   "upstream_timeout",
			Message: apiErr.Message,
		})
	case apiclient.KindNetwork:
		c.JSON(http.StatusBadGateway, entity.ErrorResponse{
			Error:   "upstream_unreachable",
			Message: apiErr.Message,
		})
	case apiclient.KindUnrecognizedShape:
		// Сервер доступен, но контракт нарушен - UI различает это
		// состояние и сетевую ошибку по коду
		c.JSON(http.StatusBadGateway, entity.ErrorResponse{
			Error:   "upstream_bad_format",
			Message: apiErr.Message,
		})
	default:
		c.JSON(http.StatusBadGateway, entity.ErrorResponse{
			Error:   "upstream_error",
			Message: apiErr.Message,
		})
	}
}

// listQuery пробрасывает известные параметры фильтрации к storefront API
// в фиксированном порядке; пустые значения транспорт отбросит сам
func listQuery(c *gin.Context) []apiclient.QueryParam {
	return []apiclient.QueryParam{
		{Key: "page", Value: c.Query("page")},
		{Key: "limit", Value: c.Query("limit")},
		{Key: "status", Value: c.Query("status")},
		{Key: "search", Value: c.Query("search")},
		{Key: "categoryId", Value: c.Query("categoryId")},
		{Key: "userId", Value: c.Query("userId")},
	}
}

// respondList отдает список в едином конверте админ-панели
func respondList[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, entity.ListResponse[T]{
		Items: items,
		Total: len(items),
	})
}

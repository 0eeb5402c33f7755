package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storeadmin/pkg/logger"
	"storeadmin/pkg/metrics"

	"github.com/google/uuid"
)

const serviceName = "storeadmin"

// QueryParam - один параметр query string. Срез параметров сохраняет
// порядок вставки, это делает построенные URL воспроизводимыми в тестах
type QueryParam struct {
	Key   string
	Value string
}

// Transport выполняет HTTP запросы к storefront API
// Не знает ничего о сущностях: принимает путь и тело, возвращает сырой JSON.
// Повторов нет - retry это решение вызывающего кода
type Transport struct {
	baseURL    string
	httpClient *http.Client
}

// NewTransport создает транспорт с явным таймаутом.
// baseURL приходит из конфигурации, хвостовой слэш обрезается
func NewTransport(baseURL string, timeoutSec int) *Transport {
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// Send выполняет один запрос и возвращает декодированное JSON тело.
// Любой статус вне [200,299] превращается в *Error; тело ошибки
// разбирается по best-effort, чувствительные данные не логируются
func (t *Transport) Send(ctx context.Context, method, path string, body any, query []QueryParam) (json.RawMessage, error) {
	requestURL := t.baseURL + path
	if qs := encodeQuery(query); qs != "" {
		requestURL += "?" + qs
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("failed to encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	timer := metrics.NewUpstreamTimer(serviceName, method, resourceFromPath(path))

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			timer.Observe(metrics.UpstreamTimeout)
			return nil, &Error{Kind: KindTimeout, Message: fmt.Sprintf("request to %s timed out", path)}
		}
		timer.Observe(metrics.UpstreamNetworkError)
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("request to %s failed: %v", path, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		timer.Observe(metrics.UpstreamNetworkError)
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("failed to read response from %s: %v", path, err)}
	}

	logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("storefront API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		timer.Observe(metrics.UpstreamHTTPError)
		kind := KindHTTP
		if resp.StatusCode == http.StatusNotFound {
			kind = KindNotFound
		}
		return nil, &Error{
			Kind:    kind,
			Status:  resp.StatusCode,
			Message: errorMessage(respBody, resp.StatusCode),
		}
	}

	timer.Observe(metrics.UpstreamOK)
	return respBody, nil
}

// encodeQuery собирает query string, пропуская параметры с пустым значением.
// Порядок параметров - порядок вставки
func encodeQuery(query []QueryParam) string {
	var sb strings.Builder
	for _, p := range query {
		if p.Key == "" || p.Value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// errorMessage достает человекочитаемое сообщение из тела ошибки.
// Backend отдает то {message}, то {error}; если тело не JSON или
// полей нет - генерик "HTTP error <status>"
func errorMessage(body []byte, status int) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return fmt.Sprintf("HTTP error %d", status)
}

// isTimeout отличает таймаут от прочих сетевых сбоев
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// resourceFromPath берет первый сегмент пути для метрик
// ("/orders/42/status" -> "orders")
func resourceFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}

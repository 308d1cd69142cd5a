package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

// HTTPMetrics HTTP 요청 메트릭 수집기
type HTTPMetrics struct {
	serviceName    string
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	statusCategory *prometheus.CounterVec
}

// NewHTTPMetrics 서비스별 HTTP 메트릭 수집기를 생성하고 레지스트리에 등록합니다
func NewHTTPMetrics(serviceName string, reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		serviceName: serviceName,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category", "method", "path"},
		),
	}

	reg.MustRegister(m.requests, m.duration, m.statusCategory)
	return m
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return ""
	}
}

// Middleware 요청 처리 후 메트릭을 기록하는 Echo 미들웨어
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// 에러 핸들러가 아직 응답을 쓰지 않았으면 에러 기준 상태 코드를 사용
			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = apperrors.ToHTTPError(err).Code
			}

			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			m.requests.WithLabelValues(m.serviceName, method, path, statusStr).Inc()
			if category := statusCategory(status); category != "" {
				m.statusCategory.WithLabelValues(m.serviceName, category, method, path).Inc()
			}
			m.duration.WithLabelValues(m.serviceName, method, path, statusStr).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler 메트릭 노출용 HTTP 핸들러
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

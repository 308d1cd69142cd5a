// File: pkg/logger/echo_logger.go
package logger

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
	"go.uber.org/zap"
)

// NewEchoRequestLogger는 Echo 서버를 위한 Request Logger를 생성합니다.
// zap을 사용하여 HTTP 요청과 응답을 로깅합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	config := middleware.RequestLoggerConfig{
		// 헬스체크와 메트릭 수집 경로는 제외
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health" || c.Request().URL.Path == "/metrics"
		},
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURI:          true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,
		LogHeaders:      []string{"Content-Type", "Authorization"},
		LogQueryParams:  []string{"page", "limit", "active"},

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.response_size", v.ResponseSize),
			}

			if len(v.Headers) > 0 {
				headers := make(map[string]string, len(v.Headers))
				for k, values := range v.Headers {
					if len(values) == 0 {
						continue
					}
					if k == "Authorization" {
						headers[k] = MaskAuthorization(values[0])
						continue
					}
					headers[k] = values[0]
				}
				fields = append(fields, zap.Any("request.headers", headers))
			}

			if len(v.QueryParams) > 0 {
				fields = append(fields, zap.Any("request.query_params", v.QueryParams))
			}

			switch {
			case v.Status >= http.StatusInternalServerError:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Error("Server error", fields...)
			case v.Status >= http.StatusBadRequest:
				if v.Error != nil {
					fields = append(fields, zap.String("error", v.Error.Error()))
				}
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	}

	return middleware.RequestLoggerWithConfig(config)
}

// MaskAuthorization은 인증 헤더에서 스킴과 앞 몇 글자만 남깁니다.
// "ApiKey sk_live_abcd..." 형식의 키는 접두어 이후를 모두 가립니다.
func MaskAuthorization(value string) string {
	scheme, credential, found := strings.Cut(value, " ")
	if !found {
		return "[MASKED]"
	}
	if len(credential) <= 12 {
		return scheme + " [MASKED]"
	}
	return scheme + " " + credential[:12] + "..."
}

// WithEchoLogger Echo에 zap 로거와 JSON 에러 핸들러를 설정합니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.Logger = NewEchoZapLogger(logger)
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
}

// NewHTTPErrorHandler는 pkg/errors 규칙에 따라 에러 응답을 작성하는 핸들러를 생성합니다.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := apperrors.NewErrorResponse(err, c.Request().URL.Path)

		apperrors.LogError(logger, apperrors.FromHTTPError(err), "HTTP error",
			zap.Int("status", resp.Status),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("ip", c.RealIP()),
		)

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.Status)
		} else {
			err = c.JSON(resp.Status, resp)
		}
		if err != nil {
			logger.Error("Failed to send error response", zap.Error(err))
		}
	}
}

// EchoZapLogger는 echo.Logger 인터페이스를 구현한 zap 로거 래퍼입니다.
type EchoZapLogger struct {
	Logger *zap.Logger
	level  log.Lvl
	prefix string
}

// NewEchoZapLogger는 Echo의 Logger 인터페이스를 구현한 zap 로거 래퍼를 생성합니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	return &EchoZapLogger{Logger: logger, level: log.INFO}
}

func (l *EchoZapLogger) Output() io.Writer {
	return &zapWriter{logger: l.Logger}
}

func (l *EchoZapLogger) SetOutput(w io.Writer) {
	// zap에서는 무시됨
}

func (l *EchoZapLogger) Level() log.Lvl {
	return l.level
}

func (l *EchoZapLogger) SetLevel(v log.Lvl) {
	l.level = v
}

func (l *EchoZapLogger) SetHeader(h string) {
	// zap에서는 무시됨
}

func (l *EchoZapLogger) Prefix() string {
	return l.prefix
}

func (l *EchoZapLogger) SetPrefix(p string) {
	l.prefix = p
}

func (l *EchoZapLogger) sugar() *zap.SugaredLogger {
	return l.Logger.Sugar()
}

func (l *EchoZapLogger) Print(i ...interface{}) {
	l.sugar().Info(i...)
}

func (l *EchoZapLogger) Printf(format string, args ...interface{}) {
	l.sugar().Infof(format, args...)
}

func (l *EchoZapLogger) Printj(j log.JSON) {
	l.Logger.Info("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Debug(i ...interface{}) {
	l.sugar().Debug(i...)
}

func (l *EchoZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar().Debugf(format, args...)
}

func (l *EchoZapLogger) Debugj(j log.JSON) {
	l.Logger.Debug("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Info(i ...interface{}) {
	l.sugar().Info(i...)
}

func (l *EchoZapLogger) Infof(format string, args ...interface{}) {
	l.sugar().Infof(format, args...)
}

func (l *EchoZapLogger) Infoj(j log.JSON) {
	l.Logger.Info("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Warn(i ...interface{}) {
	l.sugar().Warn(i...)
}

func (l *EchoZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar().Warnf(format, args...)
}

func (l *EchoZapLogger) Warnj(j log.JSON) {
	l.Logger.Warn("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Error(i ...interface{}) {
	l.sugar().Error(i...)
}

func (l *EchoZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar().Errorf(format, args...)
}

func (l *EchoZapLogger) Errorj(j log.JSON) {
	l.Logger.Error("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Fatal(i ...interface{}) {
	l.sugar().Fatal(i...)
}

func (l *EchoZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar().Fatalf(format, args...)
}

func (l *EchoZapLogger) Fatalj(j log.JSON) {
	l.Logger.Fatal("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Panic(i ...interface{}) {
	l.sugar().Panic(i...)
}

func (l *EchoZapLogger) Panicf(format string, args ...interface{}) {
	l.sugar().Panicf(format, args...)
}

func (l *EchoZapLogger) Panicj(j log.JSON) {
	l.Logger.Panic("json_message", zap.Any("json", j))
}

// zapWriter는 io.Writer 인터페이스를 구현한 zap 로거 래퍼입니다.
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.logger.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

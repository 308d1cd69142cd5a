package errors

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// 내부 에러 메시지는 외부에 노출하지 않습니다
const internalErrorMessage = "An unexpected error occurred"

// FieldErrorsKey는 필드 검증 에러를 details에 담을 때 사용하는 키입니다
const FieldErrorsKey = "fieldErrors"

// ErrorResponse는 HTTP 에러 응답 본문입니다
type ErrorResponse struct {
	Timestamp   time.Time              `json:"timestamp"`
	Status      int                    `json:"status"`
	Error       string                 `json:"error"`
	Message     string                 `json:"message"`
	Path        string                 `json:"path"`
	Details     map[string]interface{} `json:"details,omitempty"`
	FieldErrors map[string]string      `json:"fieldErrors,omitempty"`
}

// ToHTTPStatus는 에러 코드를 HTTP 상태 코드로 변환합니다
func ToHTTPStatus(code string) int {
	httpStatus, _ := GetCodeMapping(code)
	return httpStatus
}

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		httpStatus := ToHTTPStatus(appErr.Code())
		if appErr.Code() == ErrInternal {
			return echo.NewHTTPError(httpStatus, internalErrorMessage)
		}
		return echo.NewHTTPError(httpStatus, appErr.Message())
	}

	// Echo 에러인 경우 그대로 반환
	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	// 기본 에러는 500으로 처리
	return echo.NewHTTPError(http.StatusInternalServerError, internalErrorMessage)
}

// FromHTTPError는 Echo HTTP 에러를 내부 에러로 변환합니다
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	// 이미 AppError인 경우 그대로 반환
	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	// Echo 에러 처리
	if echoErr, ok := err.(*echo.HTTPError); ok {
		code := httpStatusToCode(echoErr.Code)
		var msg string
		if m, ok := echoErr.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(echoErr.Code)
		}
		return NewAppError(code, msg, echoErr.Internal)
	}

	// 기본 에러는 Internal로 처리
	return NewAppError(CodeOf(err), internalErrorMessage, err)
}

// NewErrorResponse는 에러를 API 에러 응답으로 변환합니다
func NewErrorResponse(err error, path string) ErrorResponse {
	appErr := new(AppError)
	if !As(FromHTTPError(err), &appErr) {
		appErr = NewAppError(ErrInternal, internalErrorMessage, err)
	}

	resp := ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    ToHTTPStatus(appErr.Code()),
		Error:     appErr.Code(),
		Message:   appErr.Message(),
		Path:      path,
	}

	// 5xx 응답은 메시지를 감춥니다
	if resp.Status >= http.StatusInternalServerError && appErr.Code() != ErrTimeout {
		resp.Message = internalErrorMessage
		return resp
	}

	for k, v := range appErr.Details() {
		if k == FieldErrorsKey {
			if fields, ok := v.(map[string]string); ok {
				resp.FieldErrors = fields
			}
			continue
		}
		if resp.Details == nil {
			resp.Details = make(map[string]interface{})
		}
		resp.Details[k] = v
	}

	return resp
}

// httpStatusToCode는 HTTP 상태 코드를 내부 에러 코드로 변환합니다
func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return ErrMalformedRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	default:
		return ErrInternal
	}
}

package errors

// 공통 에러 코드 정의
// 코드 문자열은 API 에러 응답의 "error" 필드로 그대로 노출됩니다
const (
	// 일반적인 에러 코드
	ErrInternal         = "INTERNAL_SERVER_ERROR"
	ErrNotFound         = "NOT_FOUND"
	ErrInvalidArgument  = "VALIDATION_ERROR"
	ErrMalformedRequest = "MALFORMED_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrConflict         = "CONFLICT"
	ErrTimeout          = "TIMEOUT"

	// 상태 머신 위반
	ErrInvalidStateTransition = "INVALID_STATE_TRANSITION"
)

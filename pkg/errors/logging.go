package errors

import (
	"go.uber.org/zap"
)

// LogError는 에러를 구조화된 로그로 기록합니다
// 클라이언트 에러(4xx)는 Warn, 나머지는 Error 레벨로 기록합니다
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil {
		return
	}

	// 기본 필드
	allFields := make([]zap.Field, 0, len(fields)+2)
	allFields = append(allFields, zap.Error(err))

	code := CodeOf(err)
	allFields = append(allFields, zap.String("error_code", code))

	// 추가 필드 병합
	allFields = append(allFields, fields...)

	if IsClientError(code) {
		logger.Warn(msg, allFields...)
		return
	}
	logger.Error(msg, allFields...)
}

package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToGRPCStatus는 에러를 gRPC status 에러로 변환합니다
func ToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}

	// 이미 gRPC status인 경우 그대로 반환
	if _, ok := status.FromError(err); ok {
		return err
	}

	var appErr *AppError
	if As(err, &appErr) {
		_, grpcCode := GetCodeMapping(appErr.Code())
		if appErr.Code() == ErrInternal {
			return status.Error(codes.Internal, internalErrorMessage)
		}
		return status.Error(codes.Code(grpcCode), appErr.Message())
	}

	_, grpcCode := GetCodeMapping(CodeOf(err))
	return status.Error(codes.Code(grpcCode), internalErrorMessage)
}

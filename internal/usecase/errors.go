package usecase

import (
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

// wrapInternal turns storage failures into coded internal errors and passes coded domain errors through unchanged
func wrapInternal(err error, msg string) error {
	var coded apperrors.Error
	if apperrors.As(err, &coded) {
		return err
	}
	return apperrors.Wrap(err, msg)
}

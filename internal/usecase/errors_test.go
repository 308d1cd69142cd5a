package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

func TestWrapInternal(t *testing.T) {
	t.Run("storage failure becomes internal error", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := wrapInternal(cause, "failed to load merchant")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrInternal, appErr.Code())
		assert.Equal(t, "failed to load merchant", appErr.Message())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("coded error passes through", func(t *testing.T) {
		notFound := domainErrors.NewMerchantNotFoundError(7)
		assert.Same(t, notFound, wrapInternal(notFound, "failed to load merchant"))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, wrapInternal(nil, "failed to load merchant"))
	})
}

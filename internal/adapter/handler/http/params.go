package http

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

// pathID parses a positive numeric path parameter
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := cast.ToInt64E(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewAppError(apperrors.ErrMalformedRequest,
			fmt.Sprintf("Invalid value for parameter '%s': expected a positive integer", name), err)
	}
	return id, nil
}

// paginationParams reads page and limit; missing or unparsable values fall back to defaults
func paginationParams(c echo.Context) entity.PaginationParams {
	params := entity.PaginationParams{
		Page:  cast.ToInt(c.QueryParam("page")),
		Limit: cast.ToInt(c.QueryParam("limit")),
	}
	params.Normalize()
	return params
}

func boolQuery(c echo.Context, name string) bool {
	return cast.ToBool(c.QueryParam(name))
}

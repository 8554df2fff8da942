package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

func idParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Validationf("invalid id %q", raw)
	}
	return id, nil
}

func queryID(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Validationf("invalid %s %q", name, raw)
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Validationf("invalid %s %q", name, raw)
	}
	return v, nil
}

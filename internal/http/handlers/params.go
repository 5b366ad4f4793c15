package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
)

// Report and category responses are expensive aggregates; clients may
// cache them for fifteen minutes.
const cacheControlValue = "public, max-age=900"

func setCacheHeader(c *gin.Context) {
	c.Header("Cache-Control", cacheControlValue)
}

func filterParam(c *gin.Context) (model.Filter, error) {
	filter := model.ParseFilter(c.Query("filter"))
	if filter == model.FilterInvalid {
		return filter, fmt.Errorf("invalid filter value %q", c.Query("filter"))
	}
	return filter, nil
}

func includeEmptyParam(c *gin.Context) (bool, error) {
	raw := c.Query("includeEmpty")
	if raw == "" {
		return true, nil
	}
	include, err := strconv.ParseBool(raw)
	if err != nil {
		return true, fmt.Errorf("invalid includeEmpty value %q", raw)
	}
	return include, nil
}

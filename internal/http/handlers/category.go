package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/http/response"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/services"
)

type CategoryHandler struct {
	catalogs services.CatalogService
}

func NewCategoryHandler(catalogs services.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogs: catalogs}
}

func (h *CategoryHandler) respond(c *gin.Context, build func(filter model.Filter, includeEmpty bool) (model.CategoryList, error)) {
	filter, err := filterParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filter", err)
		return
	}
	includeEmpty, err := includeEmptyParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_parameter", err)
		return
	}

	categories, err := build(filter, includeEmpty)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "categories_unavailable", err)
		return
	}
	setCacheHeader(c)
	response.RespondOK(c, categories)
}

// GET /categories/state
func (h *CategoryHandler) State(c *gin.Context) {
	h.respond(c, func(filter model.Filter, includeEmpty bool) (model.CategoryList, error) {
		return h.catalogs.GetStateCategories(c.Request.Context(), filter, includeEmpty)
	})
}

// GET /categories/municipality
func (h *CategoryHandler) Municipality(c *gin.Context) {
	h.respond(c, func(filter model.Filter, includeEmpty bool) (model.CategoryList, error) {
		return h.catalogs.GetMunicipalityCategories(c.Request.Context(), filter, includeEmpty)
	})
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/http/response"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/services"
)

type CatalogHandler struct {
	catalogs services.CatalogService
}

func NewCatalogHandler(catalogs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

// GET /organizationcatalogs
func (h *CatalogHandler) GetOrganizationCatalogs(c *gin.Context) {
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

	list, err := h.catalogs.GetOrganizationCatalogs(c.Request.Context(), filter, includeEmpty)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "catalogs_unavailable", err)
		return
	}
	response.RespondOK(c, list)
}

// GET /organizationcatalogs/:id
func (h *CatalogHandler) GetOrganizationCatalog(c *gin.Context) {
	filter, err := filterParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filter", err)
		return
	}

	id := c.Param("id")
	catalog, err := h.catalogs.GetOrganizationCatalog(c.Request.Context(), id, filter)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "catalog_unavailable", err)
		return
	}
	if catalog == nil {
		response.RespondError(c, http.StatusNotFound, "catalog_not_found",
			fmt.Errorf("no catalog for organization %s", id))
		return
	}
	response.RespondOK(c, catalog)
}

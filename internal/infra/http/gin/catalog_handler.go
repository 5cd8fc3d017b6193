package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	catalogapp "autorent/internal/app/handlers/catalogview"
	"autorent/internal/app/queries"
)

type CatalogHandler struct {
	Queries queries.Bus
}

func (h CatalogHandler) List(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	result, err := queries.Ask[catalogapp.ListCatalogQuery, *catalogapp.ListCatalogResult](c.Request.Context(), h.Queries, catalogapp.ListCatalogQuery{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ CatalogHTTP = CatalogHandler{}

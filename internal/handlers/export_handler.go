package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/export"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type ExportHandler struct {
	masters store.Repository[models.Master]
	clients store.Repository[models.Client]
}

func NewExportHandler(
	masters store.Repository[models.Master],
	clients store.Repository[models.Client],
) *ExportHandler {
	return &ExportHandler{
		masters: masters,
		clients: clients,
	}
}

func (h *ExportHandler) Masters(c *gin.Context) {
	masters, _, err := h.masters.List(c.Request.Context(), store.Page{})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	attachCSV(c, "masters.csv")
	if err := export.Masters(c.Writer, masters); err != nil {
		_ = c.Error(err)
	}
}

func (h *ExportHandler) Clients(c *gin.Context) {
	clients, _, err := h.clients.List(c.Request.Context(), store.Page{})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	attachCSV(c, "clients.csv")
	if err := export.Clients(c.Writer, clients); err != nil {
		_ = c.Error(err)
	}
}

func attachCSV(c *gin.Context, filename string) {
	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(200)
}

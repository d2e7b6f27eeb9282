package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/httpresp"
	ucmaster "github.com/BruksfildServices01/remonte/internal/usecase/master"
)

// maxPhotoSize bounds the multipart photo read into memory.
const maxPhotoSize = 10 << 20

type MasterHandler struct {
	statistics  *ucmaster.Statistics
	pro         *ucmaster.MatchProfessionals
	uploadPhoto *ucmaster.UploadPhoto
}

func NewMasterHandler(
	statistics *ucmaster.Statistics,
	pro *ucmaster.MatchProfessionals,
	uploadPhoto *ucmaster.UploadPhoto,
) *MasterHandler {
	return &MasterHandler{
		statistics:  statistics,
		pro:         pro,
		uploadPhoto: uploadPhoto,
	}
}

func (h *MasterHandler) Statistics(c *gin.Context) {
	stats, err := h.statistics.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *MasterHandler) Pro(c *gin.Context) {
	sets, err := h.pro.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, sets)
}

// ======================================================
// PHOTO UPLOAD
// ======================================================

func (h *MasterHandler) UploadImage(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize)

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.Respond(c, httperr.InvalidField("image", "no file was submitted"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	m, err := h.uploadPhoto.Execute(c.Request.Context(), id, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, m)
}

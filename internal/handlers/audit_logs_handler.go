package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/httpresp"
	"github.com/BruksfildServices01/remonte/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if page.Limit == 0 {
		page.Limit = defaultAuditLimit
	}
	if page.Limit > maxAuditLimit {
		page.Limit = maxAuditLimit
	}

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			httperr.Respond(c, httperr.InvalidField("from", "use YYYY-MM-DD"))
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			httperr.Respond(c, httperr.InvalidField("to", "use YYYY-MM-DD"))
			return
		}
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	// --------------------------------------------------
	// Listing
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&logs).Error; err != nil {

		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, logs, total)
}

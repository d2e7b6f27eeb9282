package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/remonte/internal/domain/order"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/httpresp"
	ucorder "github.com/BruksfildServices01/remonte/internal/usecase/order"
)

type OrderHandler struct {
	list        *ucorder.ListOrders
	changePrice *ucorder.ChangePrice
}

func NewOrderHandler(
	list *ucorder.ListOrders,
	changePrice *ucorder.ChangePrice,
) *OrderHandler {
	return &OrderHandler{
		list:        list,
		changePrice: changePrice,
	}
}

// ======================================================
// LIST ORDERS (FILTERED)
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	orders, total, err := h.list.Execute(c.Request.Context(), domain.Params{
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Number:   c.Query("number"),
		Client:   c.Query("client"),
		Master:   c.Query("master"),
		Search:   c.Query("search"),
	}, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, orders, total)
}

// ======================================================
// CHANGE PRICE
// ======================================================

type changePriceResponse struct {
	Message string  `json:"message"`
	Price   float64 `json:"price"`
}

func (h *OrderHandler) ChangePrice(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid_request", "request body must be a JSON object")
		return
	}

	o, err := h.changePrice.Execute(c.Request.Context(), id, payload)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, changePriceResponse{
		Message: "order price changed",
		Price:   o.Price,
	})
}

package order

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/BruksfildServices01/remonte/internal/audit"
	domain "github.com/BruksfildServices01/remonte/internal/domain/order"
	"github.com/BruksfildServices01/remonte/internal/domain/rules"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/models"
)

const priceField = "price"

type ChangePrice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangePrice(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangePrice {
	return &ChangePrice{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the price of an order. The payload may carry only "price";
// any other key is a scope violation and nothing is written.
func (uc *ChangePrice) Execute(
	ctx context.Context,
	orderID uint,
	payload map[string]json.RawMessage,
) (*models.Order, error) {

	price, err := parsePricePayload(payload)
	if err != nil {
		return nil, err
	}

	var previous float64
	o, err := uc.repo.UpdatePrice(ctx, orderID, func(current *models.Order) error {
		if err := rules.OrderPrice(price); err != nil {
			return err
		}
		previous = current.Price
		current.Price = rules.RoundPrice(price)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "order_price_changed",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]float64{
			"from": previous,
			"to":   o.Price,
		},
	})

	return o, nil
}

func parsePricePayload(payload map[string]json.RawMessage) (float64, error) {
	var extra []string
	for k := range payload {
		if k != priceField {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return 0, httperr.ErrScope([]string{priceField}, extra)
	}

	raw, ok := payload[priceField]
	if !ok || string(raw) == "null" {
		return 0, httperr.InvalidField(priceField, "this field is required")
	}

	return decodeDecimal(priceField, raw)
}

// decodeDecimal accepts a JSON number or a numeric string.
func decodeDecimal(field string, raw json.RawMessage) (float64, error) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, nil
		}
	}

	return 0, httperr.InvalidField(field, "a valid number is required")
}

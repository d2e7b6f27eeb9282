package order

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/remonte/internal/audit"
	"github.com/BruksfildServices01/remonte/internal/db/dbtest"
	domain "github.com/BruksfildServices01/remonte/internal/domain/order"
	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/infra/repository"
	"github.com/BruksfildServices01/remonte/internal/models"
)

func payload(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var p map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("bad payload %s: %v", body, err)
	}
	return p
}

func seedOrder(t *testing.T) (*ChangePrice, *audit.Dispatcher, models.Order, *repository.OrderGormRepository) {
	t.Helper()

	db := dbtest.Open(t)
	fx := dbtest.Fixture{DB: db}
	spec := fx.Speciality(t, "Электрик")
	client := fx.Client(t, "Анна", "anna@mail.ru")
	master := fx.Master(t, "Иван", spec, 5)
	o := fx.Order(t, 1, client, master, 100)

	repo := repository.NewOrderGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())
	t.Cleanup(dispatcher.Close)

	return NewChangePrice(repo, dispatcher), dispatcher, o, repo
}

func TestChangePrice_Updates(t *testing.T) {
	uc, _, o, _ := seedOrder(t)

	got, err := uc.Execute(context.Background(), o.ID, payload(t, `{"price": 250.5}`))
	if err != nil {
		t.Fatalf("change price: %v", err)
	}
	if got.Price != 250.5 {
		t.Fatalf("expected 250.5, got %v", got.Price)
	}
}

func TestChangePrice_AcceptsNumericString(t *testing.T) {
	uc, _, o, _ := seedOrder(t)

	got, err := uc.Execute(context.Background(), o.ID, payload(t, `{"price": "75.25"}`))
	if err != nil {
		t.Fatalf("change price: %v", err)
	}
	if got.Price != 75.25 {
		t.Fatalf("expected 75.25, got %v", got.Price)
	}
}

func TestChangePrice_NegativeLeavesOrderUnchanged(t *testing.T) {
	uc, _, o, repo := seedOrder(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, o.ID, payload(t, `{"price": -5}`))
	var fe httperr.FieldError
	if !errors.As(err, &fe) || fe.Field != "price" {
		t.Fatalf("expected price FieldError, got %v", err)
	}

	stored, err := repo.Get(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Price != 100 {
		t.Fatalf("price must stay 100, got %v", stored.Price)
	}
}

func TestChangePrice_RejectsExtraFields(t *testing.T) {
	uc, _, o, repo := seedOrder(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, o.ID, payload(t, `{"price": 10, "number": 99, "client": 5}`))
	var se httperr.ScopeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ScopeError, got %v", err)
	}
	if len(se.Fields) != 2 || se.Fields[0] != "client" || se.Fields[1] != "number" {
		t.Fatalf("unexpected offending fields %v", se.Fields)
	}

	stored, _ := repo.Get(ctx, o.ID)
	if stored.Price != 100 || stored.Number != 1 {
		t.Fatalf("order must be unchanged, got %+v", stored)
	}
}

func TestChangePrice_MissingOrInvalidPrice(t *testing.T) {
	uc, _, o, _ := seedOrder(t)
	ctx := context.Background()

	for _, body := range []string{`{}`, `{"price": null}`, `{"price": "cheap"}`, `{"price": true}`} {
		_, err := uc.Execute(ctx, o.ID, payload(t, body))
		var fe httperr.FieldError
		if !errors.As(err, &fe) || fe.Field != "price" {
			t.Fatalf("%s: expected price FieldError, got %v", body, err)
		}
	}
}

func TestChangePrice_UnknownOrder(t *testing.T) {
	uc, _, _, _ := seedOrder(t)

	_, err := uc.Execute(context.Background(), 999, payload(t, `{"price": 1}`))
	var nf httperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestChangePrice_WritesAuditTrail(t *testing.T) {
	db := dbtest.Open(t)
	fx := dbtest.Fixture{DB: db}
	spec := fx.Speciality(t, "Маляр")
	o := fx.Order(t, 3, fx.Client(t, "Анна", ""), fx.Master(t, "Иван", spec, 4), 20)

	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())
	uc := NewChangePrice(repository.NewOrderGormRepository(db), dispatcher)

	if _, err := uc.Execute(context.Background(), o.ID, payload(t, `{"price": 30}`)); err != nil {
		t.Fatalf("change price: %v", err)
	}
	dispatcher.Close()

	var logs []models.AuditLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("read audit: %v", err)
	}
	if len(logs) != 1 || logs[0].Action != "order_price_changed" {
		t.Fatalf("unexpected audit rows %+v", logs)
	}
	if logs[0].Metadata != `{"from":20,"to":30}` {
		t.Fatalf("unexpected metadata %s", logs[0].Metadata)
	}
}

func TestListOrders_InvalidFilterIsFieldError(t *testing.T) {
	db := dbtest.Open(t)
	uc := NewListOrders(repository.NewOrderGormRepository(db))

	_, _, err := uc.Execute(context.Background(), domain.Params{MinPrice: "abc"}, store.Page{})
	var fes httperr.FieldErrors
	if !errors.As(err, &fes) || fes[0].Field != "min_price" {
		t.Fatalf("expected min_price FieldErrors, got %v", err)
	}
}

func TestListOrders_Filters(t *testing.T) {
	db := dbtest.Open(t)
	fx := dbtest.Fixture{DB: db}
	spec := fx.Speciality(t, "Плотник")
	c := fx.Client(t, "Анна", "")
	m := fx.Master(t, "Иван", spec, 3)
	fx.Order(t, 1, c, m, 50)
	fx.Order(t, 2, c, m, 150)
	fx.Order(t, 3, c, m, 300)

	uc := NewListOrders(repository.NewOrderGormRepository(db))
	got, total, err := uc.Execute(context.Background(), domain.Params{MinPrice: "50", MaxPrice: "300"}, store.Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].Number != 2 {
		t.Fatalf("expected only order 2, got %+v", got)
	}
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/remonte/internal/audit"
	"github.com/BruksfildServices01/remonte/internal/domain/rules"
	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/httpresp"
)

// Creator is the full payload of a resource, used by POST and PUT.
type Creator[M any] interface {
	Validate(p rules.Policy) error
	Model() M
	ApplyTo(m *M)
}

// Patcher is the partial payload of a resource. Only supplied fields are
// validated and applied.
type Patcher[M any] interface {
	Validate(p rules.Policy) error
	ApplyTo(m *M)
}

// Resource binds one entity to its repository and request schemas.
type Resource[M any] struct {
	Entity    string
	Repo      store.Repository[M]
	IDOf      func(m *M) uint
	NewCreate func() Creator[M]
	NewPatch  func() Patcher[M]

	// AfterCreate runs once the row is committed.
	AfterCreate func(m *M)
}

type ResourceHandler[M any] struct {
	res    Resource[M]
	policy rules.Policy
	audit  *audit.Dispatcher
}

func NewResourceHandler[M any](
	res Resource[M],
	policy rules.Policy,
	audit *audit.Dispatcher,
) *ResourceHandler[M] {
	return &ResourceHandler[M]{
		res:    res,
		policy: policy,
		audit:  audit,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ResourceHandler[M]) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, total, err := h.res.Repo.List(c.Request.Context(), page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items, total)
}

// ======================================================
// CREATE
// ======================================================

func (h *ResourceHandler[M]) Create(c *gin.Context) {
	req := h.res.NewCreate()
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}
	if err := req.Validate(h.policy); err != nil {
		httperr.Respond(c, err)
		return
	}

	m := req.Model()
	if err := h.res.Repo.Create(c.Request.Context(), &m); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.record("created", &m)
	if h.res.AfterCreate != nil {
		h.res.AfterCreate(&m)
	}

	httpresp.Created(c, m)
}

// ======================================================
// GET
// ======================================================

func (h *ResourceHandler[M]) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	m, err := h.res.Repo.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, m)
}

// ======================================================
// UPDATE (PUT)
// ======================================================

func (h *ResourceHandler[M]) Update(c *gin.Context) {
	h.modify(c, func() (Patcher[M], error) {
		req := h.res.NewCreate()
		if err := c.ShouldBindJSON(req); err != nil {
			return nil, httperr.FromBinding(err)
		}
		return req, nil
	})
}

// ======================================================
// PARTIAL UPDATE (PATCH)
// ======================================================

func (h *ResourceHandler[M]) Patch(c *gin.Context) {
	h.modify(c, func() (Patcher[M], error) {
		req := h.res.NewPatch()
		if err := c.ShouldBindJSON(req); err != nil {
			return nil, httperr.FromBinding(err)
		}
		return req, nil
	})
}

func (h *ResourceHandler[M]) modify(c *gin.Context, bind func() (Patcher[M], error)) {
	id, err := idParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	req, err := bind()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if err := req.Validate(h.policy); err != nil {
		httperr.Respond(c, err)
		return
	}

	m, err := h.res.Repo.Modify(c.Request.Context(), id, func(current *M) error {
		req.ApplyTo(current)
		return nil
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.record("updated", m)
	httpresp.OK(c, m)
}

// ======================================================
// DELETE
// ======================================================

func (h *ResourceHandler[M]) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.res.Repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   h.res.Entity + "_deleted",
		Entity:   h.res.Entity,
		EntityID: &id,
	})

	httpresp.NoContent(c)
}

func (h *ResourceHandler[M]) record(verb string, m *M) {
	id := h.res.IDOf(m)
	h.audit.Dispatch(audit.Event{
		Action:   h.res.Entity + "_" + verb,
		Entity:   h.res.Entity,
		EntityID: &id,
	})
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.InvalidField("id", "enter a valid id")
	}
	return uint(id), nil
}

// pageFromQuery reads optional limit/offset. Without limit every row is returned.
func pageFromQuery(c *gin.Context) (store.Page, error) {
	var (
		page store.Page
		errs httperr.FieldErrors
	)

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, httperr.FieldError{Field: "limit", Reason: "enter a non-negative whole number"})
		} else {
			page.Limit = n
		}
	}

	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, httperr.FieldError{Field: "offset", Reason: "enter a non-negative whole number"})
		} else {
			page.Offset = n
		}
	}

	if len(errs) > 0 {
		return store.Page{}, errs
	}
	return page, nil
}

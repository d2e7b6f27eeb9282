package dto

import (
	"github.com/BruksfildServices01/remonte/internal/domain/rules"
	"github.com/BruksfildServices01/remonte/internal/models"
)

// ======================================================
// MASTER
// ======================================================

type MasterRequest struct {
	FullName     string   `json:"full_name" binding:"required,max=200"`
	SpecialityID *uint    `json:"speciality" binding:"required"`
	Description  string   `json:"description" binding:"max=300"`
	Rating       *float64 `json:"rating" binding:"required"`
}

func (r *MasterRequest) Validate(rules.Policy) error {
	return rules.MasterRating(*r.Rating)
}

func (r *MasterRequest) Model() models.Master {
	m := models.Master{}
	r.ApplyTo(&m)
	return m
}

// ApplyTo leaves the photo alone; it only changes through the upload endpoint.
func (r *MasterRequest) ApplyTo(m *models.Master) {
	m.FullName = r.FullName
	m.SpecialityID = *r.SpecialityID
	m.Description = r.Description
	m.Rating = rules.RoundRating(*r.Rating)
}

type MasterPatch struct {
	FullName     *string  `json:"full_name" binding:"omitempty,min=1,max=200"`
	SpecialityID *uint    `json:"speciality"`
	Description  *string  `json:"description" binding:"omitempty,max=300"`
	Rating       *float64 `json:"rating"`
}

func (r *MasterPatch) Validate(rules.Policy) error {
	if r.Rating != nil {
		return rules.MasterRating(*r.Rating)
	}
	return nil
}

func (r *MasterPatch) ApplyTo(m *models.Master) {
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.SpecialityID != nil {
		m.SpecialityID = *r.SpecialityID
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Rating != nil {
		m.Rating = rules.RoundRating(*r.Rating)
	}
}

// ======================================================
// ORDER
// ======================================================

type OrderRequest struct {
	Number   *int     `json:"number" binding:"required"`
	ClientID *uint    `json:"client" binding:"required"`
	MasterID *uint    `json:"master" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
}

func (r *OrderRequest) Validate(rules.Policy) error {
	return rules.OrderPrice(*r.Price)
}

func (r *OrderRequest) Model() models.Order {
	o := models.Order{}
	r.ApplyTo(&o)
	return o
}

func (r *OrderRequest) ApplyTo(o *models.Order) {
	o.Number = *r.Number
	o.ClientID = *r.ClientID
	o.MasterID = *r.MasterID
	o.Price = rules.RoundPrice(*r.Price)
}

type OrderPatch struct {
	Number   *int     `json:"number"`
	ClientID *uint    `json:"client"`
	MasterID *uint    `json:"master"`
	Price    *float64 `json:"price"`
}

func (r *OrderPatch) Validate(rules.Policy) error {
	if r.Price != nil {
		return rules.OrderPrice(*r.Price)
	}
	return nil
}

func (r *OrderPatch) ApplyTo(o *models.Order) {
	if r.Number != nil {
		o.Number = *r.Number
	}
	if r.ClientID != nil {
		o.ClientID = *r.ClientID
	}
	if r.MasterID != nil {
		o.MasterID = *r.MasterID
	}
	if r.Price != nil {
		o.Price = rules.RoundPrice(*r.Price)
	}
}

// ======================================================
// REVIEW
// ======================================================

type ReviewRequest struct {
	ClientID *uint    `json:"client" binding:"required"`
	MasterID *uint    `json:"master" binding:"required"`
	Rating   *float64 `json:"rating" binding:"required,min=0,max=9.9"`
	Comment  string   `json:"comment"`
}

func (r *ReviewRequest) Validate(rules.Policy) error { return nil }

func (r *ReviewRequest) Model() models.Review {
	rv := models.Review{}
	r.ApplyTo(&rv)
	return rv
}

func (r *ReviewRequest) ApplyTo(rv *models.Review) {
	rv.ClientID = *r.ClientID
	rv.MasterID = *r.MasterID
	rv.Rating = rules.RoundRating(*r.Rating)
	rv.Comment = r.Comment
}

type ReviewPatch struct {
	ClientID *uint    `json:"client"`
	MasterID *uint    `json:"master"`
	Rating   *float64 `json:"rating" binding:"omitempty,min=0,max=9.9"`
	Comment  *string  `json:"comment"`
}

func (r *ReviewPatch) Validate(rules.Policy) error { return nil }

func (r *ReviewPatch) ApplyTo(rv *models.Review) {
	if r.ClientID != nil {
		rv.ClientID = *r.ClientID
	}
	if r.MasterID != nil {
		rv.MasterID = *r.MasterID
	}
	if r.Rating != nil {
		rv.Rating = rules.RoundRating(*r.Rating)
	}
	if r.Comment != nil {
		rv.Comment = *r.Comment
	}
}

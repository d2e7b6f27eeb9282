package dto

import (
	"github.com/BruksfildServices01/remonte/internal/domain/rules"
	"github.com/BruksfildServices01/remonte/internal/models"
)

// ======================================================
// SPECIALITY
// ======================================================

type SpecialityRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

func (r *SpecialityRequest) Validate(rules.Policy) error { return nil }

func (r *SpecialityRequest) Model() models.Speciality {
	return models.Speciality{Name: r.Name}
}

func (r *SpecialityRequest) ApplyTo(m *models.Speciality) {
	m.Name = r.Name
}

type SpecialityPatch struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=200"`
}

func (r *SpecialityPatch) Validate(rules.Policy) error { return nil }

func (r *SpecialityPatch) ApplyTo(m *models.Speciality) {
	if r.Name != nil {
		m.Name = *r.Name
	}
}

// ======================================================
// SERVICE
// ======================================================

type ServiceRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

func (r *ServiceRequest) Validate(rules.Policy) error { return nil }

func (r *ServiceRequest) Model() models.Service {
	return models.Service{Name: r.Name, Description: r.Description}
}

func (r *ServiceRequest) ApplyTo(m *models.Service) {
	m.Name = r.Name
	m.Description = r.Description
}

type ServicePatch struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

func (r *ServicePatch) Validate(rules.Policy) error { return nil }

func (r *ServicePatch) ApplyTo(m *models.Service) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
}

// ======================================================
// CLIENT
// ======================================================

type ClientRequest struct {
	FullName string `json:"full_name" binding:"required,max=200"`
	Email    string `json:"email" binding:"max=320"`
}

func (r *ClientRequest) Validate(p rules.Policy) error {
	return p.ClientEmail(r.Email)
}

func (r *ClientRequest) Model() models.Client {
	return models.Client{FullName: r.FullName, Email: r.Email}
}

func (r *ClientRequest) ApplyTo(m *models.Client) {
	m.FullName = r.FullName
	m.Email = r.Email
}

type ClientPatch struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,max=320"`
}

func (r *ClientPatch) Validate(p rules.Policy) error {
	if r.Email != nil {
		return p.ClientEmail(*r.Email)
	}
	return nil
}

func (r *ClientPatch) ApplyTo(m *models.Client) {
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
}

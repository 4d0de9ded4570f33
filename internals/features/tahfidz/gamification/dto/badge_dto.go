package dto

import (
	"strings"

	"gorm.io/datatypes"

	m "tahfidzku_backend/internals/features/tahfidz/gamification/model"
	helper "tahfidzku_backend/internals/helpers"
)

/* =========================================================
   CREATE BADGE (katalog, admin)
   ========================================================= */

type CreateBadgeRequest struct {
	// Slug opsional — auto-generate dari nama kalau kosong. Immutable.
	Slug        string         `json:"badges_slug" validate:"omitempty,min=1,max=100"`
	Name        string         `json:"badges_name" validate:"required,min=1,max=120"`
	Description string         `json:"badges_description" validate:"required"`
	Icon        string         `json:"badges_icon" validate:"required,max=60"`
	Category    string         `json:"badges_category" validate:"required,max=60"`
	Meta        datatypes.JSON `json:"badges_meta"`
}

func (r *CreateBadgeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Icon = strings.TrimSpace(r.Icon)
	r.Category = strings.TrimSpace(r.Category)

	r.Slug = strings.TrimSpace(r.Slug)
	if r.Slug == "" {
		r.Slug = helper.GenerateSlug(r.Name)
	} else {
		r.Slug = helper.GenerateSlug(r.Slug)
	}
}

func (r CreateBadgeRequest) ToModel() m.BadgeModel {
	return m.BadgeModel{
		BadgeSlug:        r.Slug,
		BadgeName:        r.Name,
		BadgeDescription: r.Description,
		BadgeIcon:        r.Icon,
		BadgeCategory:    r.Category,
		BadgeMeta:        r.Meta,
	}
}

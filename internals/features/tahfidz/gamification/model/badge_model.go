package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BadgeModel: entri katalog pencapaian. Slug immutable — identitas aturan.
// Dikelola admin, read-only bagi mesin pencapaian.
type BadgeModel struct {
	BadgeID          uuid.UUID      `gorm:"type:uuid;primaryKey;column:badges_id" json:"badges_id"`
	BadgeSlug        string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_badges_slug;column:badges_slug" json:"badges_slug"`
	BadgeName        string         `gorm:"type:varchar(120);not null;column:badges_name" json:"badges_name"`
	BadgeDescription string         `gorm:"type:text;not null;column:badges_description" json:"badges_description"`
	BadgeIcon        string         `gorm:"type:varchar(60);not null;column:badges_icon" json:"badges_icon"`
	BadgeCategory    string         `gorm:"type:varchar(60);not null;column:badges_category" json:"badges_category"`
	BadgeMeta        datatypes.JSON `gorm:"type:jsonb;column:badges_meta" json:"badges_meta,omitempty"`

	BadgeCreatedAt time.Time `gorm:"column:badges_created_at;autoCreateTime" json:"badges_created_at"`
}

func (BadgeModel) TableName() string {
	return "badges"
}

func (m *BadgeModel) BeforeCreate(tx *gorm.DB) error {
	if m.BadgeID == uuid.Nil {
		m.BadgeID = uuid.New()
	}
	return nil
}

// UserBadgeModel: join santri ↔ badge. Unik per (santri, badge):
// badge diberikan maksimal sekali, berapa kali pun mesin dijalankan ulang.
// Hanya dibuat oleh awarder, tidak pernah diubah/dihapus subsistem ini.
type UserBadgeModel struct {
	UserBadgeID      uuid.UUID `gorm:"type:uuid;primaryKey;column:user_badges_id" json:"user_badges_id"`
	UserBadgeUserID  uuid.UUID `gorm:"type:uuid;not null;column:user_badges_user_id;uniqueIndex:uq_user_badges_user_badge,priority:1" json:"user_badges_user_id"`
	UserBadgeBadgeID uuid.UUID `gorm:"type:uuid;not null;column:user_badges_badge_id;uniqueIndex:uq_user_badges_user_badge,priority:2" json:"user_badges_badge_id"`

	UserBadgeAwardedAt time.Time `gorm:"column:user_badges_awarded_at;autoCreateTime" json:"user_badges_awarded_at"`

	Badge *BadgeModel `gorm:"foreignKey:UserBadgeBadgeID;references:BadgeID" json:"badge,omitempty"`
}

func (UserBadgeModel) TableName() string {
	return "user_badges"
}

func (m *UserBadgeModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserBadgeID == uuid.Nil {
		m.UserBadgeID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string    `json:"name" gorm:"column:name;not null"`
	Slug       string    `json:"slug" gorm:"column:slug;uniqueIndex;not null"`
	NameCustom string    `json:"name_custom" gorm:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Tag) TableName() string { return "tags" }

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AfterFind 与 AfterCreate 负责填充展示字段 name_custom
func (t *Tag) AfterFind(tx *gorm.DB) error {
	t.NameCustom = DisplayName(t.Name)
	return nil
}

func (t *Tag) AfterCreate(tx *gorm.DB) error {
	t.NameCustom = DisplayName(t.Name)
	return nil
}

// DisplayName 返回标签的展示名，例如 "#kindness"
func DisplayName(name string) string {
	return "#" + name
}

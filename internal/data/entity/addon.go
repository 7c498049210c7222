package entity

import (
	"github.com/google/uuid"
)

// Addon belongs to one item. GroupID/GroupName mark a mutual-exclusion
// group ("choose one of many"); both empty for plain optional addons.
type Addon struct {
	Base
	Name        string    `db:"name"`
	Price       float64   `db:"price"`
	ItemID      uuid.UUID `db:"item_id"`
	IsMandatory bool      `db:"is_mandatory"`
	GroupID     string    `db:"group_id"`
	GroupName   string    `db:"group_name"`
	IsActive    bool      `db:"is_active"`
}

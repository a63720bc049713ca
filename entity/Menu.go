package entity

// MenuItem is a dish on the restaurant's menu. IDs are assigned by the
// catalog at creation time and never change.
type MenuItem struct {
	ID              int64   `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Rating          float64 `json:"rating"`
	Popular         bool    `json:"popular"`
	Premium         bool    `json:"premium"`
	Available       bool    `json:"available"`
	PreparationTime int     `json:"preparationTime"` // minutes
}

// MenuItemPatch carries the fields of a partial menu update; nil means
// "leave unchanged".
type MenuItemPatch struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Price           *float64 `json:"price"`
	Description     *string  `json:"description"`
	Rating          *float64 `json:"rating"`
	Popular         *bool    `json:"popular"`
	Premium         *bool    `json:"premium"`
	Available       *bool    `json:"available"`
	PreparationTime *int     `json:"preparationTime"`
}

// Apply merges the patch into item, field by field.
func (p *MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Rating != nil {
		item.Rating = *p.Rating
	}
	if p.Popular != nil {
		item.Popular = *p.Popular
	}
	if p.Premium != nil {
		item.Premium = *p.Premium
	}
	if p.Available != nil {
		item.Available = *p.Available
	}
	if p.PreparationTime != nil {
		item.PreparationTime = *p.PreparationTime
	}
}

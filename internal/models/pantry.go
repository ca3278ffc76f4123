package models

import (
	"strings"
	"time"
)

// Pantry is a named collection of ingredient records. At most one pantry
// carries IsCurrent=true at any time.
type Pantry struct {
	ID          uint         `gorm:"primarykey" json:"-"`
	Name        string       `gorm:"size:255;not null;uniqueIndex" json:"pantryName"`
	IsCurrent   bool         `gorm:"not null;default:false" json:"isCurrent"`
	Ingredients []Ingredient `gorm:"foreignKey:PantryID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

// Ingredient is a name/category pair owned by exactly one pantry.
// Identity within a pantry is the case-insensitive name.
type Ingredient struct {
	ID       uint   `gorm:"primarykey" json:"-"`
	PantryID uint   `gorm:"not null;index" json:"-"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Category string `gorm:"size:255" json:"category"`
}

// HasIngredient reports whether the pantry already holds an ingredient
// with the given name, compared case-insensitively.
func (p *Pantry) HasIngredient(name string) bool {
	return p.ingredientIndex(name) >= 0
}

// RemoveIngredient drops the named ingredient (case-insensitive) from the
// in-memory list and reports whether it was present. The change is not
// persisted until the pantry is saved.
func (p *Pantry) RemoveIngredient(name string) bool {
	i := p.ingredientIndex(name)
	if i < 0 {
		return false
	}
	p.Ingredients = append(p.Ingredients[:i], p.Ingredients[i+1:]...)
	return true
}

func (p *Pantry) ingredientIndex(name string) int {
	for i, ing := range p.Ingredients {
		if strings.EqualFold(ing.Name, name) {
			return i
		}
	}
	return -1
}

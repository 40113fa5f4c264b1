// Package entity defines the documents stored by the clinic records API and
// the validation rules applied to them.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the layout of calendar-date fields such as dob or expiredDate.
const DateLayout = "2006-01-02"

// Document is implemented by every stored entity through its embedded Base.
type Document interface {
	GetID() string
	SetID(id string)
	Touch(now time.Time)
}

// Base holds the fields shared by all documents.
type Base struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (b *Base) GetID() string   { return b.ID }
func (b *Base) SetID(id string) { b.ID = id }

// Touch sets UpdatedAt, and CreatedAt when it has not been set yet.
func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// NewID returns a new document identifier.
func NewID() string {
	return uuid.NewString()
}

// EnsureID assigns a new identifier to d when it has none.
func EnsureID(d Document) {
	if d.GetID() == "" {
		d.SetID(NewID())
	}
}

// IsValidID reports whether id has the identifier format.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}

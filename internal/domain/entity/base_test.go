package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnsureID(t *testing.T) {
	d := &Doctor{}
	EnsureID(d)
	assert.True(t, IsValidID(d.ID))

	n := &Nurse{Base: Base{ID: "keep-me"}}
	EnsureID(n)
	assert.Equal(t, "keep-me", n.ID)
}

func TestBase_Touch(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	later := created.Add(time.Hour)

	var b Base
	b.Touch(created)
	b.Touch(later)

	assert.Equal(t, created, b.CreatedAt)
	assert.Equal(t, later, b.UpdatedAt)
}

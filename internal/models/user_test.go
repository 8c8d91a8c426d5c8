package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"full name", User{FirstName: "Ana", LastName: "Krasniqi", Username: "ana", Email: "ana@x.co"}, "Ana Krasniqi"},
		{"first only", User{FirstName: "Ana", Email: "ana@x.co"}, "Ana"},
		{"last only", User{LastName: "Krasniqi", Email: "ana@x.co"}, "Krasniqi"},
		{"username fallback", User{Username: "ana", Email: "ana@x.co"}, "ana"},
		{"email local part", User{Email: "ana@x.co"}, "ana"},
		{"bare string", User{Email: "no-at-sign"}, "no-at-sign"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestCategoriesSkipsEmptySlots(t *testing.T) {
	u := User{Category1: "construction", Category3: "roads", Category5: "water"}
	assert.Equal(t, []string{"construction", "roads", "water"}, u.Categories())

	var empty User
	assert.Empty(t, empty.Categories())
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		count        int
		perPage      int
		wantNumber   int
		wantNumPages int
	}{
		{name: "empty parameter is first page", raw: "", count: 10, perPage: 3, wantNumber: 1, wantNumPages: 4},
		{name: "valid page", raw: "2", count: 10, perPage: 3, wantNumber: 2, wantNumPages: 4},
		{name: "last partial page", raw: "4", count: 10, perPage: 3, wantNumber: 4, wantNumPages: 4},
		{name: "non integer is first page", raw: "abc", count: 10, perPage: 3, wantNumber: 1, wantNumPages: 4},
		{name: "float string is first page", raw: "2.0", count: 10, perPage: 3, wantNumber: 1, wantNumPages: 4},
		{name: "out of range clamps to last", raw: "9999", count: 10, perPage: 3, wantNumber: 4, wantNumPages: 4},
		{name: "zero clamps to last", raw: "0", count: 10, perPage: 3, wantNumber: 4, wantNumPages: 4},
		{name: "negative clamps to last", raw: "-3", count: 7, perPage: 3, wantNumber: 3, wantNumPages: 3},
		{name: "empty listing has one page", raw: "5", count: 0, perPage: 3, wantNumber: 1, wantNumPages: 1},
		{name: "exact multiple", raw: "2", count: 6, perPage: 3, wantNumber: 2, wantNumPages: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ResolvePage(tt.raw, tt.count, tt.perPage)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantNumPages, page.NumPages)
			assert.Equal(t, tt.count, page.Count)
			assert.Equal(t, tt.perPage, page.PerPage)
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	page := ResolvePage("2", 10, 3)

	assert.Equal(t, 3, page.Offset())
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())
	assert.Equal(t, 3, page.NextNumber())
	assert.Equal(t, 1, page.PreviousNumber())

	first := ResolvePage("", 2, 3)
	assert.Equal(t, 0, first.Offset())
	assert.False(t, first.HasNext())
	assert.False(t, first.HasPrevious())
}

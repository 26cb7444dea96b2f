package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheoreticalCapacity(t *testing.T) {
	tests := []struct {
		name   string
		tables TableInventory
		custom []CustomTable
		want   int
	}{
		{name: "empty", want: 0},
		{name: "two small one medium", tables: TableInventory{Size2: 2, Size4: 1}, want: 8},
		{name: "all standard sizes", tables: TableInventory{Size2: 1, Size4: 1, Size6: 1, Size8: 1}, want: 20},
		{
			name:   "with custom tables",
			tables: TableInventory{Size4: 3},
			custom: []CustomTable{{Size: 10, Count: 2}, {Size: 3, Count: 1}},
			want:   12 + 20 + 3,
		},
		{name: "custom only", custom: []CustomTable{{Size: 12, Count: 1}}, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TheoreticalCapacity(tt.tables, tt.custom))
		})
	}
}

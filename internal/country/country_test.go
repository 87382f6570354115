package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"PL", "Poland"},
		{"IT", "Italy"},
		{"jp", "Japan"},
		{"GB", "GB"},
		{"US", "US"},
		{"", ""},
		{"??", "??"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.code))
		})
	}
}

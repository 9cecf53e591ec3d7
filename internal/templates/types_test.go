package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"component", Component, false},
		{"Container", Container, false},
		{"page", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindDefaults(t *testing.T) {
	assert.Equal(t, "NewComponent", Component.DefaultName())
	assert.Equal(t, "NewContainer", Container.DefaultName())
	assert.True(t, Component.HasStyled())
	assert.False(t, Container.HasStyled())
	assert.Len(t, Kinds(), 2)
	assert.Equal(t, []Role{Primary, Index, Styled}, Component.Roles())
	assert.Equal(t, []Role{Primary, Index}, Container.Roles())
}

func TestRoleOutputName(t *testing.T) {
	assert.Equal(t, "Widget.jsx", Primary.OutputName("Widget"))
	assert.Equal(t, "index.js", Index.OutputName("Widget"))
	assert.Equal(t, "styled.jsx", Styled.OutputName("Widget"))
}

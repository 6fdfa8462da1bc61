package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_BuiltinTypes(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name    string
		value   string
		typ     Type
		want    any
		wantErr bool
	}{
		{"string passthrough", "hello", TypeString, "hello", false},
		{"int", "42", TypeInt, 42, false},
		{"int with spaces", " 42 ", TypeInt, 42, false},
		{"int malformed", "4.2", TypeInt, nil, true},
		{"int64", "9000000000", TypeInt64, int64(9000000000), false},
		{"float", "3.14", TypeFloat, 3.14, false},
		{"float malformed", "pi", TypeFloat, nil, true},
		{"bool true", "true", TypeBool, true, false},
		{"bool numeric", "1", TypeBool, true, false},
		{"bool malformed", "yes", TypeBool, nil, true},
		{"duration", "1h30m", TypeDuration, 90 * time.Minute, false},
		{"duration malformed", "90 minutes", TypeDuration, nil, true},
		{"size bare", "512", TypeSize, int64(512), false},
		{"size kb", "64KB", TypeSize, int64(64 << 10), false},
		{"size mb lowercase", "10mb", TypeSize, int64(10 << 20), false},
		{"size gb", "2GB", TypeSize, int64(2 << 30), false},
		{"size malformed", "10 megs", TypeSize, nil, true},
		{"size negative", "-1MB", TypeSize, nil, true},
		{"path", "/etc/app.conf", TypePath, "/etc/app.conf", false},
		{"path empty", "  ", TypePath, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.value, tt.typ)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_UnknownType(t *testing.T) {
	c := NewConverter()

	_, err := c.Convert("x", Type("uuid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uuid")
}

func TestConverter_RegisterCustomType(t *testing.T) {
	c := NewConverter()

	c.Register(Type("upper"), func(v string) (any, error) {
		return "UPPER:" + v, nil
	})

	require.True(t, c.Knows(Type("upper")))

	got, err := c.Convert("x", Type("upper"))
	require.NoError(t, err)
	assert.Equal(t, "UPPER:x", got)
}

func TestType_IsValid(t *testing.T) {
	assert.True(t, TypeInt.IsValid())
	assert.True(t, TypeDuration.IsValid())
	assert.False(t, Type("uuid").IsValid())
}

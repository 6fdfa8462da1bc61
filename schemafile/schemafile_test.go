package schemafile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propcheck/registry"
	"propcheck/validate"
)

const poolSchema = `
version: "1"
properties:
  - name: pool.min
    type: int
    required: true
    category: pool
    default: "1"
    rules:
      - min: 0
  - name: pool.max
    type: int
    required: true
    rules:
      - min: 1
      - max: 1024
  - name: env
    type: string
    rules:
      - one_of: [dev, staging, prod]
groups:
  - name: pool
    description: connection pool bounds
    properties: [pool.min, pool.max]
    rules:
      - less_than_or_equal: [pool.min, pool.max]
`

func compilePool(t *testing.T) *registry.Registry {
	t.Helper()

	f, err := Parse([]byte(poolSchema))
	require.NoError(t, err)

	reg, err := Compile(f, nil)
	require.NoError(t, err)

	return reg
}

func TestParse_Shapes(t *testing.T) {
	f, err := Parse([]byte(poolSchema))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Properties, 3)

	min := f.Properties[0]
	assert.Equal(t, "pool.min", min.Name)
	assert.Equal(t, "int", min.Type)
	assert.True(t, min.Required)
	require.NotNil(t, min.Default)
	assert.Equal(t, "1", *min.Default)
	require.Len(t, min.Rules, 1)
	assert.Equal(t, "min", min.Rules[0].Name)
	assert.Equal(t, []string{"0"}, min.Rules[0].Args)

	env := f.Properties[2]
	require.Len(t, env.Rules, 1)
	assert.Equal(t, []string{"dev", "staging", "prod"}, env.Rules[0].Args)

	require.Len(t, f.Groups, 1)
	assert.Equal(t, []string{"pool.min", "pool.max"}, []string(f.Groups[0].Properties))
	require.Len(t, f.Groups[0].Rules, 1)
	assert.Equal(t, "less_than_or_equal", f.Groups[0].Rules[0].Name)
}

func TestParse_DefaultsApplied(t *testing.T) {
	f, err := Parse([]byte("properties:\n  - name: a\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "string", f.Properties[0].Type)
}

func TestParse_DependsOnSingleString(t *testing.T) {
	f, err := Parse([]byte("properties:\n  - name: a\n    depends_on: b\n  - name: b\n"))
	require.NoError(t, err)

	assert.Equal(t, StringArray{"b"}, f.Properties[0].DependsOn)
}

func TestCompile_EndToEnd(t *testing.T) {
	reg := compilePool(t)
	v := validate.New(reg, nil)

	res := v.Validate(map[string]string{"pool.min": "5", "pool.max": "10"})
	assert.True(t, res.Valid)

	res = v.Validate(map[string]string{"pool.min": "10", "pool.max": "5"})
	require.False(t, res.Valid)
	assert.Equal(t, "pool.min", res.Errors[0].Property)

	res = v.Validate(map[string]string{"pool.min": "1", "pool.max": "8", "env": "qa"})
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors[0].Message, "one of")
}

func TestCompile_UnknownRule(t *testing.T) {
	f, err := Parse([]byte("properties:\n  - name: a\n    rules: [sparkly]\n"))
	require.NoError(t, err)

	_, err = Compile(f, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkly")
}

func TestCompile_UnknownType(t *testing.T) {
	f, err := Parse([]byte("properties:\n  - name: a\n    type: uuid\n"))
	require.NoError(t, err)

	_, err = Compile(f, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uuid")
}

func TestCompile_ReportsAllProblems(t *testing.T) {
	schema := `
properties:
  - name: a
    type: uuid
  - name: b
    rules:
      - min: banana
`

	f, err := Parse([]byte(schema))
	require.NoError(t, err)

	_, err = Compile(f, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uuid")
	assert.Contains(t, err.Error(), "banana")
}

func TestCompile_BadRelationArity(t *testing.T) {
	schema := `
properties:
  - name: a
    type: int
groups:
  - name: g
    properties: [a]
    rules:
      - less_than: a
`

	f, err := Parse([]byte(schema))
	require.NoError(t, err)

	_, err = Compile(f, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two arguments")
}

func TestMarshal_RoundTrips(t *testing.T) {
	f, err := Parse([]byte(poolSchema))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f.Version, again.Version)
	assert.Len(t, again.Properties, len(f.Properties))
}

func TestParseProperties(t *testing.T) {
	data := []byte(`
# pool settings
pool.min = 1
pool.max=10

! another comment style
db.url = postgres://localhost/app
override = first
override = second
`)

	props, err := ParseProperties(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"pool.min": "1",
		"pool.max": "10",
		"db.url":   "postgres://localhost/app",
		"override": "second",
	}, props)
}

func TestParseProperties_MissingSeparator(t *testing.T) {
	_, err := ParseProperties([]byte("pool.min\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseProperties_EmptyKey(t *testing.T) {
	_, err := ParseProperties([]byte("=value\n"))
	assert.Error(t, err)
}

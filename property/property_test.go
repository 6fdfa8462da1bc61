package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propcheck/check"
	"propcheck/convert"
)

func TestDefinitionBuilder_AllFields(t *testing.T) {
	rule := check.RuleFunc(func(string, string, *check.Context) check.Result {
		return check.OK()
	})

	def, err := NewDefinition("pool.min", convert.TypeInt).
		WithRule(rule).
		Required().
		Category("pool").
		DependsOn("pool.max", "pool.max", "db.url").
		Order(5).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "pool.min", def.Name())
	assert.Equal(t, convert.TypeInt, def.Type())
	assert.NotNil(t, def.Rule())
	assert.True(t, def.IsRequired())
	assert.Equal(t, "pool", def.Category())
	assert.Equal(t, []string{"pool.max", "db.url"}, def.DependsOn())
	assert.Equal(t, 5, def.Order())
	assert.Nil(t, def.Deprecation())
}

func TestDefinitionBuilder_BlankNameFails(t *testing.T) {
	_, err := NewDefinition("  ", convert.TypeString).Build()
	assert.Error(t, err)
}

func TestDefinitionBuilder_MissingTypeFails(t *testing.T) {
	_, err := NewDefinition("a", "").Build()
	assert.Error(t, err)
}

func TestDefinitionBuilder_Deprecation(t *testing.T) {
	def, err := NewDefinition("db.url", convert.TypeString).
		Deprecated("2.1.0", "use the DSN form", "db.dsn").
		Build()
	require.NoError(t, err)

	dep := def.Deprecation()
	require.NotNil(t, dep)
	assert.Equal(t, "2.1.0", dep.Since.String())
	assert.Equal(t, "db.dsn", dep.ReplacedBy)
}

func TestDefinitionBuilder_BadDeprecationVersionFails(t *testing.T) {
	_, err := NewDefinition("db.url", convert.TypeString).
		Deprecated("soon", "", "").
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soon")
}

func TestDefinition_DependsOnReturnsCopy(t *testing.T) {
	def, err := NewDefinition("a", convert.TypeString).DependsOn("b").Build()
	require.NoError(t, err)

	deps := def.DependsOn()
	deps[0] = "mutated"

	assert.Equal(t, []string{"b"}, def.DependsOn())
}

func TestGroupBuilder(t *testing.T) {
	rule := check.MultiRuleFunc(func([]string, *check.Context) check.Result {
		return check.OK()
	})

	g, err := NewGroup("pool").
		Description("connection pool bounds").
		WithProperties("pool.min", "pool.max", "pool.min").
		WithRule(rule).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "pool", g.Name())
	assert.Equal(t, "connection pool bounds", g.Description())
	assert.Equal(t, []string{"pool.min", "pool.max"}, g.Properties())
	assert.Len(t, g.Rules(), 1)
}

func TestGroupBuilder_EmptyFails(t *testing.T) {
	_, err := NewGroup("empty").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one property")
}

func TestGroupBuilder_BlankNameFails(t *testing.T) {
	_, err := NewGroup(" ").WithProperties("a").Build()
	assert.Error(t, err)
}

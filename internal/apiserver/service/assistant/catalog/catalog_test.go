package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantTools = []string{
	"add_meal",
	"update_meal",
	"delete_meal",
	"add_workout",
	"add_water",
	"add_weight",
	"set_goal",
	"update_profile",
	"search_food",
	"get_daily_summary",
	"get_weekly_summary",
	"save_favorite_food",
	"list_favorite_foods",
}

func TestListOrderIsStable(t *testing.T) {
	first := List()
	second := List()

	require.Len(t, first, len(wantTools))
	for i, spec := range first {
		assert.Equal(t, wantTools[i], spec.Name)
		assert.Equal(t, second[i].Name, spec.Name)
	}
}

func TestListReturnsCopy(t *testing.T) {
	got := List()
	got[0] = nil
	require.NotNil(t, List()[0])
}

func TestLookup(t *testing.T) {
	spec := Lookup("add_water")
	require.NotNil(t, spec)
	assert.Equal(t, "add_water", spec.Name)

	assert.Nil(t, Lookup("levitate"))
}

func TestEverySpecHasDescription(t *testing.T) {
	for _, spec := range List() {
		assert.NotEmpty(t, spec.Description, "tool %s", spec.Name)
	}
}

func TestValidateArgs(t *testing.T) {
	spec := Lookup("add_water")
	require.NotNil(t, spec)

	require.NoError(t, spec.ValidateArgs(map[string]interface{}{"amount_ml": 500.0}))

	err := spec.ValidateArgs(map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount_ml")
}

func TestValidateArgsOptionalOnly(t *testing.T) {
	spec := Lookup("set_goal")
	require.NotNil(t, spec)
	assert.NoError(t, spec.ValidateArgs(map[string]interface{}{}))
}

func TestToolInfos(t *testing.T) {
	infos := ToolInfos()
	require.Len(t, infos, len(wantTools))
	for i, info := range infos {
		assert.Equal(t, wantTools[i], info.Name)
		assert.NotEmpty(t, info.Desc)
		assert.NotNil(t, info.ParamsOneOf)
	}
}

func TestToolInfoNestedParams(t *testing.T) {
	spec := Lookup("add_meal")
	require.NotNil(t, spec)

	items, ok := spec.Params["items"]
	require.True(t, ok)
	assert.Equal(t, "array", items.Type)
	require.NotNil(t, items.Items)
	require.Contains(t, items.Items.Properties, "name")
	assert.True(t, items.Items.Properties["name"].Required)

	// The Eino conversion must carry the nesting through.
	info := spec.ToolInfo()
	params, err := info.ParamsOneOf.ToJSONSchema()
	require.NoError(t, err)
	require.NotNil(t, params)
}

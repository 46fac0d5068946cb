package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentUnmarshal_InheritDropsStaleFields(t *testing.T) {
	raw := `{"user":"00000000-0000-0000-0000-000000000001","isCustom":false,
		"type":"folder","url":"https://old.example","subMenus":[{"title":"x","url":"y"}],
		"companyName":"PT Maju"}`

	var a Assignment
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.False(t, a.IsCustom())
	assert.Nil(t, a.Override)
	assert.Equal(t, "PT Maju", a.CompanyName)
	assert.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000001"), a.UserID)
}

func TestAssignmentUnmarshal_Custom(t *testing.T) {
	raw := `{"user":"00000000-0000-0000-0000-000000000002","isCustom":true,"url":"https://lookerstudio.google.com/x"}`

	var a Assignment
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	require.True(t, a.IsCustom())
	assert.Equal(t, LinkSingle, a.Override.Type, "missing type defaults to single")
	assert.Equal(t, "https://lookerstudio.google.com/x", a.Override.URL)
	assert.NotNil(t, a.Override.SubMenus)
}

func TestAssignmentMarshal_InheritWritesNeutralFields(t *testing.T) {
	a := Assignment{UserID: uuid.New(), CompanyName: "PT Maju"}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, false, out["isCustom"])
	assert.Equal(t, "single", out["type"])
	assert.Equal(t, "", out["url"])
	assert.Equal(t, []any{}, out["subMenus"])
}

func TestFindAssignment(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	f := Feature{AssignedTo: []Assignment{{UserID: u1}, {UserID: u2}}}

	_, idx, ok := f.FindAssignment(u2)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, _, ok = f.FindAssignment(uuid.New())
	assert.False(t, ok)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouteClimbHoldsExcludeFeet(t *testing.T) {
	r := &Route{Holds: []PlacedHold{
		{Col: 5, Row: 10, Role: RoleStart},
		{Col: 4, Row: 7, Role: RoleFoot},
		{Col: 7, Row: 14, Role: RoleHand},
		{Col: 6, Row: 12, Role: RoleFoot},
		{Col: 6, Row: 18, Role: RoleFinish},
	}}
	climb := r.ClimbHolds()
	require.Len(t, climb, 3)
	for _, h := range climb {
		require.True(t, h.Role.Climbing())
	}
	require.Equal(t, 2, r.CountRole(RoleFoot))
}

func TestPlacedHoldJSONShape(t *testing.T) {
	h := PlacedHold{Col: 12, Row: 3, Role: RoleFinish}
	data, err := json.Marshal(h)
	require.NoError(t, err)
	require.JSONEq(t, `{"col":12,"row":3,"role":"finish"}`, string(data))

	var back PlacedHold
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, h, back)
}

func TestRoleParsing(t *testing.T) {
	for _, r := range []Role{RoleStart, RoleHand, RoleFoot, RoleFinish} {
		require.Equal(t, r, ParseRole(r.String()))
	}
}

func TestDifficultyLabelJSON(t *testing.T) {
	data, err := json.Marshal(Score{Label: VeryHard, Value: 5.1})
	require.NoError(t, err)
	require.JSONEq(t, `{"label":"VeryHard","value":5.1}`, string(data))

	var back Score
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, VeryHard, back.Label)
}

func TestParseHoldKind(t *testing.T) {
	require.Equal(t, KindHand, ParseHoldKind("h"))
	require.Equal(t, KindFoot, ParseHoldKind("f"))
	require.Equal(t, KindNone, ParseHoldKind("n"))
	require.Equal(t, KindNone, ParseHoldKind("bogus"))
}

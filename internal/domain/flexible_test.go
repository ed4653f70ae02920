package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	// 上游来的数字字段有时是数字有时是字符串，解析必须都能兜住
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "number", input: `5`, expected: 5},
		{name: "numeric string", input: `"5"`, expected: 5},
		{name: "negative number", input: `-1`, expected: -1},
		{name: "empty string", input: `""`, expected: 0},
		{name: "null", input: `null`, expected: 0},
		{name: "garbage string", input: `"abc"`, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v FlexInt
			require.NoError(t, json.Unmarshal([]byte(tc.input), &v))
			require.Equal(t, tc.expected, v.Int())
		})
	}
}

func TestSnapshotUnmarshal(t *testing.T) {
	raw := `{
		"teamMembers": [
			{"memberId": "zhangsan", "status": "Active", "peekOrder": "2", "fixedDay": "", "backupMembers": "lisi,wangwu"}
		],
		"dayRules": [
			{"memberId": "zhangsan", "type": "Vacation", "start": "2024-06-07", "end": "2024-06-10", "reason": "年假", "approved": true}
		],
		"holidays": [
			{"name": "端午节", "date": "2024-06-10", "country": "China"}
		]
	}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))

	require.Len(t, snap.TeamMembers, 1)
	require.Equal(t, 2, snap.TeamMembers[0].PeekOrder.Int())
	require.Equal(t, 0, snap.TeamMembers[0].FixedDay.Int())
	require.Equal(t, "lisi,wangwu", snap.TeamMembers[0].BackupMembers)

	require.Len(t, snap.DayRules, 1)
	require.Equal(t, "2024-06-07", snap.DayRules[0].Start.String())

	require.Len(t, snap.Holidays, 1)
	require.Equal(t, "端午节", snap.Holidays[0].Name)
}

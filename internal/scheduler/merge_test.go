package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

func vacation(memberID, start, end, reason string) domain.DayRuleRecord {
	return record(memberID, domain.RuleVacation, start, end, reason, true)
}

func record(memberID, ruleType, start, end, reason string, approved bool) domain.DayRuleRecord {
	s, err := domain.ParseDate(start)
	if err != nil {
		panic(err)
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		panic(err)
	}
	return domain.DayRuleRecord{
		MemberID: memberID,
		Type:     ruleType,
		Start:    s,
		End:      e,
		Approved: approved,
		Reason:   reason,
	}
}

func span(rule domain.DayRule) [2]string {
	return [2]string{rule.Start.String(), rule.End.String()}
}

func TestMergeAcrossWeekend(t *testing.T) {
	// 周五和下周一之间只隔着周末，算连续假期
	merged := mergeDayRules([]domain.DayRuleRecord{
		vacation("m1", "2024-06-07", "2024-06-07", "看病"),
		vacation("m1", "2024-06-10", "2024-06-10", "看病"),
	})

	require.Len(t, merged, 1)
	require.Equal(t, [2]string{"2024-06-07", "2024-06-10"}, span(merged[0]))
	require.Equal(t, []string{"看病"}, merged[0].Reasons)
}

func TestMergeKeepsWorkdayGapSeparate(t *testing.T) {
	// 中间隔着工作日（6 月 6 日）就是两段假期
	merged := mergeDayRules([]domain.DayRuleRecord{
		vacation("m1", "2024-06-03", "2024-06-05", "年假"),
		vacation("m1", "2024-06-07", "2024-06-07", "看病"),
	})

	require.Len(t, merged, 2)
	// 输出按开始日期降序
	require.Equal(t, [2]string{"2024-06-07", "2024-06-07"}, span(merged[0]))
	require.Equal(t, [2]string{"2024-06-03", "2024-06-05"}, span(merged[1]))
}

func TestMergeOverlapAndContainment(t *testing.T) {
	merged := mergeDayRules([]domain.DayRuleRecord{
		vacation("m1", "2024-06-03", "2024-06-06", "年假"),
		vacation("m1", "2024-06-05", "2024-06-12", "看病"),
		vacation("m1", "2024-06-10", "2024-06-11", "年假"),
	})

	require.Len(t, merged, 1)
	require.Equal(t, [2]string{"2024-06-03", "2024-06-12"}, span(merged[0]))
	// 原因按出现顺序去重累积
	require.Equal(t, []string{"年假", "看病"}, merged[0].Reasons)
}

func TestMergeApprovedFollowsLastRecord(t *testing.T) {
	merged := mergeDayRules([]domain.DayRuleRecord{
		record("m1", domain.RuleVacation, "2024-06-03", "2024-06-05", "年假", false),
		record("m1", domain.RuleVacation, "2024-06-05", "2024-06-07", "年假", true),
	})

	require.Len(t, merged, 1)
	require.True(t, merged[0].Approved)
}

func TestMergeGroupsByMemberAndType(t *testing.T) {
	merged := mergeDayRules([]domain.DayRuleRecord{
		vacation("m1", "2024-06-03", "2024-06-05", "年假"),
		vacation("m2", "2024-06-05", "2024-06-07", "年假"),
		record("m1", domain.RuleReplacement, "2024-06-04", "2024-06-04", "替班", true),
	})

	// 不同成员、不同类型的记录互不合并
	require.Len(t, merged, 3)
}

func TestMergeIdempotent(t *testing.T) {
	merged := mergeDayRules([]domain.DayRuleRecord{
		vacation("m1", "2024-06-07", "2024-06-07", "看病"),
		vacation("m1", "2024-06-10", "2024-06-12", "年假"),
		vacation("m2", "2024-06-03", "2024-06-05", "出差"),
	})

	again := make([]domain.DayRuleRecord, 0, len(merged))
	for _, rule := range merged {
		again = append(again, domain.DayRuleRecord{
			MemberID: rule.MemberID,
			Type:     rule.Type,
			Start:    rule.Start,
			End:      rule.End,
			Approved: rule.Approved,
			Reason:   rule.Reason(),
		})
	}
	remerged := mergeDayRules(again)

	require.Len(t, remerged, len(merged))
	for i := range merged {
		require.Equal(t, span(merged[i]), span(remerged[i]))
		require.Equal(t, merged[i].MemberID, remerged[i].MemberID)
	}
}

func TestMergeEmptyInput(t *testing.T) {
	require.Empty(t, mergeDayRules(nil))
}

func TestExpandHolidays(t *testing.T) {
	members := []*domain.TeamMember{
		{MemberID: "m1", Status: domain.StatusActive, Country: "China"},
		{MemberID: "m2", Status: domain.StatusActive, Country: "Serbia"},
		{MemberID: "m3", Status: domain.StatusActive, Country: ""},
	}
	holidays := []domain.Holiday{
		{Name: "端午节", Date: domain.NewDate(2024, time.June, 10), Country: "china"},
		{Name: "元旦", Date: domain.NewDate(2024, time.January, 1), Country: "China, Serbia"},
		{Name: "无主节日", Date: domain.NewDate(2024, time.March, 1), Country: ""},
	}

	expanded := expandHolidays(holidays, members)

	require.Len(t, expanded, 3)
	require.Equal(t, "m1", expanded[0].MemberID)
	require.Equal(t, "端午节 (holiday)", expanded[0].Reason)
	require.Equal(t, domain.RuleVacation, expanded[0].Type)
	require.True(t, expanded[0].Approved)
	require.Equal(t, expanded[0].Start, expanded[0].End)
	// 多国家节日展开到每个命中的成员
	require.Equal(t, "m1", expanded[1].MemberID)
	require.Equal(t, "m2", expanded[2].MemberID)
}

func TestHolidayBridgesAdjacentVacation(t *testing.T) {
	// 周一是节假日，周五请假，合并后是一段连续假期
	members := []*domain.TeamMember{
		{MemberID: "m1", Status: domain.StatusActive, Country: "China"},
	}
	holidays := []domain.Holiday{
		{Name: "端午节", Date: domain.NewDate(2024, time.June, 10), Country: "China"},
	}

	records := append(
		[]domain.DayRuleRecord{vacation("m1", "2024-06-07", "2024-06-07", "看病")},
		expandHolidays(holidays, members)...,
	)
	merged := mergeDayRules(records)

	require.Len(t, merged, 1)
	require.Equal(t, [2]string{"2024-06-07", "2024-06-10"}, span(merged[0]))
	require.Equal(t, []string{"看病", "端午节 (holiday)"}, merged[0].Reasons)
}

package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

func fiveMemberSnapshot() *domain.Snapshot {
	return &domain.Snapshot{TeamMembers: []domain.TeamMemberRecord{
		activeRecord("m1", 1),
		activeRecord("m2", 2),
		activeRecord("m3", 3),
		activeRecord("m4", 4),
		activeRecord("m5", 5),
	}}
}

func TestNewWithNilSnapshot(t *testing.T) {
	s := New(nil, domain.NewDate(2024, time.June, 10))

	require.Empty(t, s.TeamMembers())
	require.Empty(t, s.DayRules())
	require.Empty(t, s.TwoWeekTeamMembers())

	assignment := s.GetScrumMaster(domain.NewDate(2024, time.June, 10), 0)
	require.Equal(t, domain.PathUnknown, assignment.Path)
}

func TestNormalizeTeamMembers(t *testing.T) {
	raw := domain.TeamMemberRecord{
		MemberID:      "zhangsan",
		Name:          "张三",
		ShortName:     "  ",
		Status:        domain.StatusActive,
		PeekOrder:     domain.FlexInt(2),
		BackupMembers: " lisi , wangwu ,",
	}
	snapshot := &domain.Snapshot{TeamMembers: []domain.TeamMemberRecord{
		raw,
		activeRecord("lisi", 1),
	}}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	members := s.TeamMembers()
	require.Len(t, members, 2)
	// 按 peekOrder 排序
	require.Equal(t, "lisi", members[0].MemberID)

	zhangsan := s.GetTeamMember("zhangsan")
	require.NotNil(t, zhangsan)
	// shortName 为空时退回 memberId
	assert.Equal(t, "zhangsan", zhangsan.ShortName)
	assert.Equal(t, []string{"lisi", "wangwu"}, zhangsan.BackupMembers)
}

func TestIsOnVacationInclusiveBounds(t *testing.T) {
	snapshot := fiveMemberSnapshot()
	snapshot.DayRules = []domain.DayRuleRecord{
		vacation("m1", "2024-06-03", "2024-06-05", "年假"),
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	assert.True(t, s.IsOnVacation(domain.NewDate(2024, time.June, 3), "m1"))
	assert.True(t, s.IsOnVacation(domain.NewDate(2024, time.June, 4), "m1"))
	assert.True(t, s.IsOnVacation(domain.NewDate(2024, time.June, 5), "m1"))
	assert.False(t, s.IsOnVacation(domain.NewDate(2024, time.June, 6), "m1"))
	assert.False(t, s.IsOnVacation(domain.NewDate(2024, time.June, 4), "m2"))
}

func TestWhosOut(t *testing.T) {
	snapshot := fiveMemberSnapshot()
	snapshot.DayRules = []domain.DayRuleRecord{
		vacation("m3", "2024-06-20", "2024-06-21", "出差"),
		vacation("m1", "2024-06-03", "2024-06-05", "年假"),
		vacation("m2", "2024-06-10", "2024-06-12", "看病"),
		// 窗口之外的不展示
		vacation("m4", "2024-05-20", "2024-05-25", "年假"),
		vacation("m5", "2024-08-15", "2024-08-20", "年假"),
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	items := s.WhosOut()
	require.Len(t, items, 3)

	// 先按状态（已结束、进行中、未开始），再按开始日期
	assert.Equal(t, "m1", items[0].MemberID)
	assert.Equal(t, -1, items[0].Status)
	assert.Equal(t, "m2", items[1].MemberID)
	assert.Equal(t, 0, items[1].Status)
	assert.Equal(t, "m3", items[2].MemberID)
	assert.Equal(t, 1, items[2].Status)
	assert.Equal(t, "年假", items[0].Reason)
}

func TestHolidayViews(t *testing.T) {
	snapshot := fiveMemberSnapshot()
	snapshot.Holidays = []domain.HolidayRecord{
		{Name: "端午节", Date: domain.NewDate(2024, time.June, 10), Country: "China"},
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	dragonBoat := domain.NewDate(2024, time.June, 10)
	assert.True(t, s.IsHoliday(dragonBoat))
	assert.Equal(t, "端午节", s.HolidayName(dragonBoat))
	assert.False(t, s.IsHoliday(dragonBoat.AddDays(1)))
	assert.Equal(t, "", s.HolidayName(dragonBoat.AddDays(1)))
}

func TestIsHolidayForAllTeamMembers(t *testing.T) {
	m1 := activeRecord("m1", 1)
	m1.Country = "China"
	m2 := activeRecord("m2", 2)
	m2.Country = "China"
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{m1, m2},
		Holidays: []domain.HolidayRecord{
			{Name: "端午节", Date: domain.NewDate(2024, time.June, 10), Country: "China"},
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	assert.True(t, s.IsHolidayForAllTeamMembers(domain.NewDate(2024, time.June, 10)))
	assert.False(t, s.IsHolidayForAllTeamMembers(domain.NewDate(2024, time.June, 11)))
}

func TestGetAllHolidayName(t *testing.T) {
	t.Run("reason covering everyone is returned alone", func(t *testing.T) {
		m1 := activeRecord("m1", 1)
		m1.Country = "China"
		m2 := activeRecord("m2", 2)
		m2.Country = "China"
		snapshot := &domain.Snapshot{
			TeamMembers: []domain.TeamMemberRecord{m1, m2},
			Holidays: []domain.HolidayRecord{
				{Name: "端午节", Date: domain.NewDate(2024, time.June, 10), Country: "China"},
			},
		}
		s := newTestScheduler(t, snapshot, "2024-06-10")

		assert.Equal(t, "端午节 (holiday)", s.GetAllHolidayName(domain.NewDate(2024, time.June, 10)))
	})

	t.Run("mixed reasons are joined by frequency then name", func(t *testing.T) {
		snapshot := &domain.Snapshot{
			TeamMembers: []domain.TeamMemberRecord{
				activeRecord("m1", 1),
				activeRecord("m2", 2),
			},
			DayRules: []domain.DayRuleRecord{
				vacation("m1", "2024-06-12", "2024-06-12", "Conference"),
				vacation("m2", "2024-06-12", "2024-06-12", "Sick"),
			},
		}
		s := newTestScheduler(t, snapshot, "2024-06-10")

		assert.Equal(t, "Conference, Sick", s.GetAllHolidayName(domain.NewDate(2024, time.June, 12)))
	})

	t.Run("no absences", func(t *testing.T) {
		s := newTestScheduler(t, fiveMemberSnapshot(), "2024-06-10")
		assert.Equal(t, "", s.GetAllHolidayName(domain.NewDate(2024, time.June, 12)))
	})
}

func TestSlotIndex(t *testing.T) {
	// today 是 2024-06-12（周三），本周一是 06-10
	s := newTestScheduler(t, fiveMemberSnapshot(), "2024-06-12")

	testCases := []struct {
		date     string
		expected int
	}{
		{date: "2024-06-10", expected: 0},
		{date: "2024-06-12", expected: 2},
		{date: "2024-06-14", expected: 4},
		{date: "2024-06-15", expected: -1}, // 周六
		{date: "2024-06-17", expected: 5},  // 下周一
		{date: "2024-06-21", expected: 9},
		{date: "2024-06-24", expected: -1}, // 两周网格之外
		{date: "2024-06-07", expected: -1}, // 上周
	}
	for _, tc := range testCases {
		date, err := domain.ParseDate(tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, s.SlotIndex(date), "date %s", tc.date)
	}
}

func TestGetScrumMasterRotationPath(t *testing.T) {
	s := newTestScheduler(t, fiveMemberSnapshot(), "2024-06-10")

	assignment := s.GetScrumMaster(domain.NewDate(2024, time.June, 12), 2)
	require.Equal(t, "m3", assignment.MemberID)
	require.Equal(t, domain.PathRotation, assignment.Path)
	require.NotNil(t, assignment.Member)
	require.Equal(t, "m3", s.GetScrumMasterName(domain.NewDate(2024, time.June, 12), 2))
}

func TestGetScrumMasterReplacementOverride(t *testing.T) {
	snapshot := fiveMemberSnapshot()
	snapshot.DayRules = []domain.DayRuleRecord{
		record("m4", domain.RuleReplacement, "2024-06-12", "2024-06-12", "替班", true),
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	assignment := s.GetScrumMaster(domain.NewDate(2024, time.June, 12), 2)
	require.Equal(t, "m4", assignment.MemberID)
	require.Equal(t, domain.PathOverride, assignment.Path)
}

func TestGetScrumMasterIgnoresUnapprovedReplacement(t *testing.T) {
	snapshot := fiveMemberSnapshot()
	snapshot.DayRules = []domain.DayRuleRecord{
		record("m4", domain.RuleReplacement, "2024-06-12", "2024-06-12", "替班", false),
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	assignment := s.GetScrumMaster(domain.NewDate(2024, time.June, 12), 2)
	require.Equal(t, "m3", assignment.MemberID)
	require.Equal(t, domain.PathRotation, assignment.Path)
}

func TestGetScrumMasterBackupOnVacation(t *testing.T) {
	m3 := activeRecord("m3", 3)
	m3.BackupMembers = "m5"
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{
			activeRecord("m1", 1),
			activeRecord("m2", 2),
			m3,
			activeRecord("m4", 4),
			activeRecord("m5", 5),
		},
		DayRules: []domain.DayRuleRecord{
			vacation("m3", "2024-06-12", "2024-06-12", "看病"),
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	assignment := s.GetScrumMaster(domain.NewDate(2024, time.June, 12), 2)
	require.Equal(t, "m5", assignment.MemberID)
	require.Equal(t, domain.PathBackup, assignment.Path)
}

func TestGetScrumMasterEmptySlotGoesToBackup(t *testing.T) {
	s := newTestScheduler(t, fiveMemberSnapshot(), "2024-06-10")

	// 网格之外的位置没有轮换候选，直接走候补搜索
	assignment := s.GetScrumMaster(domain.NewDate(2024, time.June, 24), -1)
	require.Equal(t, domain.PathBackup, assignment.Path)
	require.NotEmpty(t, assignment.MemberID)
	require.NotNil(t, assignment.Member)
}

func TestGetScrumMasterUnknown(t *testing.T) {
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{
			activeRecord("m1", 1),
			activeRecord("m2", 2),
		},
		DayRules: []domain.DayRuleRecord{
			vacation("m1", "2024-06-03", "2024-06-14", "年假"),
			vacation("m2", "2024-06-03", "2024-06-14", "年假"),
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	assignment := s.GetScrumMaster(domain.NewDate(2024, time.June, 12), 0)
	require.Equal(t, domain.PathUnknown, assignment.Path)
	require.Equal(t, "", assignment.MemberID)
	require.Nil(t, assignment.Member)
	require.Equal(t, "Unknown", s.GetScrumMasterName(domain.NewDate(2024, time.June, 12), 0))
}

func TestVacationsAndReplacementsAreSplit(t *testing.T) {
	snapshot := fiveMemberSnapshot()
	snapshot.DayRules = []domain.DayRuleRecord{
		vacation("m1", "2024-06-03", "2024-06-05", "年假"),
		record("m2", domain.RuleReplacement, "2024-06-04", "2024-06-04", "替班", true),
	}
	s := newTestScheduler(t, snapshot, "2024-06-10")

	require.Len(t, s.Vacations(), 1)
	require.Len(t, s.Replacements(), 1)
	require.Equal(t, "m1", s.Vacations()[0].MemberID)
	require.Equal(t, "m2", s.Replacements()[0].MemberID)
}

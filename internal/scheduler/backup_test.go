package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

func TestFirstFreeBackupExplicitList(t *testing.T) {
	duty := activeRecord("duty", 1)
	duty.BackupMembers = "b1,b2"
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{
			duty,
			activeRecord("b1", 2),
			activeRecord("b2", 3),
		},
		DayRules: []domain.DayRuleRecord{
			vacation("b1", "2024-06-07", "2024-06-07", "看病"),
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-07")

	// 显式候补列表优先，跳过当天休假的
	date := domain.NewDate(2024, 6, 7)
	require.Equal(t, "b2", s.FirstFreeBackup(date, "duty", nil))
}

func TestFirstFreeBackupOffRotationShuffleOrder(t *testing.T) {
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{
			activeRecord("m1", 1),
			activeRecord("m2", 2),
			activeRecord("m3", 3),
			activeRecord("m4", 4),
			activeRecord("m5", 5),
		},
		DayRules: []domain.DayRuleRecord{
			vacation("m3", "2024-06-07", "2024-06-07", "看病"),
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-07")

	// 2024-06-07 的种子下 [m1,m3,m4,m5] 洗出来是 [m3,m4,m1,m5]，
	// m3 在休假，所以轮到 m4
	date := domain.NewDate(2024, 6, 7)
	require.Equal(t, "m4", s.FirstFreeBackup(date, "", []string{"m2"}))
}

func TestFirstFreeBackupFallsBackToFullRoster(t *testing.T) {
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{
			activeRecord("m1", 1),
			activeRecord("m2", 2),
			activeRecord("m3", 3),
			activeRecord("m4", 4),
			activeRecord("m5", 5),
		},
		DayRules: []domain.DayRuleRecord{
			vacation("m1", "2024-06-07", "2024-06-07", "出差"),
			vacation("m3", "2024-06-07", "2024-06-07", "出差"),
			vacation("m4", "2024-06-07", "2024-06-07", "出差"),
			vacation("m5", "2024-06-07", "2024-06-07", "出差"),
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-07")

	// 轮换表外的人全在休假时，兜底复用已排班的成员
	date := domain.NewDate(2024, 6, 7)
	require.Equal(t, "m2", s.FirstFreeBackup(date, "", []string{"m2"}))
}

func TestFirstFreeBackupNobodyAvailable(t *testing.T) {
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{
			activeRecord("m1", 1),
			activeRecord("m2", 2),
		},
		DayRules: []domain.DayRuleRecord{
			vacation("m1", "2024-06-07", "2024-06-07", "出差"),
			vacation("m2", "2024-06-07", "2024-06-07", "出差"),
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-07")

	date := domain.NewDate(2024, 6, 7)
	require.Equal(t, "", s.FirstFreeBackup(date, "m1", nil))
}

func TestFirstFreeBackupNeverReturnsVacationingMember(t *testing.T) {
	snapshot := &domain.Snapshot{
		TeamMembers: []domain.TeamMemberRecord{
			activeRecord("m1", 1),
			activeRecord("m2", 2),
			activeRecord("m3", 3),
		},
		DayRules: []domain.DayRuleRecord{
			vacation("m2", "2024-06-03", "2024-06-14", "年假"),
		},
	}
	s := newTestScheduler(t, snapshot, "2024-06-07")

	date := domain.NewDate(2024, 6, 7)
	for _, twoWeek := range [][]string{nil, {"m1"}, {"m1", "m3"}} {
		backup := s.FirstFreeBackup(date, "", twoWeek)
		require.NotEqual(t, "m2", backup)
		require.NotEmpty(t, backup)
	}
}

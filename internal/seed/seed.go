package seed

import (
	"log/slog"
	"time"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/repository"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/utils"
)

// SeedTeamMembers 插入 n 个随机成员，返回成功插入的 memberId 列表
func SeedTeamMembers(repo *repository.Repository, n int) []string {
	memberIDs := make([]string, 0, n)

	for i := 0; i < n; i++ {
		member := utils.GenerateRandomTeamMember(i + 1)
		if err := repo.CreateTeamMember(member); err != nil {
			slog.Error("无法插入随机成员", "memberId", member.MemberID, "error", err)
			continue
		}
		memberIDs = append(memberIDs, member.MemberID)
	}

	slog.Info("随机成员插入完成", "count", len(memberIDs))
	return memberIDs
}

// SeedDayRules 为每个成员插入 rulesPerMember 条随机请假记录
func SeedDayRules(repo *repository.Repository, memberIDs []string, rulesPerMember int) {
	today := domain.DateOf(time.Now())
	count := 0

	for _, memberID := range memberIDs {
		for i := 0; i < rulesPerMember; i++ {
			rule := utils.GenerateRandomDayRule(memberID, today)
			if err := repo.CreateDayRule(rule); err != nil {
				slog.Error("无法插入随机请假记录", "memberId", memberID, "error", err)
				continue
			}
			count++
		}
	}

	slog.Info("随机请假记录插入完成", "count", count)
}

// SeedHolidays 插入 n 条随机节假日
func SeedHolidays(repo *repository.Repository, n int) {
	today := domain.DateOf(time.Now())
	count := 0

	for i := 0; i < n; i++ {
		holiday := utils.GenerateRandomHoliday(today)
		if err := repo.CreateHoliday(holiday); err != nil {
			slog.Error("无法插入随机节假日", "name", holiday.Name, "error", err)
			continue
		}
		count++
	}

	slog.Info("随机节假日插入完成", "count", count)
}

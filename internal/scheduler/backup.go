package scheduler

import "github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"

// FirstFreeBackup 为不可用（或空缺）的值日人寻找替补，返回空串表示无人可用。
// 搜索顺序：
//  1. 该成员显式配置的候补列表，取第一个当天不在休假的；
//  2. 按日期种子洗牌后的在岗名单，但排除已经在两周轮换表里的人；
//  3. 同样的种子洗牌完整在岗名单，兜底复用已排班的人
func (s *Scheduler) FirstFreeBackup(date domain.Date, memberID string, twoWeekTeamMembers []string) string {
	if member := s.GetTeamMember(memberID); member != nil {
		for _, backupID := range member.BackupMembers {
			if !s.IsOnVacation(date, backupID) {
				return backupID
			}
		}
	}

	seed := DateSeed(date)

	scheduled := make(map[string]bool, len(twoWeekTeamMembers))
	for _, id := range twoWeekTeamMembers {
		if id != "" {
			scheduled[id] = true
		}
	}

	offRotation := make([]*domain.TeamMember, 0)
	for _, member := range s.ActiveTeamMembers() {
		if !scheduled[member.MemberID] {
			offRotation = append(offRotation, member)
		}
	}
	for _, member := range Shuffle(offRotation, seed) {
		if !s.IsOnVacation(date, member.MemberID) {
			return member.MemberID
		}
	}

	for _, member := range Shuffle(s.ActiveTeamMembers(), seed) {
		if !s.IsOnVacation(date, member.MemberID) {
			return member.MemberID
		}
	}

	return ""
}

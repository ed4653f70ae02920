package scheduler

import "github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"

const slotsPerWeek = 5

// buildWeek 用"固定位置优先，其余按游标消费"的状态机填满一周的 5 个位置。
// pool 是可消费的工作队列：非双周成员取用一次后出队，双周成员留在队里、
// 游标后移；游标越界时回绕到 0；队列耗尽后剩下的位置填空串。
// active 只用来查找固定位置的成员，不会被修改
func buildWeek(active []*domain.TeamMember, pool []*domain.TeamMember) []string {
	members := make([]string, 0, slotsPerWeek)
	memberIndex := 0

	for len(members) < slotsPerWeek {
		if fixed := findFixed(active, len(members)+1); fixed != nil {
			members = append(members, fixed.MemberID)
			pool = removeMember(pool, fixed.MemberID)
			if memberIndex >= len(pool) {
				memberIndex = 0
			}
			continue
		}

		if len(pool) == 0 {
			members = append(members, "")
			continue
		}

		member := pool[memberIndex]
		members = append(members, member.MemberID)

		if member.DayBackup {
			memberIndex++
		} else {
			pool = append(pool[:memberIndex], pool[memberIndex+1:]...)
		}
		if len(pool) > 0 && memberIndex >= len(pool) {
			memberIndex = 0
		}
	}

	return members
}

func findFixed(active []*domain.TeamMember, slot int) *domain.TeamMember {
	for _, member := range active {
		if member.FixedDay == slot {
			return member
		}
	}
	return nil
}

func removeMember(pool []*domain.TeamMember, memberID string) []*domain.TeamMember {
	for i, member := range pool {
		if member.MemberID == memberID {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}

// FirstWeekTeamMembers 基于完整的在岗名单（按 peekOrder 排序）构建第一周。
// 名单为空时返回空列表而不是 5 个空位
func (s *Scheduler) FirstWeekTeamMembers() []string {
	active := s.ActiveTeamMembers()
	if len(active) == 0 {
		return []string{}
	}

	pool := make([]*domain.TeamMember, len(active))
	copy(pool, active)
	return buildWeek(active, pool)
}

// SecondWeekTeamMembers 的工作队列是"第一周没轮到的成员"接上
// "第一周轮过且是双周模式的成员"（都保持名单顺序），再走同一个状态机。
// 非双周成员在一个两周周期里恰好被消费一次
func (s *Scheduler) SecondWeekTeamMembers() []string {
	active := s.ActiveTeamMembers()
	if len(active) == 0 {
		return []string{}
	}

	firstWeek := s.FirstWeekTeamMembers()
	chosen := make(map[string]bool, len(firstWeek))
	for _, id := range firstWeek {
		if id != "" {
			chosen[id] = true
		}
	}

	pool := make([]*domain.TeamMember, 0, len(active))
	for _, member := range active {
		if !chosen[member.MemberID] {
			pool = append(pool, member)
		}
	}
	for _, member := range active {
		if chosen[member.MemberID] && member.DayBackup {
			pool = append(pool, member)
		}
	}

	return buildWeek(active, pool)
}

// TwoWeekTeamMembers 总是返回两周共 10 个位置（名单非空时）
func (s *Scheduler) TwoWeekTeamMembers() []string {
	return append(s.FirstWeekTeamMembers(), s.SecondWeekTeamMembers()...)
}

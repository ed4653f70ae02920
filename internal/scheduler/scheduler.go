package scheduler

import (
	"sort"
	"strings"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

// Scheduler 把一份不可变快照解析成各种派生视图，并回答
// "某天某个轮换位置由谁值日"。所有派生数据在 New 里一次算好，
// 之后只读，因此同一个实例可以被并发查询；换快照时重建实例即可
type Scheduler struct {
	today domain.Date

	teamMembers  []*domain.TeamMember
	active       []*domain.TeamMember
	holidays     []domain.Holiday
	dayRules     []domain.DayRule
	vacations    []domain.DayRule
	replacements []domain.DayRule
}

// New 对快照做归一化和区间合并。today 必须由调用方显式传入，
// 引擎内部不读取系统时钟
func New(snapshot *domain.Snapshot, today domain.Date) *Scheduler {
	if snapshot == nil {
		snapshot = &domain.Snapshot{}
	}

	s := &Scheduler{today: today}
	s.teamMembers = normalizeTeamMembers(snapshot.TeamMembers)

	s.active = make([]*domain.TeamMember, 0, len(s.teamMembers))
	for _, member := range s.teamMembers {
		if member.IsActive() {
			s.active = append(s.active, member)
		}
	}

	s.holidays = make([]domain.Holiday, 0, len(snapshot.Holidays))
	for _, record := range snapshot.Holidays {
		s.holidays = append(s.holidays, domain.Holiday{
			Date:    record.Date,
			Name:    record.Name,
			Country: record.Country,
		})
	}

	records := make([]domain.DayRuleRecord, 0, len(snapshot.DayRules))
	records = append(records, snapshot.DayRules...)
	records = append(records, expandHolidays(s.holidays, s.active)...)
	s.dayRules = mergeDayRules(records)

	for _, rule := range s.dayRules {
		switch rule.Type {
		case domain.RuleVacation:
			s.vacations = append(s.vacations, rule)
		case domain.RuleReplacement:
			s.replacements = append(s.replacements, rule)
		}
	}

	return s
}

func normalizeTeamMembers(records []domain.TeamMemberRecord) []*domain.TeamMember {
	members := make([]*domain.TeamMember, 0, len(records))
	for _, record := range records {
		member := &domain.TeamMember{
			MemberID:      record.MemberID,
			Name:          record.Name,
			ShortName:     strings.TrimSpace(record.ShortName),
			Status:        record.Status,
			PeekOrder:     record.PeekOrder.Int(),
			DayBackup:     record.DayBackup,
			BackupMembers: splitCSV(record.BackupMembers),
			FixedDay:      record.FixedDay.Int(),
			Country:       record.Country,
		}
		if member.ShortName == "" {
			member.ShortName = member.MemberID
		}
		members = append(members, member)
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].PeekOrder < members[j].PeekOrder
	})
	return members
}

func splitCSV(s string) []string {
	parts := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func (s *Scheduler) Today() domain.Date { return s.today }

// TeamMembers 返回按 peekOrder 排序的归一化成员视图
func (s *Scheduler) TeamMembers() []*domain.TeamMember { return s.teamMembers }

func (s *Scheduler) ActiveTeamMembers() []*domain.TeamMember { return s.active }

func (s *Scheduler) Holidays() []domain.Holiday { return s.holidays }

// DayRules 返回合并后的全部区间，按开始日期降序
func (s *Scheduler) DayRules() []domain.DayRule { return s.dayRules }

func (s *Scheduler) Vacations() []domain.DayRule { return s.vacations }

func (s *Scheduler) Replacements() []domain.DayRule { return s.replacements }

func (s *Scheduler) GetTeamMember(memberID string) *domain.TeamMember {
	if memberID == "" {
		return nil
	}
	for _, member := range s.teamMembers {
		if member.MemberID == memberID {
			return member
		}
	}
	return nil
}

func (s *Scheduler) IsOnVacation(date domain.Date, memberID string) bool {
	for _, vacation := range s.vacations {
		if vacation.MemberID == memberID && vacation.Covers(date) {
			return true
		}
	}
	return false
}

// WhosOut 返回 [today-10d, today+60d] 窗口内的休假列表，
// 状态 -1 已结束、0 进行中、1 未开始，按状态再按开始日期排序
func (s *Scheduler) WhosOut() []domain.WhosOutItem {
	items := make([]domain.WhosOutItem, 0)
	for _, vacation := range s.vacations {
		if vacation.End.Before(s.today.AddDays(-10)) || vacation.Start.After(s.today.AddDays(60)) {
			continue
		}

		status := 1
		switch {
		case s.today.IsBetween(vacation.Start, vacation.End):
			status = 0
		case vacation.End.Before(s.today):
			status = -1
		}

		items = append(items, domain.WhosOutItem{
			Start:    vacation.Start,
			End:      vacation.End,
			MemberID: vacation.MemberID,
			Reason:   vacation.Reason(),
			Approved: vacation.Approved,
			Status:   status,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Status != items[j].Status {
			return items[i].Status < items[j].Status
		}
		return items[i].Start.Before(items[j].Start)
	})
	return items
}

func (s *Scheduler) CurrentHolidays(date domain.Date) []domain.Holiday {
	matched := make([]domain.Holiday, 0)
	for _, holiday := range s.holidays {
		if holiday.Date.Equal(date) {
			matched = append(matched, holiday)
		}
	}
	return matched
}

func (s *Scheduler) IsHoliday(date domain.Date) bool {
	return len(s.CurrentHolidays(date)) > 0
}

func (s *Scheduler) HolidayName(date domain.Date) string {
	holidays := s.CurrentHolidays(date)
	if len(holidays) == 0 {
		return ""
	}
	return holidays[0].Name
}

// IsHolidayForAllTeamMembers 判断当天是否每个在岗成员都有覆盖的区间
func (s *Scheduler) IsHolidayForAllTeamMembers(date domain.Date) bool {
	if len(s.active) == 0 {
		return false
	}

	covered := make(map[string]bool)
	for _, rule := range s.dayRules {
		if rule.Covers(date) {
			covered[rule.MemberID] = true
		}
	}

	for _, member := range s.active {
		if !covered[member.MemberID] {
			return false
		}
	}
	return true
}

// GetAllHolidayName 聚合当天在岗成员的缺勤原因：如果出现次数最多的原因
// 覆盖了所有在岗成员，只返回它；否则按出现次数降序（同次数按名称升序）
// 拼接所有原因
func (s *Scheduler) GetAllHolidayName(date domain.Date) string {
	reasonCount := make(map[string]int)

	for _, member := range s.active {
		seen := make(map[string]bool)
		for _, rule := range s.dayRules {
			if rule.MemberID != member.MemberID || !rule.Covers(date) {
				continue
			}
			for _, reason := range rule.Reasons {
				if reason != "" && !seen[reason] {
					seen[reason] = true
					reasonCount[reason]++
				}
			}
		}
	}

	if len(reasonCount) == 0 {
		return ""
	}

	reasons := make([]string, 0, len(reasonCount))
	for reason := range reasonCount {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool {
		if reasonCount[reasons[i]] != reasonCount[reasons[j]] {
			return reasonCount[reasons[i]] > reasonCount[reasons[j]]
		}
		return reasons[i] < reasons[j]
	})

	if reasonCount[reasons[0]] == len(s.active) {
		return reasons[0]
	}
	return strings.Join(reasons, ", ")
}

// SlotIndex 把日期映射到展示用的两周网格：本周（相对 today）的周一到
// 周五是 0~4，下周是 5~9，网格之外或周末返回 -1，
// -1 最终会以空缺候选的身份走候补搜索
func (s *Scheduler) SlotIndex(date domain.Date) int {
	weekday := (int(date.Weekday()) + 6) % 7 // 周一为 0
	if weekday >= slotsPerWeek {
		return -1
	}

	thisMonday := s.today.PreviousMonday()
	switch {
	case date.PreviousMonday().Equal(thisMonday):
		return weekday
	case date.PreviousMonday().Equal(thisMonday.AddDays(7)):
		return slotsPerWeek + weekday
	default:
		return -1
	}
}

// GetScrumMaster 解析 (date, slotIndex) 的最终值日人：
// 先取轮换表上的候选，替班规则无条件覆盖，候选空缺或在休假时走候补搜索。
// 永远不返回错误，解析不出来时 Path 为 unknown
func (s *Scheduler) GetScrumMaster(date domain.Date, slotIndex int) *domain.DutyAssignment {
	twoWeek := s.TwoWeekTeamMembers()

	candidate := ""
	if slotIndex >= 0 && slotIndex < len(twoWeek) {
		candidate = twoWeek[slotIndex]
	}
	path := domain.PathRotation

	for _, replacement := range s.replacements {
		if replacement.Approved && replacement.Covers(date) {
			candidate = replacement.MemberID
			path = domain.PathOverride
			break
		}
	}

	if candidate == "" || s.IsOnVacation(date, candidate) {
		candidate = s.FirstFreeBackup(date, candidate, twoWeek)
		path = domain.PathBackup
	}

	member := s.GetTeamMember(candidate)
	if member == nil {
		path = domain.PathUnknown
	}

	return &domain.DutyAssignment{
		Date:      date,
		SlotIndex: slotIndex,
		MemberID:  candidate,
		Member:    member,
		Path:      path,
	}
}

// GetScrumMasterName 是给展示层的便捷入口
func (s *Scheduler) GetScrumMasterName(date domain.Date, slotIndex int) string {
	assignment := s.GetScrumMaster(date, slotIndex)
	if assignment.Member == nil {
		return "Unknown"
	}
	return assignment.Member.Name
}

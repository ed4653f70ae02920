package domain

import "strings"

const (
	StatusActive = "Active"

	RuleVacation    = "Vacation"
	RuleReplacement = "Replacement"
)

// TeamMember 是归一化之后的成员视图（csv 字段已拆分，数字字段已容错转换）
type TeamMember struct {
	MemberID      string   `json:"memberId"`
	Name          string   `json:"name"`
	ShortName     string   `json:"shortName"`
	Status        string   `json:"status"`
	PeekOrder     int      `json:"peekOrder"`
	DayBackup     bool     `json:"dayBackup"`
	BackupMembers []string `json:"backupMembers"`
	FixedDay      int      `json:"fixedDay"`
	Country       string   `json:"country"`
}

func (m *TeamMember) IsActive() bool {
	return m.Status == StatusActive
}

// DayRule 是合并之后的请假/替班区间，只由区间合并器产出，之后不再修改
type DayRule struct {
	MemberID string   `json:"memberId"`
	Type     string   `json:"type"`
	Start    Date     `json:"start"`
	End      Date     `json:"end"`
	Approved bool     `json:"approved"`
	Reasons  []string `json:"reasons"`
}

// Reason 是各条原因按出现顺序去重后的拼接
func (r *DayRule) Reason() string {
	return strings.Join(r.Reasons, ", ")
}

// Covers 判断 date 是否落在该区间内（含两端）
func (r *DayRule) Covers(date Date) bool {
	return date.IsBetween(r.Start, r.End)
}

type Holiday struct {
	Date    Date   `json:"date"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// WhosOutItem 的 status：-1 已结束，0 进行中，1 未开始
type WhosOutItem struct {
	Start    Date   `json:"start"`
	End      Date   `json:"end"`
	MemberID string `json:"memberId"`
	Reason   string `json:"reason"`
	Approved bool   `json:"approved"`
	Status   int    `json:"status"`
}

// 值日归属的解析路径，用于诊断
const (
	PathOverride = "override" // 替班规则直接指定
	PathRotation = "rotation" // 按轮换表命中
	PathBackup   = "backup"   // 轮换人不可用，走候补搜索
	PathUnknown  = "unknown"  // 找不到任何可用成员
)

// DutyAssignment 是 (date, slotIndex) 查询的最终结果。
// Member 为 nil 时 Path 一定是 unknown，解析失败不是错误
type DutyAssignment struct {
	Date      Date        `json:"date"`
	SlotIndex int         `json:"slotIndex"`
	MemberID  string      `json:"memberId"`
	Member    *TeamMember `json:"member"`
	Path      string      `json:"path"`
}

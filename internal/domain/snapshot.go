package domain

// Snapshot 是引擎消费的唯一数据契约，对应表格导出的三个集合。
// 快照本身是不可变的：刷新时整体替换引用，绝不原地修改
type Snapshot struct {
	TeamMembers []TeamMemberRecord `json:"teamMembers"`
	DayRules    []DayRuleRecord    `json:"dayRules"`
	Holidays    []HolidayRecord    `json:"holidays"`
}

// TeamMemberRecord 是成员的原始记录，数字字段可能是数字、数字字符串或空串
type TeamMemberRecord struct {
	MemberID      string  `json:"memberId"`
	Name          string  `json:"name"`
	ShortName     string  `json:"shortName"`
	Status        string  `json:"status"`
	PeekOrder     FlexInt `json:"peekOrder"`
	DayBackup     bool    `json:"dayBackup"`
	BackupMembers string  `json:"backupMembers"` // 逗号分隔的 memberId 列表
	FixedDay      FlexInt `json:"fixedDay"`      // 1~5，0 表示没有固定位置
	Country       string  `json:"country"`
}

// DayRuleRecord 是请假/替班的原始记录，start 和 end 都是含端点的纯日期
type DayRuleRecord struct {
	MemberID string `json:"memberId"`
	Type     string `json:"type"`
	Start    Date   `json:"start"`
	End      Date   `json:"end"`
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

// HolidayRecord 的 country 是逗号分隔的国家列表，为空表示不关联任何成员
type HolidayRecord struct {
	Date    Date   `json:"date"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

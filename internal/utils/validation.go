package utils

import (
	"fmt"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

// ValidateMergedDayRules 检查合并结果的不变式：
// 每条区间 start <= end，且同一成员同一类型的区间互不重叠。
// 这是唯一应当被当作硬性失败的条件，数据质量问题不算
func ValidateMergedDayRules(rules []domain.DayRule) error {
	grouped := make(map[string][]domain.DayRule)
	for _, rule := range rules {
		if rule.End.Before(rule.Start) {
			return fmt.Errorf("成员 %s 的 %s 区间开始日期晚于结束日期: %s > %s", rule.MemberID, rule.Type, rule.Start, rule.End)
		}
		key := rule.MemberID + "/" + rule.Type
		grouped[key] = append(grouped[key], rule)
	}

	for key, group := range grouped {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if !group[i].End.Before(group[j].Start) && !group[j].End.Before(group[i].Start) {
					return fmt.Errorf("%s 存在重叠区间: [%s, %s] 和 [%s, %s]", key, group[i].Start, group[i].End, group[j].Start, group[j].End)
				}
			}
		}
	}

	return nil
}

// ValidateRotation 检查轮换表的长度不变式：要么全空（名单为空），要么恰好 10 位
func ValidateRotation(twoWeekTeamMembers []string) error {
	if len(twoWeekTeamMembers) == 0 {
		return nil
	}
	if len(twoWeekTeamMembers) != 10 {
		return fmt.Errorf("轮换表长度应为 10，实际为 %d", len(twoWeekTeamMembers))
	}
	return nil
}

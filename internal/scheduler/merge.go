package scheduler

import (
	"sort"
	"strings"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

// expandHolidays 把带国家标记的节假日展开成对应国家成员的单日请假记录。
// 展开出的记录会和个人请假一起参与合并，所以节假日可以把相邻的假期接起来
func expandHolidays(holidays []domain.Holiday, members []*domain.TeamMember) []domain.DayRuleRecord {
	expanded := make([]domain.DayRuleRecord, 0)

	for _, holiday := range holidays {
		if strings.TrimSpace(holiday.Country) == "" {
			continue
		}

		countries := make(map[string]bool)
		for _, c := range strings.Split(holiday.Country, ",") {
			c = strings.ToLower(strings.TrimSpace(c))
			if c != "" {
				countries[c] = true
			}
		}
		if len(countries) == 0 {
			continue
		}

		for _, member := range members {
			if member.Country == "" || !countries[strings.ToLower(strings.TrimSpace(member.Country))] {
				continue
			}
			expanded = append(expanded, domain.DayRuleRecord{
				MemberID: member.MemberID,
				Type:     domain.RuleVacation,
				Start:    holiday.Date,
				End:      holiday.Date,
				Approved: true,
				Reason:   holiday.Name + " (holiday)",
			})
		}
	}

	return expanded
}

type ruleGroupKey struct {
	memberID string
	ruleType string
}

// mergeDayRules 把同一个成员同一类型的原始区间合并成互不重叠的区间：
// 重叠、包含、以及只隔着周末的记录都会并成一条，原因按出现顺序去重累积。
// 输出按开始日期降序（沿用展示约定）
func mergeDayRules(records []domain.DayRuleRecord) []domain.DayRule {
	groups := make(map[ruleGroupKey][]domain.DayRuleRecord)
	keys := make([]ruleGroupKey, 0)
	for _, record := range records {
		key := ruleGroupKey{memberID: record.MemberID, ruleType: record.Type}
		if _, exists := groups[key]; !exists {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], record)
	}

	merged := make([]domain.DayRule, 0, len(records))
	for _, key := range keys {
		merged = append(merged, mergeGroup(groups[key])...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[j].Start.Before(merged[i].Start)
	})
	return merged
}

func mergeGroup(records []domain.DayRuleRecord) []domain.DayRule {
	if len(records) == 0 {
		return nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Start.Before(records[j].Start)
	})

	mergedList := make([]domain.DayRule, 0)

	current := records[0]
	start := current.Start
	end := current.End
	reasons := appendReason(nil, current.Reason)

	for _, record := range records[1:] {
		switch {
		case record.Start.Equal(end.NextWorkDay()):
			// 只隔着周末的两段假期视为连续。
			// 历史实现在这个分支里无条件用新记录的 end，保持一致
			current = record
			end = record.End
			reasons = appendReason(reasons, record.Reason)
		case record.Start.IsBetween(start, end):
			current = record
			if record.End.After(end) {
				end = record.End
			}
			reasons = appendReason(reasons, record.Reason)
		default:
			mergedList = append(mergedList, domain.DayRule{
				MemberID: current.MemberID,
				Type:     current.Type,
				Start:    start,
				End:      end,
				Approved: current.Approved,
				Reasons:  reasons,
			})
			current = record
			start = record.Start
			end = record.End
			reasons = appendReason(nil, record.Reason)
		}
	}

	mergedList = append(mergedList, domain.DayRule{
		MemberID: current.MemberID,
		Type:     current.Type,
		Start:    start,
		End:      end,
		Approved: current.Approved,
		Reasons:  reasons,
	})
	return mergedList
}

// appendReason 按出现顺序累积原因，跳过空值和重复值
func appendReason(reasons []string, reason string) []string {
	if reasons == nil {
		reasons = make([]string, 0, 1)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return reasons
	}
	for _, existing := range reasons {
		if existing == reason {
			return reasons
		}
	}
	return append(reasons, reason)
}

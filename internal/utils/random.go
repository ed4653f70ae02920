package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateMemberIDFromChineseName 用姓名的拼音加随机数字生成 memberId
func GenerateMemberIDFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	memberID := strings.Join(pinyinArray, "")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		memberID += string(digits[rand.Intn(len(digits))])
	}

	return memberID
}

var countries = []string{"china", "serbia", "germany"}

// GenerateRandomTeamMember 生成一个随机的在岗成员记录
func GenerateRandomTeamMember(peekOrder int) *domain.TeamMemberRecord {
	name := GenerateRandomChineseName()

	record := &domain.TeamMemberRecord{
		MemberID:  GenerateMemberIDFromChineseName(name),
		Name:      name,
		Status:    domain.StatusActive,
		PeekOrder: domain.FlexInt(peekOrder),
		DayBackup: rand.Intn(4) == 0, // 大约四分之一的成员是双周模式
		Country:   countries[rand.Intn(len(countries))],
	}

	// 少数成员有固定的值日位置
	if rand.Intn(5) == 0 {
		record.FixedDay = domain.FlexInt(rand.Intn(5) + 1)
	}

	return record
}

// GenerateRandomDayRule 在 today 前后生成一条随机请假记录
func GenerateRandomDayRule(memberID string, today domain.Date) *domain.DayRuleRecord {
	start := today.AddDays(rand.Intn(40) - 10)
	end := start.AddDays(rand.Intn(5))

	return &domain.DayRuleRecord{
		MemberID: memberID,
		Type:     domain.RuleVacation,
		Start:    start,
		End:      end,
		Approved: rand.Intn(10) != 0,
		Reason:   fmt.Sprintf("年假 %d", rand.Intn(1000)),
	}
}

var holidayNames = []string{"元旦", "春节", "劳动节", "国庆节", "中秋节"}

// GenerateRandomHoliday 生成一条随机节假日记录
func GenerateRandomHoliday(today domain.Date) *domain.HolidayRecord {
	return &domain.HolidayRecord{
		Date:    today.AddDays(rand.Intn(60) - 10),
		Name:    holidayNames[rand.Intn(len(holidayNames))] + fmt.Sprintf(" %d", rand.Intn(100)),
		Country: countries[rand.Intn(len(countries))],
	}
}

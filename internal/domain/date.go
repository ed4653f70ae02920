package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date 是一个不可变的"纯日期"值，引擎内部所有的日期运算都以天为粒度
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 丢弃时刻部分，只保留日期
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate 兼容纯日期和带时刻的 ISO 格式，上游数据源两种都会出现
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("无法解析日期 %q", s)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// NonWorkingDay 判断是否是周末
func (d Date) NonWorkingDay() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextWorkDay 返回严格在 d 之后的第一个工作日
func (d Date) NextWorkDay() Date {
	next := d.AddDays(1)
	for next.NonWorkingDay() {
		next = next.AddDays(1)
	}
	return next
}

// PreviousWorkDay 返回严格在 d 之前的最后一个工作日
func (d Date) PreviousWorkDay() Date {
	prev := d.AddDays(-1)
	for prev.NonWorkingDay() {
		prev = prev.AddDays(-1)
	}
	return prev
}

// PreviousMonday 返回 d 所在那一周的周一（d 是周一时返回自身）
func (d Date) PreviousMonday() Date {
	diff := (7 + int(d.t.Weekday()) - int(time.Monday)) % 7
	return d.AddDays(-diff)
}

// IsBetween 判断 d 是否落在 [start, end] 内（两端都包含）
func (d Date) IsBetween(start, end Date) bool {
	return !d.Before(start) && d.Before(end.AddDays(1))
}

// Seed 把日期编码成整数种子：year*10000 + month*100 + day
func (d Date) Seed() int {
	return d.Year()*10000 + int(d.Month())*100 + d.Day()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 对空值不报错，交由上层按缺失处理（契约要求上游提供规范化的日期）
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

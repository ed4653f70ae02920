package domain

import (
	"strconv"
	"strings"
)

// FlexInt 兼容上游表格导出里数字字段的各种形态。
// 回退表：
//
//	数字        -> 取整
//	"5"         -> 5
//	"" / "  "   -> 0
//	null        -> 0
//	无法解析    -> 0
//
// fixedDay 等可选字段以 0 表示缺失（排班位置是 1 起始的，0 永远不会命中）
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(i)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(v))
		return nil
	}

	// 数据质量问题不报错，按缺失处理
	*f = 0
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

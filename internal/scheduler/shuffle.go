package scheduler

import (
	"math"
	"math/rand"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
)

// 历史实现运行在 JavaScript 上，所有算术都是 IEEE-754 双精度：
// a*state 会超过 2^53 产生舍入，取模也是浮点取模。
// 这里必须原样保留这套运算，换成整数运算会让以前公布过的候补顺序整体变化
const (
	lcgModulus    = float64(1 << 31)
	lcgMultiplier = float64(1103515245)
	lcgIncrement  = float64(12345)
)

type lcg struct {
	state float64
}

func newLCG(seed int) *lcg {
	state := float64(seed)
	if seed == 0 {
		// 没有显式种子时退化为不可复现的随机序列
		state = math.Floor(rand.Float64() * (lcgModulus - 1))
	}
	return &lcg{state: state}
}

// next 返回 [0,1) 上的下一个伪随机数
func (g *lcg) next() float64 {
	g.state = math.Mod(lcgMultiplier*g.state+lcgIncrement, lcgModulus)
	return g.state / (lcgModulus - 1)
}

// Shuffle 用种子打乱成员列表，同样的 (members, seed) 永远得到同样的顺序。
// 形态沿用历史实现：先单独抽一个"第一名"，剩下的再做一轮从尾到头的
// Fisher-Yates，两段用的是同一个生成器
func Shuffle(members []*domain.TeamMember, seed int) []*domain.TeamMember {
	if len(members) == 0 {
		return []*domain.TeamMember{}
	}

	random := newLCG(seed)

	firstIndex := int(random.next() * float64(len(members)))
	first := members[firstIndex]

	rest := make([]*domain.TeamMember, 0, len(members)-1)
	rest = append(rest, members[:firstIndex]...)
	rest = append(rest, members[firstIndex+1:]...)

	for i := len(rest) - 1; i > 0; i-- {
		j := int(random.next() * float64(i+1))
		rest[i], rest[j] = rest[j], rest[i]
	}

	result := make([]*domain.TeamMember, 0, len(members))
	result = append(result, first)
	result = append(result, rest...)
	return result
}

// DateSeed 是按日期驱动洗牌时的种子约定
func DateSeed(date domain.Date) int {
	return date.Seed() * 13
}

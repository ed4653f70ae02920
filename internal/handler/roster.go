package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/scheduler"
)

func (h *Handler) GetAllTeamMembers(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)
	h.successResponse(w, r, "获取成员列表成功", s.TeamMembers())
}

func (h *Handler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(TeamMemberCtx).(*domain.TeamMember)
	h.successResponse(w, r, "获取成员成功", member)
}

func (h *Handler) GetDayRules(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)
	h.successResponse(w, r, "获取合并区间成功", s.DayRules())
}

func (h *Handler) GetVacations(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)
	h.successResponse(w, r, "获取休假列表成功", s.Vacations())
}

func (h *Handler) GetReplacements(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)
	h.successResponse(w, r, "获取替班列表成功", s.Replacements())
}

func (h *Handler) GetWhosOut(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)
	h.successResponse(w, r, "获取缺勤窗口成功", s.WhosOut())
}

// GetHolidayNames 返回某天在岗成员缺勤原因的聚合结果，date 缺省为今天
func (h *Handler) GetHolidayNames(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)

	date := s.Today()
	if param := r.URL.Query().Get("date"); param != "" {
		parsed, err := domain.ParseDate(param)
		if err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
		date = parsed
	}

	data := map[string]any{
		"date":          date,
		"isHoliday":     s.IsHoliday(date),
		"holidayName":   s.GetAllHolidayName(date),
		"coversAll":     s.IsHolidayForAllTeamMembers(date),
		"holidaysToday": s.CurrentHolidays(date),
	}
	h.successResponse(w, r, "获取节假日聚合成功", data)
}

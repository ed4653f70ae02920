package handler

import (
	"log/slog"
	"net/http"

	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/scheduler"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/utils"
)

type rotationSlot struct {
	SlotIndex  int                    `json:"slotIndex"`
	Date       domain.Date            `json:"date"`
	MemberID   string                 `json:"memberId"`
	Assignment *domain.DutyAssignment `json:"assignment"`
}

// GetRotation 返回两周轮换表，并附上网格内每个位置在当天的最终解析结果
func (h *Handler) GetRotation(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)

	twoWeek := s.TwoWeekTeamMembers()
	if err := utils.ValidateRotation(twoWeek); err != nil {
		// 轮换表不变式被破坏说明快照数据有严重问题，记录但继续返回
		slog.Error("轮换表不变式被破坏", "error", err)
	}

	monday := s.Today().PreviousMonday()
	slots := make([]rotationSlot, 0, len(twoWeek))
	for i, memberID := range twoWeek {
		date := monday.AddDays(i)
		if i >= 5 {
			// 第二周从下周一开始，跳过中间的周末
			date = monday.AddDays(7 + (i - 5))
		}
		slots = append(slots, rotationSlot{
			SlotIndex:  i,
			Date:       date,
			MemberID:   memberID,
			Assignment: s.GetScrumMaster(date, i),
		})
	}

	h.successResponse(w, r, "获取轮换表成功", map[string]any{
		"twoWeekTeamMembers": twoWeek,
		"slots":              slots,
	})
}

func (h *Handler) ResolveDuty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date      string `json:"date" validate:"required,datetime=2006-01-02"`
		SlotIndex *int   `json:"slotIndex" validate:"omitempty,min=-1,max=9"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.errorResponse(w, r, "日期格式无效")
		return
	}

	// 不传 slotIndex 时按日期在两周网格里的位置推算
	slotIndex := s.SlotIndex(date)
	if req.SlotIndex != nil {
		slotIndex = *req.SlotIndex
	}

	assignment := s.GetScrumMaster(date, slotIndex)
	h.successResponse(w, r, "解析值日人成功", assignment)
}

package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/scheduler"
)

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Current()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.successResponse(w, r, "获取快照成功", snap)
}

// RefreshSnapshot 重新拉取快照。如果刷新导致今天的值日人发生变化，
// 向通知队列投递一条值日变更消息，由 mail worker 发送邮件
func (h *Handler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	today := domain.DateOf(time.Now())

	before := h.resolveToday(today)

	snap, err := h.provider.Refresh(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	after := h.resolveToday(today)
	if after != nil && (before == nil || before.MemberID != after.MemberID) {
		h.publishDutyChange(today, after)
	}

	h.successResponse(w, r, "刷新快照成功", map[string]any{
		"teamMembers": len(snap.TeamMembers),
		"dayRules":    len(snap.DayRules),
		"holidays":    len(snap.Holidays),
	})
}

func (h *Handler) resolveToday(today domain.Date) *domain.DutyAssignment {
	snap, err := h.provider.Current()
	if err != nil {
		return nil
	}
	s := scheduler.New(snap, today)
	return s.GetScrumMaster(today, s.SlotIndex(today))
}

func (h *Handler) publishDutyChange(today domain.Date, assignment *domain.DutyAssignment) {
	memberName := "Unknown"
	if assignment.Member != nil {
		memberName = assignment.Member.Name
	}

	message := domain.MailMessage{
		Type: "duty_change",
		To:   h.config.Email.NotifyTo,
		Data: domain.DutyChangeMailData{
			Date:       today.String(),
			MemberName: memberName,
			Path:       assignment.Path,
		},
	}

	body, err := json.Marshal(message)
	if err != nil {
		slog.Error("无法序列化通知消息", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		"notify_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		// 通知失败不影响刷新本身
		slog.Error("无法投递值日变更通知", "error", err)
	}
}

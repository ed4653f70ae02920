package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/domain"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/scheduler"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/snapshot"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// scheduler 中间件把当前快照解析成一个只读的调度器挂在 context 上，
// today 取请求时刻的日期，保证同一个请求里所有计算基于同一个"今天"
func (h *Handler) scheduler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap, err := h.provider.Current()
		if err != nil {
			switch {
			case errors.Is(err, snapshot.ErrNoSnapshot):
				h.errorResponse(w, r, "快照尚未加载，请先刷新")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		s := scheduler.New(snap, domain.DateOf(time.Now()))
		ctx := context.WithValue(r.Context(), SchedulerCtx, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) teamMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(SchedulerCtx).(*scheduler.Scheduler)

		memberID := chi.URLParam(r, "id")
		member := s.GetTeamMember(memberID)
		if member == nil {
			h.errorResponse(w, r, "成员不存在")
			return
		}

		ctx := context.WithValue(r.Context(), TeamMemberCtx, member)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/config"
	"github.com/sysu-ecnc-dev/scrum-master/backend/internal/snapshot"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	translator    ut.Translator
	notifyChannel *amqp.Channel
	provider      *snapshot.Provider

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, provider *snapshot.Provider, notifyCh *amqp.Channel) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		translator:    trans,
		notifyChannel: notifyCh,
		provider:      provider,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 快照管理
	h.Mux.Route("/snapshot", func(r chi.Router) {
		r.Post("/refresh", h.RefreshSnapshot)
		r.With(h.scheduler).Get("/", h.GetSnapshot)
	})

	// 以下 API 都基于当前快照计算，没有快照时统一返回错误响应
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.scheduler)

		r.Route("/team-members", func(r chi.Router) {
			r.Get("/", h.GetAllTeamMembers)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.teamMember)
				r.Get("/", h.GetTeamMember)
			})
		})

		r.Get("/day-rules", h.GetDayRules)
		r.Get("/vacations", h.GetVacations)
		r.Get("/replacements", h.GetReplacements)
		r.Get("/whos-out", h.GetWhosOut)
		r.Get("/holiday-names", h.GetHolidayNames)

		r.Route("/duty", func(r chi.Router) {
			r.Get("/rotation", h.GetRotation)
			r.Post("/resolve", h.ResolveDuty)
		})
	})
}

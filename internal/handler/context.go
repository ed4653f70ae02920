package handler

type ContextKey string

var (
	SchedulerCtx  ContextKey = "scheduler"
	TeamMemberCtx ContextKey = "teamMember"
)

package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type DutyChangeMailData struct {
	Date       string `json:"date"`
	MemberName string `json:"memberName"`
	Path       string `json:"path"`
}

package mail

type LeadAssignedEmailData struct {
	AgentName string
	LeadName  string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

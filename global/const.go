package global

const (
	AppVersion = "1.0.0" //project version shown in logs and the health endpoint

	// Placeholder tokens recognized inside the docx templates.
	// These are the exact literal strings typed into the template body;
	// matching is case-sensitive and nothing else is treated as a token.
	TokenGreeting = "{{GREETING}}"
	TokenEmail    = "{{GMAIL}}"
	TokenUsername = "{{CANVAS_USERNAME}}"
)

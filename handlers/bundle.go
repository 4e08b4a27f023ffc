package handlers

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	Investors  *InvestorHandler
	Clients    *ClientHandler
	Board      *BoardHandler
	Meetings   *MeetingHandler
	Onboarding *OnboardingHandler
	Health     *HealthHandler
}

package handlers

// HandlerBundle groups the HTTP handlers so route registration takes a single
// argument.
type HandlerBundle struct {
	Booking  *BookingHandler
	Webhook  *WebhookHandler
	Studio   *StudioHandler
	Calendar *CalendarHandler
}

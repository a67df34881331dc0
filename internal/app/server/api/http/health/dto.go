package health

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the gateway"`
	Backend string `json:"backend" example:"up" enum:"up,down" doc:"Whether the banking backend answers"`
	Error   string `json:"error,omitempty" doc:"Why the backend is considered down"`
}

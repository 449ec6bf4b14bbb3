package health

// Response represents the health check response
type Response struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Docstore string `json:"docstore,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

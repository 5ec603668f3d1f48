package health

import "github.com/Sjking2025/resume-builder-pro/internal/llm"

const serviceName = "resume-builder-backend"

// Service encapsulates health-related checks.
type Service struct {
	model llm.Config
}

// NewService constructs a new health service for the given model configuration.
func NewService(model llm.Config) *Service {
	return &Service{model: model}
}

// Status reports liveness plus which provider is selected and whether its key is set.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"status":      "healthy",
		"service":     serviceName,
		"provider":    s.model.Provider,
		"api_key_set": s.model.Configured(),
	}
}

package promptai

// Default models used when ServiceConfig.Model is empty.
const (
	DefaultOpenAIModel = "text-davinci-003"
	DefaultCohereModel = "medium"
)

// BuildPayload shapes the JSON body for service. The caller's config.Options are merged
// last, so they can replace any field set here.
func BuildPayload(service Service, config ServiceConfig, prompt string) map[string]interface{} {
	var payload map[string]interface{}

	switch service {
	case ServiceOpenAI:
		payload = map[string]interface{}{
			"model":  modelOrDefault(config.Model, DefaultOpenAIModel),
			"prompt": prompt,
		}
	case ServiceHuggingFace:
		payload = map[string]interface{}{"inputs": prompt}
	case ServiceCohere:
		payload = map[string]interface{}{
			"model":  modelOrDefault(config.Model, DefaultCohereModel),
			"prompt": prompt,
		}
	case ServiceDeepAI:
		payload = map[string]interface{}{"text": prompt}
	case ServiceGoogleGemini:
		payload = map[string]interface{}{"prompt": prompt}
	default:
		payload = map[string]interface{}{"prompt": prompt}
	}

	for k, v := range config.Options {
		payload[k] = v
	}

	return payload
}

func modelOrDefault(model, fallback string) string {
	if model == "" {
		return fallback
	}
	return model
}

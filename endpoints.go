package promptai

// Provider URLs.
const (
	OpenAIEndpoint       = "https://api.openai.com/v1/completions"
	HuggingFaceEndpoint  = "https://api-inference.huggingface.co/models/"
	CohereEndpoint       = "https://api.cohere.ai/generate"
	DeepAIEndpoint       = "https://api.deepai.org/api/text-generator"
	GoogleGeminiEndpoint = "https://bard.google.com/api/gemini/query"
)

// serviceEndpoints has exactly one entry per supported service.
var serviceEndpoints = map[Service]func(config ServiceConfig) string{
	ServiceOpenAI:       func(ServiceConfig) string { return OpenAIEndpoint },
	ServiceHuggingFace:  func(config ServiceConfig) string { return HuggingFaceEndpoint + config.Model },
	ServiceCohere:       func(ServiceConfig) string { return CohereEndpoint },
	ServiceDeepAI:       func(ServiceConfig) string { return DeepAIEndpoint },
	ServiceGoogleGemini: func(ServiceConfig) string { return GoogleGeminiEndpoint },
	ServiceCustom:       func(config ServiceConfig) string { return config.Endpoint },
}

// ResolveURL returns endpoint when it is non-empty and otherwise the URL registered for
// service. It returns an empty string for the custom service without a configured endpoint
// and for unknown services; the request made against it then fails at the transport level.
func ResolveURL(service Service, config ServiceConfig, endpoint string) string {
	if endpoint != "" {
		return endpoint
	}

	resolve, ok := serviceEndpoints[service]
	if !ok {
		return ""
	}
	return resolve(config)
}

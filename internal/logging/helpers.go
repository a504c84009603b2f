package logging

// Package-level convenience helpers, one set per category.

// Boot logs startup events.
func Boot(format string, args ...interface{}) { Get(CategoryBoot).Info(format, args...) }

// BootError logs startup failures.
func BootError(format string, args ...interface{}) { Get(CategoryBoot).Error(format, args...) }

// Store logs reference-store events.
func Store(format string, args ...interface{}) { Get(CategoryStore).Info(format, args...) }

// StoreDebug logs reference-store details.
func StoreDebug(format string, args ...interface{}) { Get(CategoryStore).Debug(format, args...) }

// Router logs strategy dispatch decisions.
func Router(format string, args ...interface{}) { Get(CategoryRouter).Info(format, args...) }

// RouterDebug logs dispatch details.
func RouterDebug(format string, args ...interface{}) { Get(CategoryRouter).Debug(format, args...) }

// RouterError logs dispatch failures.
func RouterError(format string, args ...interface{}) { Get(CategoryRouter).Error(format, args...) }

// Intent logs classification results.
func Intent(format string, args ...interface{}) { Get(CategoryIntent).Info(format, args...) }

// IntentError logs classification failures.
func IntentError(format string, args ...interface{}) { Get(CategoryIntent).Error(format, args...) }

// Gateway logs scrape/news gateway calls.
func Gateway(format string, args ...interface{}) { Get(CategoryGateway).Info(format, args...) }

// GatewayError logs gateway failures.
func GatewayError(format string, args ...interface{}) { Get(CategoryGateway).Error(format, args...) }

// LLM logs generative-service calls.
func LLM(format string, args ...interface{}) { Get(CategoryLLM).Info(format, args...) }

// LLMError logs generative-service failures.
func LLMError(format string, args ...interface{}) { Get(CategoryLLM).Error(format, args...) }

// UI logs chat surface events.
func UI(format string, args ...interface{}) { Get(CategoryUI).Info(format, args...) }

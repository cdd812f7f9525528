package errors

import "fmt"

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configPath, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configPath)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_path", configPath).
		WithContext("operation", operation)
}

// WrapGenerationError wraps failures reported by the mock generator
func WrapGenerationError(stage string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s", stage)
	return Wrap(GenerationErrorCode, message, cause).
		WithContext("stage", stage)
}

// FileSystemError creates a file system error
func FileSystemError(operation, path, message string) *BaseError {
	fullMessage := fmt.Sprintf("failed to %s file '%s': %s", operation, path, message)
	return New(FileSystemErrorCode, fullMessage).
		WithContext("operation", operation).
		WithContext("path", path)
}

// ConfigurationError creates a configuration error
func ConfigurationError(configPath, message string) *BaseError {
	fullMessage := fmt.Sprintf("configuration error in '%s': %s", configPath, message)
	return New(ConfigurationErrorCode, fullMessage).
		WithContext("config_path", configPath)
}

// UsageError creates an error for invalid command-line usage
func UsageError(format string, args ...interface{}) *BaseError {
	return Newf(UsageErrorCode, format, args...)
}

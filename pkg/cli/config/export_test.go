package config

// ParseLogLevel exposes log level parsing for testing
var ParseLogLevel = parseLogLevel

// NewClientForTest creates a Client config for testing purposes
func NewClientForTest(apiURL, apiKey, agentID, configPath, output string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		agentID:    agentID,
		configPath: configPath,
		output:     output,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// Package domain defines the core domain models for the agent.
package domain

// TaskStatus is the status reported in a TaskResponse.
type TaskStatus string

const (
	// TaskStatusCompleted is the only status a TaskResponse ever carries.
	TaskStatusCompleted TaskStatus = "completed"
)

// RecordStatus is the outcome stored in the task journal.
type RecordStatus string

const (
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusFailed    RecordStatus = "failed"
	RecordStatusBlocked   RecordStatus = "blocked"
)

// Supported framework names.
const (
	FrameworkLangChain = "langchain"
	FrameworkCrewAI    = "crewai"
	FrameworkAutoGen   = "autogen"
)

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

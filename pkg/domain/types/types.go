package types

import "log/slog"

type (
	UserID         string
	GitHubLogin    string
	GitHubRepoID   int64
	RepoSlug       string
	CommitSHA      string
	AccessToken    string
	EncryptedToken string
	SessionSecret  string
	RunStatus      string
	RunConclusion  string
)

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
)

const (
	RunConclusionSuccess   RunConclusion = "success"
	RunConclusionFailure   RunConclusion = "failure"
	RunConclusionCancelled RunConclusion = "cancelled"
)

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}

func (x SessionSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SessionSecret) String() string {
	return "***********"
}

func (x EncryptedToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

package worker

import "github.com/GitRealm/dagu-check-tickets/internal/audit/domain"

// ActionExecute is the only inbound action the worker responds to.
const ActionExecute = "execute"

// Inbound is a message from the controlling process.
type Inbound struct {
	Action string `json:"action"`
	Inputs Inputs `json:"inputs"`
}

// Inputs carries the task fields on the wire.
type Inputs struct {
	BaseRef     string `json:"baseRef"`
	HeadRef     string `json:"headRef"`
	Owner       string `json:"owner"`
	Repo        string `json:"repo"`
	GitHubToken string `json:"githubToken"`
}

// Task converts the wire inputs into a domain task.
func (in Inputs) Task() domain.Task {
	return domain.Task{
		BaseRef:   in.BaseRef,
		HeadRef:   in.HeadRef,
		Owner:     in.Owner,
		Repo:      in.Repo,
		AuthToken: in.GitHubToken,
	}
}

// Record is one validation outcome on the wire. PRNumber serializes as null
// when the commit is not linked to any pull request.
type Record struct {
	Commit     string `json:"commit"`
	PRNumber   *int   `json:"prNumber"`
	Compliance bool   `json:"compliance"`
}

// ResultMessage is the terminal success message.
type ResultMessage struct {
	Action string   `json:"action"`
	Data   []Record `json:"data"`
}

// ErrorMessage is the terminal failure message.
type ErrorMessage struct {
	Action string `json:"action"`
	Error  string `json:"error"`
}

// NewResultMessage builds the success envelope. Data is always a JSON array,
// never null, even for an empty result.
func NewResultMessage(records []domain.ValidationRecord) ResultMessage {
	data := make([]Record, 0, len(records))
	for _, r := range records {
		data = append(data, Record{
			Commit:     string(r.Commit),
			PRNumber:   r.PRNumber,
			Compliance: r.Compliant,
		})
	}
	return ResultMessage{Action: "result", Data: data}
}

// NewErrorMessage builds the failure envelope from an error's text.
func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Action: "error", Error: err.Error()}
}

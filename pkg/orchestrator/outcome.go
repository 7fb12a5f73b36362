package orchestrator

// OutcomeKind classifies the result of a submission attempt.
type OutcomeKind string

const (
	OutcomeInvalid OutcomeKind = "invalid"
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
)

// Stage names the call that produced an outcome.
type Stage string

const (
	StageLoad   Stage = "load"
	StageSubmit Stage = "submit"
)

// Outcome is the single user-facing result of one attempt.
type Outcome struct {
	Kind    OutcomeKind
	Stage   Stage
	Message string
	// StatusCode is the POST response status, zero when no response arrived.
	StatusCode int
	// Err holds the transport error behind a failure, if any.
	Err error
}

// Success reports whether the profile was created.
func (o Outcome) Success() bool {
	return o.Kind == OutcomeSuccess
}

// Messages holds the user-facing text for each outcome.
type Messages struct {
	Invalid     string
	Success     string
	Failure     string
	LoadFailure string
}

// DefaultMessages returns the built-in outcome text.
func DefaultMessages() Messages {
	return Messages{
		Invalid:     "Please, make sure all of the fields are valid.",
		Success:     "Your profile has been created!",
		Failure:     "Something went wrong while creating your profile. Please, try again.",
		LoadFailure: "The form options could not be loaded.",
	}
}

func (m Messages) withDefaults() Messages {
	def := DefaultMessages()
	if m.Invalid == "" {
		m.Invalid = def.Invalid
	}
	if m.Success == "" {
		m.Success = def.Success
	}
	if m.Failure == "" {
		m.Failure = def.Failure
	}
	if m.LoadFailure == "" {
		m.LoadFailure = def.LoadFailure
	}
	return m
}

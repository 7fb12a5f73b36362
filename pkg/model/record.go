package model

// FormRecord is the payload posted to the form endpoint. The orchestrator only
// builds one after every field has been validated, and never mutates it
// afterwards.
type FormRecord struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Occupation string `json:"occupation" validate:"required"`
	State      string `json:"state" validate:"required"`
}

// NewRecord copies the raw values into a FormRecord.
func NewRecord(values Values) FormRecord {
	return FormRecord{
		Name:       values.Get(KindName),
		Email:      values.Get(KindEmail),
		Password:   values.Get(KindPassword),
		Occupation: values.Get(KindOccupation),
		State:      values.Get(KindState),
	}
}

// Values returns the record's fields keyed by kind.
func (r FormRecord) Values() Values {
	return Values{
		KindName:       r.Name,
		KindEmail:      r.Email,
		KindPassword:   r.Password,
		KindOccupation: r.Occupation,
		KindState:      r.State,
	}
}

// Redacted returns a copy safe for logs and echo responses.
func (r FormRecord) Redacted() FormRecord {
	out := r
	out.Password = ""
	return out
}

package formendpoint

import (
	"embed"
	"fmt"
	"io"
	"sync"

	"github.com/goliatone/go-signupform/pkg/formapi"
)

//go:embed data/form.json
var dataFS embed.FS

const defaultDataPath = "data/form.json"

// State is one entry of the states list.
type State struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// Data is the GET response body.
type Data struct {
	Occupations []string `json:"occupations"`
	States      []State  `json:"states"`
}

// Clone returns an independent copy with non-nil lists.
func (d Data) Clone() Data {
	return Data{
		Occupations: append([]string{}, d.Occupations...),
		States:      append([]State{}, d.States...),
	}
}

var (
	defaultOnce sync.Once
	defaultData Data
	defaultErr  error
)

// DefaultData returns the embedded lists.
func DefaultData() (Data, error) {
	defaultOnce.Do(func() {
		raw, err := dataFS.ReadFile(defaultDataPath)
		if err != nil {
			defaultErr = err
			return
		}
		defaultData, defaultErr = ParseData(raw)
	})

	if defaultErr != nil {
		return Data{}, defaultErr
	}
	return defaultData.Clone(), nil
}

// LoadData reads a GET body shaped document from r.
func LoadData(r io.Reader) (Data, error) {
	if r == nil {
		return Data{}, fmt.Errorf("formendpoint: missing reader")
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return Data{}, fmt.Errorf("formendpoint: read data: %w", err)
	}
	return ParseData(raw)
}

// ParseData decodes raw through the same path the client uses, so the served
// lists are guaranteed to be accepted by it.
func ParseData(raw []byte) (Data, error) {
	payload, err := formapi.DecodePayload(raw)
	if err != nil {
		return Data{}, fmt.Errorf("formendpoint: %w", err)
	}
	if _, err := payload.Choices(); err != nil {
		return Data{}, fmt.Errorf("formendpoint: %w", err)
	}

	data := Data{
		Occupations: make([]string, 0, len(payload.Occupations)),
		States:      make([]State, 0, len(payload.States)),
	}
	for _, entry := range payload.Occupations {
		name, ok := entry.(string)
		if !ok {
			return Data{}, fmt.Errorf("formendpoint: occupation entries must be strings, got %T", entry)
		}
		data.Occupations = append(data.Occupations, name)
	}
	for _, entry := range payload.States {
		record, ok := entry.(map[string]any)
		if !ok {
			return Data{}, fmt.Errorf("formendpoint: state entries must be objects, got %T", entry)
		}
		name, _ := record["name"].(string)
		abbr, _ := record["abbreviation"].(string)
		data.States = append(data.States, State{Name: name, Abbreviation: abbr})
	}
	return data, nil
}

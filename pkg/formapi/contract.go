package formapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contract.yaml
var contractDocument []byte

const (
	optionsSchemaName = "FormOptions"
	recordSchemaName  = "FormRecord"
)

// Contract exposes the schemas of the form endpoint.
type Contract struct {
	raw     []byte
	doc     *openapi3.T
	options *openapi3.Schema
	record  *openapi3.Schema
}

var (
	defaultContractOnce sync.Once
	defaultContract     *Contract
	defaultContractErr  error
)

// DefaultContract returns the embedded contract, loading it once.
func DefaultContract() (*Contract, error) {
	defaultContractOnce.Do(func() {
		defaultContract, defaultContractErr = LoadContract(context.Background(), ContractDocument())
	})
	return defaultContract, defaultContractErr
}

// ContractDocument returns a copy of the embedded OpenAPI document.
func ContractDocument() []byte {
	return append([]byte(nil), contractDocument...)
}

// LoadContract parses and validates an OpenAPI document describing the form
// endpoint. The document must define FormOptions and FormRecord schemas.
func LoadContract(ctx context.Context, raw []byte) (*Contract, error) {
	if len(raw) == 0 {
		return nil, errors.New("formapi: contract document is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("formapi: load contract: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("formapi: validate contract: %w", err)
	}
	if doc.Components == nil {
		return nil, errors.New("formapi: contract has no components")
	}

	options, err := lookupSchema(doc.Components.Schemas, optionsSchemaName)
	if err != nil {
		return nil, err
	}
	record, err := lookupSchema(doc.Components.Schemas, recordSchemaName)
	if err != nil {
		return nil, err
	}

	return &Contract{raw: append([]byte(nil), raw...), doc: doc, options: options, record: record}, nil
}

// Document returns a copy of the OpenAPI document the contract was loaded
// from.
func (c *Contract) Document() []byte {
	if c == nil {
		return nil
	}
	return append([]byte(nil), c.raw...)
}

func lookupSchema(schemas openapi3.Schemas, name string) (*openapi3.Schema, error) {
	ref, ok := schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("formapi: contract is missing schema %q", name)
	}
	return ref.Value, nil
}

// ValidateOptions checks a decoded GET body (the result of json.Unmarshal into
// an any) against the FormOptions schema.
func (c *Contract) ValidateOptions(value any) error {
	if c == nil || c.options == nil {
		return nil
	}
	if err := c.options.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedUpstream, err)
	}
	return nil
}

// ValidateRecord checks a decoded POST body against the FormRecord schema.
func (c *Contract) ValidateRecord(value any) error {
	if c == nil || c.record == nil {
		return nil
	}
	if err := c.record.VisitJSON(value); err != nil {
		return fmt.Errorf("formapi: invalid record: %w", err)
	}
	return nil
}

package formendpoint

import (
	"net/http"

	"github.com/goliatone/go-signupform/pkg/formapi"
	"github.com/goliatone/go-signupform/pkg/model"
)

// GuardFunc may reject a request before it is handled.
type GuardFunc func(r *http.Request) error

// Options configures the endpoint handler.
type Options struct {
	RoutePath string
	// Strict applies the field rules to posted records in addition to the
	// presence check.
	Strict       bool
	MaxBodyBytes int64
	Guard        GuardFunc
	// OnCreate is called with every accepted record, password included.
	OnCreate func(model.FormRecord)

	Data *Data
	// Contract checks posted bodies and is served under ContractPath. Nil
	// uses the embedded contract.
	Contract *formapi.Contract
}

type OptionFn func(*Options)

const (
	// ContractPath is mounted below the route path and serves the OpenAPI
	// document of the endpoint.
	ContractPath = "openapi.yaml"

	defaultRoutePath    = "/api/form"
	defaultMaxBodyBytes = 1 << 20
)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Data != nil {
		data := opts.Data.Clone()
		opts.Data = &data
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithStrict(strict bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Strict = strict
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithOnCreate(fn func(model.FormRecord)) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnCreate = fn
	}
}

// WithData replaces the embedded occupation and state lists.
func WithData(data Data) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		clone := data.Clone()
		o.Data = &clone
	}
}

// WithContract replaces the embedded OpenAPI contract.
func WithContract(contract *formapi.Contract) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Contract = contract
	}
}

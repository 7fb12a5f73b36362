package formendpoint

import "net/http"

// Component bundles one endpoint configuration so the same lists, contract
// and record checks back every handler it hands out.
type Component struct {
	opts Options
}

// New returns a Component configured by fns on top of DefaultOptions.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the configuration, data included.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the form endpoint handler. The contract document is only
// reachable through RegisterRoutes or ContractHandler.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// ContractHandler returns the handler serving the OpenAPI document.
func (c *Component) ContractHandler() http.Handler {
	if c == nil {
		return ContractHandler()
	}
	return contractHandler(c.opts)
}

// RegisterRoutes mounts the endpoint and its contract document under basePath.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}

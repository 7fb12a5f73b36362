package formendpoint

import (
	"fmt"
	"net/http"
	"path"
	"strings"
)

// Mux is the part of *http.ServeMux the endpoint needs.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns where the form endpoint answers once mounted under
// basePath, e.g. "/dev/api/form".
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// ContractMountPath returns where the OpenAPI document is served once the
// endpoint is mounted under basePath.
func ContractMountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return path.Join(mountPath(basePath, opts.RoutePath), ContractPath)
}

// RegisterRoutes mounts the form endpoint and its contract document under
// basePath and returns the endpoint pattern, which is also the URL path a
// formapi.Client should target.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions is RegisterRoutes for a pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("formendpoint: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	pattern := mountPath(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	mux.Handle(path.Join(pattern, ContractPath), contractHandler(opts))
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	return path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(routePath))
}

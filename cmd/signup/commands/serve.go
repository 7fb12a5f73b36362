package commands

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/components/formendpoint"
	"github.com/goliatone/go-signupform/pkg/formapi"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/renderers/html"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		local  bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the registration page and a local form endpoint.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ln, err := net.Listen("tcp", a.cfg.Server.Addr)
			if err != nil {
				return err
			}

			endpoint := a.cfg.Endpoint
			if local {
				endpoint = "http://" + ln.Addr().String() + formendpoint.MountPath("", formendpoint.WithRoutePath(a.cfg.Server.RoutePath))
			}
			client, err := a.client(formapi.WithEndpoint(endpoint))
			if err != nil {
				_ = ln.Close()
				return err
			}

			handler, err := newServeMux(a.cfg.Server.RoutePath, strict, client, a.logger)
			if err != nil {
				_ = ln.Close()
				return err
			}

			a.logger.Info("serving registration page", "addr", ln.Addr().String(), "endpoint", endpoint)
			return serve(cmd.Context(), ln, handler, shutdownTimeout(a.cfg), a.logger)
		},
	}
	cmd.Flags().StringVar(&a.overrides.Addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&local, "local", false, "submit the page to the local endpoint instead of the configured one")
	cmd.Flags().BoolVar(&strict, "strict", false, "apply the field rules on the local endpoint")
	return cmd
}

// newServeMux mounts the local endpoint at routePath and the registration page
// at the root.
func newServeMux(routePath string, strict bool, client *formapi.Client, log *slog.Logger) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	endpoint := formendpoint.New(
		formendpoint.WithRoutePath(routePath),
		formendpoint.WithStrict(strict),
		formendpoint.WithOnCreate(func(r model.FormRecord) {
			log.Info("local endpoint accepted record", "occupation", r.Occupation, "state", r.State)
		}),
	)
	if _, err := endpoint.RegisterRoutes(mux, "/"); err != nil {
		return nil, err
	}

	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	mux.Handle("/{$}", pageHandler(renderer, client, log))
	return mux, nil
}

func pageHandler(renderer *html.Renderer, client *formapi.Client, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		orch := orchestrator.New(
			orchestrator.WithClient(client),
			orchestrator.WithLogger(log),
		)

		var view *html.FormView
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			view = html.NewFormView(r.PostForm)
		} else {
			view = html.NewFormView(nil)
		}

		loadErr := orch.Load(r.Context(), view)
		if r.Method == http.MethodPost && loadErr == nil {
			if _, err := orch.Submit(r.Context(), view); err != nil {
				log.Error("page submission failed", "error", err)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := renderer.Render(view.Page(r.URL.Path), w); err != nil {
			log.Error("render page failed", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

// serve runs the server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, grace time.Duration, log *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

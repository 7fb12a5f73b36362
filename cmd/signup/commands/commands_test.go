package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-signupform/components/formendpoint"
	"github.com/goliatone/go-signupform/internal/logger"
	"github.com/goliatone/go-signupform/pkg/formapi"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
	"github.com/goliatone/go-signupform/pkg/testsupport"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	noEnv := []string{"--env-file", filepath.Join(t.TempDir(), "none.env")}
	code := ExecuteContext(context.Background(), append(noEnv, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func localEndpoint(t *testing.T) string {
	t.Helper()
	mux := http.NewServeMux()
	pattern, err := formendpoint.RegisterRoutes(mux, "/")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL + pattern
}

func TestValidateCommand(t *testing.T) {
	cases := []struct {
		args     []string
		wantCode int
		wantOut  string
	}{
		{args: []string{"email", "ada@example.com"}, wantCode: 0, wantOut: "valid"},
		{args: []string{"name", "Ada"}, wantCode: 1, wantOut: "Please, enter a valid name"},
		{args: []string{"PASSWORD", "short"}, wantCode: 1, wantOut: "password_too_short"},
		{args: []string{"nickname", ""}, wantCode: 0, wantOut: "valid"},
	}
	for _, tc := range cases {
		code, out, _ := run(t, append([]string{"validate"}, tc.args...)...)
		if code != tc.wantCode {
			t.Fatalf("validate %v: exit %d, want %d", tc.args, code, tc.wantCode)
		}
		if !strings.Contains(out, tc.wantOut) {
			t.Fatalf("validate %v: expected %q in %q", tc.args, tc.wantOut, out)
		}
	}
}

func TestValidateCommand_RequiresTwoArgs(t *testing.T) {
	code, _, stderr := run(t, "validate", "email")
	if code != 1 || !strings.Contains(stderr, "accepts 2 arg(s)") {
		t.Fatalf("expected argument error, got %d %q", code, stderr)
	}
}

func TestOptionsCommand_Table(t *testing.T) {
	code, out, stderr := run(t, "--endpoint", localEndpoint(t), "options")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, want := range []string{"OCCUPATION", "STATE", "Head of Shrubbery", "Wyoming"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestOptionsCommand_JSON(t *testing.T) {
	code, out, stderr := run(t, "--endpoint", localEndpoint(t), "options", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	var choices model.Choices
	if err := json.Unmarshal([]byte(out), &choices); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, _ := formendpoint.DefaultData()
	if len(choices.States) != len(data.States) || choices.States[0].Value != data.States[0].Name {
		t.Fatalf("unexpected states %#v", choices.States)
	}
}

func TestOptionsCommand_MalformedUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"occupations": ["a"]}`))
	}))
	defer srv.Close()

	code, _, stderr := run(t, "--endpoint", srv.URL, "options")
	if code != 1 || !strings.Contains(stderr, "malformed") {
		t.Fatalf("expected malformed upstream failure, got %d %q", code, stderr)
	}
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	code, _, stderr := run(t, "--endpoint", "not a url", "validate", "name", "Ada Lovelace")
	if code != 1 || !strings.Contains(stderr, "endpoint must be") {
		t.Fatalf("expected config error, got %d %q", code, stderr)
	}
}

type scriptedView struct {
	*testsupport.RecordingView
	answers []bool
	asked   int
}

func (v *scriptedView) Again(context.Context, string) (bool, error) {
	if v.asked >= len(v.answers) {
		return false, tui.ErrAborted
	}
	answer := v.answers[v.asked]
	v.asked++
	return answer, nil
}

func TestRunRegistration(t *testing.T) {
	invalid := testsupport.ValidValues()
	invalid[model.KindEmail] = "nope"

	cases := map[string]struct {
		values    model.Values
		status    int
		answers   []bool
		wantErr   error
		wantPosts int
	}{
		"created first time":   {values: testsupport.ValidValues(), status: http.StatusCreated, wantPosts: 1},
		"invalid then decline": {values: invalid, answers: []bool{false}, wantErr: ExitError{Code: 1}},
		"rejected then abort":  {values: testsupport.ValidValues(), status: http.StatusBadRequest, answers: []bool{true}, wantErr: ExitError{Code: 130}, wantPosts: 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			submitter := &testsupport.StubSubmitter{Status: tc.status}
			orch := orchestrator.New(
				orchestrator.WithFetcher(&testsupport.StubFetcher{Choices: testsupport.Choices()}),
				orchestrator.WithSubmitter(submitter),
			)
			view := &scriptedView{RecordingView: testsupport.NewRecordingView(tc.values), answers: tc.answers}

			err := runRegistration(context.Background(), orch, view)
			if (tc.wantErr == nil) != (err == nil) || (err != nil && !errors.Is(err, tc.wantErr)) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got := len(submitter.Records()); got != tc.wantPosts {
				t.Fatalf("expected %d posts, got %d", tc.wantPosts, got)
			}
		})
	}
}

func TestRunRegistration_LoadFailure(t *testing.T) {
	orch := orchestrator.New(
		orchestrator.WithFetcher(&testsupport.StubFetcher{Err: formapi.ErrNetwork}),
		orchestrator.WithSubmitter(&testsupport.StubSubmitter{}),
	)
	view := &scriptedView{RecordingView: testsupport.NewRecordingView(nil)}
	err := runRegistration(context.Background(), orch, view)
	if !errors.Is(err, ExitError{Code: 1}) {
		t.Fatalf("expected exit 1, got %v", err)
	}
	if len(view.Outcomes) != 1 {
		t.Fatalf("expected load failure to be shown")
	}
}

func TestServeMux_PageRoundTrip(t *testing.T) {
	log := logger.Discard()
	endpoint := localEndpoint(t)
	client, err := formapi.New(formapi.WithEndpoint(endpoint))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	mux, err := newServeMux("/api/form", false, client, log)
	if err != nil {
		t.Fatalf("mux: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `<option value="Alabama">Alabama</option>`) {
		t.Fatalf("unexpected page %d:\n%s", rec.Code, rec.Body.String())
	}

	form := url.Values{}
	for kind, value := range testsupport.ValidValues() {
		form.Set(kind.String(), value)
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), "Your profile has been created!") {
		t.Fatalf("expected success banner:\n%s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), `value="Ada Lovelace"`) {
		t.Fatalf("fields must be cleared after success")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/form", nil))
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("expected endpoint JSON, got %d", rec.Code)
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, http.NotFoundHandler(), time.Second, logger.Discard())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func TestServeCommand_AddrFlagOverridesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "signup.yaml")
	if err := os.WriteFile(cfgPath, []byte("server:\n  addr: \"127.0.0.1:1\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	args := []string{
		"--env-file", filepath.Join(t.TempDir(), "none.env"),
		"--config", cfgPath,
		"serve", "--addr", "127.0.0.1:0",
	}
	if code := ExecuteContext(ctx, args, &stdout, &stderr); code != 0 {
		t.Fatalf("serve: exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "serving registration page addr=127.0.0.1:") {
		t.Fatalf("expected the flag address to be used, got %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "addr=127.0.0.1:1 ") {
		t.Fatalf("config address must be overridden, got %q", stderr.String())
	}
}

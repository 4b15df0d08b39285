package fleet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	herror "github.com/msto63/helper/foundation/core/error"
	hlog "github.com/msto63/helper/foundation/core/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, raise bool) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		BaseURL:     server.URL + "/api/web/v1/",
		Username:    "tester",
		Password:    "secret",
		RaiseErrors: raise,
		Logger:      hlog.Discard(),
	})
}

// fakeFleet serves a small organization, store and robot set
func fakeFleet(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/web/v1/robots":
			io.WriteString(w, `[{"id":1,"name":"BAR1234","store_id":10},{"id":2,"name":"BAR9","store_id":11}]`)
		case "/api/web/v1/robots/1":
			io.WriteString(w, `{"id":1,"name":"BAR1234","store_id":10}`)
		case "/api/web/v1/stores":
			io.WriteString(w, `[{"id":10,"name":"North","organization_id":100}]`)
		case "/api/web/v1/stores/10":
			io.WriteString(w, `{"id":10,"name":"North","organization_id":100}`)
		case "/api/web/v1/stores/11":
			io.WriteString(w, `{"id":11,"name":"South","organization_id":101}`)
		case "/api/web/v1/organizations":
			io.WriteString(w, `[{"id":100,"name":"Acme","slug":"acme"}]`)
		case "/api/web/v1/organizations/100":
			io.WriteString(w, `{"id":100,"name":"Acme","slug":"acme"}`)
		case "/api/web/v1/organizations/101":
			io.WriteString(w, `{"id":101,"name":"Globex","slug":"globex"}`)
		case "/api/web/v1/play_executions/7":
			io.WriteString(w, `{"id":7,"status":"done"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":"not found"}`)
		}
	}
}

func TestRequestHeaders(t *testing.T) {
	var got *http.Request
	var body []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		body, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"ok":true}`)
	}, false)

	raw, err := client.Request(context.Background(), http.MethodPost, "/robots/1/commands", map[string]string{"a": "b"}, map[string]string{"X-Extra": "1"})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Errorf("Request() = %s", raw)
	}
	if got.Method != http.MethodPost || got.URL.Path != "/api/web/v1/robots/1/commands" {
		t.Errorf("request = %s %s", got.Method, got.URL.Path)
	}
	if _, err := uuid.Parse(got.Header.Get("X-Request-ID")); err != nil {
		t.Errorf("X-Request-ID = %q is not a uuid", got.Header.Get("X-Request-ID"))
	}
	if user, pass, ok := got.BasicAuth(); !ok || user != "tester" || pass != "secret" {
		t.Errorf("BasicAuth() = %q, %q, %v", user, pass, ok)
	}
	if got.Header.Get("Content-Type") != "application/json" || got.Header.Get("X-Extra") != "1" {
		t.Errorf("headers = %v", got.Header)
	}
	if !strings.HasPrefix(got.Header.Get("User-Agent"), "helper/") {
		t.Errorf("User-Agent = %q", got.Header.Get("User-Agent"))
	}
	if string(body) != `{"a":"b"}` {
		t.Errorf("body = %s", body)
	}
}

func TestRequestEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, false)

	raw, err := client.Request(context.Background(), http.MethodGet, "robots", nil, nil)
	if err != nil || string(raw) != "{}" {
		t.Errorf("Request() = %s, %v; want {}, nil", raw, err)
	}
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		raise  bool
		code   herror.Code
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"denied"}`, false, herror.CodeUnauthorized},
		{"unauthorized raised", http.StatusUnauthorized, `{}`, true, herror.CodeUnauthorized},
		{"server error raised", http.StatusInternalServerError, `{"error":"boom"}`, true, herror.CodeExternalServiceError},
		{"not parsable", http.StatusOK, `<html>login</html>`, false, herror.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}, tt.raise)

			_, err := client.Request(context.Background(), http.MethodGet, "robots", nil, nil)
			if got := herror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestRequestErrorStatusWithoutRaise(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"boom"}`)
	}, false)

	raw, err := client.Request(context.Background(), http.MethodGet, "robots", nil, nil)
	if err != nil || string(raw) != `{"error":"boom"}` {
		t.Errorf("Request() = %s, %v", raw, err)
	}
}

func TestRequestConnectionFailed(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: url, Logger: hlog.Discard()})
	_, err := client.Request(context.Background(), http.MethodGet, "robots", nil, nil)
	if !herror.HasCode(err, herror.CodeConnectionFailed) {
		t.Errorf("error = %v, want CONNECTION_FAILED", err)
	}
}

func TestReadOperations(t *testing.T) {
	client := newTestClient(t, fakeFleet(t), true)
	ctx := context.Background()

	robots, err := client.Robots(ctx)
	if err != nil || len(robots) != 2 || robots[0] != (Robot{ID: 1, Name: "BAR1234", StoreID: 10}) {
		t.Errorf("Robots() = %v, %v", robots, err)
	}
	robot, err := client.Robot(ctx, 1)
	if err != nil || robot.Name != "BAR1234" {
		t.Errorf("Robot(1) = %v, %v", robot, err)
	}
	stores, err := client.Stores(ctx)
	if err != nil || len(stores) != 1 || stores[0].OrganizationID != 100 {
		t.Errorf("Stores() = %v, %v", stores, err)
	}
	store, err := client.Store(ctx, 10)
	if err != nil || store.Name != "North" {
		t.Errorf("Store(10) = %v, %v", store, err)
	}
	orgs, err := client.Organizations(ctx)
	if err != nil || len(orgs) != 1 || orgs[0].Slug != "acme" {
		t.Errorf("Organizations() = %v, %v", orgs, err)
	}
	org, err := client.Organization(ctx, 100)
	if err != nil || org.Name != "Acme" {
		t.Errorf("Organization(100) = %v, %v", org, err)
	}
	exec, err := client.PlayExecution(ctx, 7)
	if err != nil || string(exec["status"]) != `"done"` {
		t.Errorf("PlayExecution(7) = %v, %v", exec, err)
	}

	if _, err := client.Robot(ctx, 99); !herror.HasCode(err, herror.CodeExternalServiceError) {
		t.Errorf("Robot(99) error = %v", err)
	}
}

func TestCommands(t *testing.T) {
	var commands []map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/web/v1/robots/5/commands" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		var cmd map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			t.Errorf("decode command: %v", err)
		}
		commands = append(commands, cmd)
		io.WriteString(w, `{"id":1}`)
	}, true)
	ctx := context.Background()

	if _, err := client.OpenRobotVPN(ctx, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := client.CloseRobotVPN(ctx, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := client.PowerControlRobot(ctx, 5, DefaultPowerControl()); err != nil {
		t.Fatal(err)
	}

	want := []map[string]interface{}{
		{"command_type": "open_vpn", "parameters": map[string]interface{}{}},
		{"command_type": "close_vpn", "parameters": map[string]interface{}{}},
		{"command_type": "power_control", "parameters": map[string]interface{}{
			"action":                      "off",
			"force":                       true,
			"object_id":                   "robot",
			"reset_delay_seconds":         "30",
			"wait_before_cancel":          "30",
			"wait_before_forced_shutdown": "120",
		}},
	}
	if !reflect.DeepEqual(commands, want) {
		t.Errorf("commands = %v, want %v", commands, want)
	}
}

func TestForEnvironment(t *testing.T) {
	client, err := ForEnvironment(DefaultEndpoints(), `"staging_web"`, Config{Logger: hlog.Discard()})
	if err != nil {
		t.Fatalf("ForEnvironment() error = %v", err)
	}
	if client.BaseURL() != "https://staging.btdev.team/api/web/v1" {
		t.Errorf("BaseURL() = %v", client.BaseURL())
	}

	_, err = ForEnvironment(map[string]string{"b": "x", "a": "y"}, "nope", Config{})
	if !herror.HasCode(err, herror.CodeInvalidConfig) {
		t.Fatalf("error = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), "a, b") {
		t.Errorf("error %q should list sorted options", err.Error())
	}
}

func TestMergeEndpoints(t *testing.T) {
	base := DefaultEndpoints()
	merged := MergeEndpoints(base, map[string]string{"dev_web": "http://localhost", "local": "http://127.0.0.1"})

	if merged["dev_web"] != "http://localhost" || merged["local"] != "http://127.0.0.1" {
		t.Errorf("merged = %v", merged)
	}
	if base["dev_web"] != "https://dev.btdev.team/api/web/v1" {
		t.Error("MergeEndpoints() modified its base")
	}
	if len(Environments(merged)) != 9 {
		t.Errorf("Environments() = %v", Environments(merged))
	}
}

func TestNormalizeRobotName(t *testing.T) {
	tests := map[string]string{
		"1234":      "BAR1234",
		"bar1234":   "BAR1234",
		"BAR1234":   "BAR1234",
		`"bar1234"`: "BAR1234",
	}
	for in, want := range tests {
		if got := NormalizeRobotName(in); got != want {
			t.Errorf("NormalizeRobotName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVPNResolver(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.ovpn", "client-acme.ovpn", "globex-old.ovpn"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("client"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	resolver := &VPNResolver{
		Client:        newTestClient(t, fakeFleet(t), false),
		ConfigDir:     dir,
		ContainerRoot: "/code",
	}
	ctx := context.Background()

	got, err := resolver.Resolve(ctx, "bar1234")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "/code/configs/client-acme.ovpn" {
		t.Errorf("Resolve() = %q", got)
	}

	got, err = resolver.Resolve(ctx, "9")
	if err != nil || got != "/code/configs/globex-old.ovpn" {
		t.Errorf("Resolve(9) = %q, %v", got, err)
	}

	if _, err := resolver.Resolve(ctx, "BAR0000"); !herror.HasCode(err, herror.CodeNotFound) {
		t.Errorf("unknown robot error = %v, want NOT_FOUND", err)
	}
}

func TestVPNResolverNoConfig(t *testing.T) {
	resolver := &VPNResolver{
		Client:        newTestClient(t, fakeFleet(t), false),
		ConfigDir:     t.TempDir(),
		ContainerRoot: "/code",
	}
	if _, err := resolver.Resolve(context.Background(), "BAR1234"); !herror.HasCode(err, herror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"recipemaker/internal/config"
	"recipemaker/internal/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config, env and tracing at a clean slate.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.DirEnv, dir)
	t.Setenv(config.WebhookURLEnv, "")
	t.Setenv(config.TimeoutEnv, "")
	t.Setenv(config.LogLevelEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func recipeServer(t *testing.T, status int, body string, dishes *[]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if dishes != nil {
			*dishes = append(*dishes, string(data))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate_PrintsRecipe(t *testing.T) {
	isolate(t)
	var bodies []string
	srv := recipeServer(t, http.StatusOK, `{"recipe":"Toss the greens."}`, &bodies)

	stdout, stderr, err := run(t, "", "--endpoint", srv.URL, "generate", "green", "salad")
	require.NoError(t, err)
	assert.Equal(t, "Toss the greens.\n", stdout)
	assert.Contains(t, stderr, recipe.MsgLoading)
	assert.Contains(t, stderr, recipe.MsgSuccess)
	require.Len(t, bodies, 1)
	assert.JSONEq(t, `{"dish":"green salad"}`, bodies[0])
}

func TestGenerate_ReadsStdin(t *testing.T) {
	isolate(t)
	var bodies []string
	srv := recipeServer(t, http.StatusOK, `{"recipe":"Roll the tortillas."}`, &bodies)
	t.Setenv(config.WebhookURLEnv, srv.URL)

	stdout, _, err := run(t, "vegan tacos\n", "generate")
	require.NoError(t, err)
	assert.Equal(t, "Roll the tortillas.\n", stdout)
	require.Len(t, bodies, 1)
	assert.JSONEq(t, `{"dish":"vegan tacos"}`, bodies[0])
}

func TestGenerate_EmptyDishFails(t *testing.T) {
	isolate(t)
	var bodies []string
	srv := recipeServer(t, http.StatusOK, `{"recipe":"x"}`, &bodies)

	stdout, _, err := run(t, "  \n", "--endpoint", srv.URL, "generate")
	require.Error(t, err)
	assert.Equal(t, recipe.MsgPrompt, err.Error())
	assert.Empty(t, stdout)
	assert.Empty(t, bodies, "no request for an empty dish")
}

func TestGenerate_HTTPErrorFails(t *testing.T) {
	isolate(t)
	srv := recipeServer(t, http.StatusInternalServerError, `oops`, nil)

	stdout, stderr, err := run(t, "", "--endpoint", srv.URL, "generate", "soup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 500")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, recipe.MsgErrorToast)
	assert.Contains(t, stderr, recipe.MsgFailure)
}

func TestGenerate_FallbackText(t *testing.T) {
	isolate(t)
	srv := recipeServer(t, http.StatusOK, `{"message":"done"}`, nil)

	stdout, _, err := run(t, "", "--endpoint", srv.URL, "generate", "pie")
	require.NoError(t, err)
	assert.Equal(t, recipe.MsgFallback+"\n", stdout)
}

func TestConfig_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("webhook:\n  url: http://file.test/hook\n  timeout: 10s\n"), 0o644))

	out, _, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "http://file.test/hook")
	assert.Contains(t, out, "10s")

	t.Setenv(config.WebhookURLEnv, "http://env.test/hook")
	out, _, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "http://env.test/hook")

	out, _, err = run(t, "", "--endpoint", "http://flag.test/hook", "--timeout", "1m", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "http://flag.test/hook")
	assert.Contains(t, out, "1m0s")
	assert.NotContains(t, out, "env.test")
}

func TestConfig_Path(t *testing.T) {
	dir := isolate(t)

	out, _, err := run(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", out)

	out, _, err = run(t, "", "--config", "/tmp/custom.yaml", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml\n", out)
}

func TestConfig_InvalidFlagRejected(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "", "--timeout", "-5s", "config", "show")
	assert.Error(t, err)
}

func TestConfigure_ReportsBrokenFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("webhook: [broken"), 0o644))

	_, _, err := run(t, "", "configure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestReadDish(t *testing.T) {
	got, err := readDish([]string{"mushroom", "risotto"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "mushroom risotto", got)

	got, err = readDish(nil, strings.NewReader("fried rice\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "fried rice", got)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{" 45s ", 45 * time.Second, false},
		{"2m", 2 * time.Minute, false},
		{"soon", 0, true},
		{"-1s", 0, true},
	}
	for _, tt := range tests {
		got, err := parseTimeout(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestValidateEndpoint(t *testing.T) {
	assert.NoError(t, validateEndpoint("http://localhost:5678/webhook/x"))
	assert.NoError(t, validateEndpoint(" https://n8n.example.com/hook "))
	assert.Error(t, validateEndpoint("localhost:5678"))
	assert.Error(t, validateEndpoint("ftp://example.com"))
}

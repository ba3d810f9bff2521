package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scan/cmd/scan/commands"
	"go.trai.ch/scan/internal/app"
	"go.trai.ch/scan/internal/build"
	"go.trai.ch/scan/internal/core/domain"
)

type mockApp struct {
	generateFunc func(ctx context.Context, req app.Request) (*app.Result, error)
	pathsFunc    func(ctx context.Context, req app.Request) (*app.Paths, error)
	optionsFunc  func(ctx context.Context, req app.Request) (*domain.Options, error)
	jsonLogs     bool
}

func (m *mockApp) Generate(ctx context.Context, req app.Request) (*app.Result, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &app.Result{}, nil
}

func (m *mockApp) Paths(ctx context.Context, req app.Request) (*app.Paths, error) {
	if m.pathsFunc != nil {
		return m.pathsFunc(ctx, req)
	}
	return &app.Paths{}, nil
}

func (m *mockApp) Options(ctx context.Context, req app.Request) (*domain.Options, error) {
	if m.optionsFunc != nil {
		return m.optionsFunc(ctx, req)
	}
	return &domain.Options{}, nil
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Command(t *testing.T) {
	t.Run("wires changed flags only", func(t *testing.T) {
		var captured app.Request
		mock := &mockApp{
			generateFunc: func(_ context.Context, req app.Request) (*app.Result, error) {
				captured = req
				return &app.Result{Command: "set -o pipefail && xcodebuild"}, nil
			},
		}

		out, err := execute(t, mock,
			"command",
			"-C", "ios",
			"--scheme", "App",
			"--destination", "platform=iOS Simulator,name=iPhone 14",
			"--destination", "platform=macOS",
			"--only-testing", "A/B,C/D",
			"--code-coverage=false",
			"--clean",
		)
		require.NoError(t, err)

		assert.Equal(t, "set -o pipefail && xcodebuild\n", out)
		assert.Equal(t, "ios", captured.Dir)
		assert.Equal(t, map[string]any{
			"scheme":        "App",
			"destination":   []string{"platform=iOS Simulator,name=iPhone 14", "platform=macOS"},
			"only_testing":  []string{"A/B", "C/D"},
			"code_coverage": false,
			"clean":         true,
		}, captured.Overrides)
	})

	t.Run("no flags means no overrides", func(t *testing.T) {
		var captured app.Request
		mock := &mockApp{
			generateFunc: func(_ context.Context, req app.Request) (*app.Result, error) {
				captured = req
				return &app.Result{}, nil
			},
		}

		_, err := execute(t, mock, "command")
		require.NoError(t, err)
		assert.Empty(t, captured.Overrides)
		assert.Empty(t, captured.Dir)
	})

	t.Run("prints tokens", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.Request) (*app.Result, error) {
				return &app.Result{Tokens: []string{"set -o pipefail &&", "build", "test"}}, nil
			},
		}

		out, err := execute(t, mock, "command", "--tokens")
		require.NoError(t, err)
		assert.Equal(t, "set -o pipefail &&\nbuild\ntest\n", out)
	})

	t.Run("returns generate error", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.Request) (*app.Result, error) {
				return nil, domain.ErrNoProject
			},
		}

		_, err := execute(t, mock, "command")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrNoProject.Error())
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "command", "extra")
		require.Error(t, err)
	})
}

func TestCommands_JSONLogs(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "command", "--json-logs")
	require.NoError(t, err)
	assert.True(t, mock.jsonLogs)
}

func TestCommands_Paths(t *testing.T) {
	mock := &mockApp{
		pathsFunc: func(_ context.Context, req app.Request) (*app.Paths, error) {
			assert.Equal(t, map[string]any{"buildlog_path": "/tmp/logs"}, req.Overrides)
			return &app.Paths{
				Log:          "/tmp/logs/App-App.log",
				Build:        "/Users/ci/Library/Developer/Xcode/Archives/2015-08-07",
				ResultBundle: "test_output/App.test_result",
			}, nil
		},
	}

	out, err := execute(t, mock, "paths", "--buildlog-path", "/tmp/logs")
	require.NoError(t, err)
	assert.Equal(t, "log: /tmp/logs/App-App.log\n"+
		"build: /Users/ci/Library/Developer/Xcode/Archives/2015-08-07\n"+
		"result_bundle: test_output/App.test_result\n", out)
}

func TestCommands_Config(t *testing.T) {
	t.Run("prints options as yaml", func(t *testing.T) {
		mock := &mockApp{
			optionsFunc: func(_ context.Context, _ app.Request) (*domain.Options, error) {
				return &domain.Options{
					Scheme:       "App",
					Destination:  []string{"platform=macOS"},
					CodeCoverage: domain.Bool(false),
					OutputStyle:  domain.OutputStyleRaw,
				}, nil
			},
		}

		out, err := execute(t, mock, "config")
		require.NoError(t, err)
		assert.Contains(t, out, "scheme: App\n")
		assert.Contains(t, out, "- platform=macOS\n")
		assert.Contains(t, out, "code_coverage: false\n")
		assert.Contains(t, out, "output_style: raw\n")
		assert.NotContains(t, out, "workspace")
	})

	t.Run("returns options error", func(t *testing.T) {
		mock := &mockApp{
			optionsFunc: func(_ context.Context, _ app.Request) (*domain.Options, error) {
				return nil, errors.New("bad scanfile")
			},
		}

		_, err := execute(t, mock, "config")
		require.EqualError(t, err, "bad scanfile")
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scan version "+build.Version)
}

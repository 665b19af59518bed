package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdidvp/taxkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/taxkraft/internal/adapters/outbound/history"
	"github.com/abdidvp/taxkraft/internal/application"
	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// LogLevelEnv overrides logging.level from .taxkraft.yaml.
const LogLevelEnv = "TAXKRAFT_LOG_LEVEL"

// logLevel picks the level: --debug, then the environment, then config.
func logLevel(debug bool, configured string) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	name := os.Getenv(LogLevelEnv)
	if name == "" {
		name = configured
	}
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}

// projectLogger builds a stderr logger at the level configured for
// projectPath. When the config cannot be loaded the default level applies;
// the load error is logged at debug and surfaces again from the service.
func projectLogger(cmd *cobra.Command, flags *rootFlags, loader domain.ConfigLoader, projectPath string) *slog.Logger {
	configured := ""
	cfg, err := loader.Load(projectPath)
	if err == nil {
		configured = cfg.Logging.Level
	}

	logger := newLogger(cmd.ErrOrStderr(), logLevel(flags.debug, configured))
	if err != nil {
		logger.Debug("config unavailable, using default log level", "path", projectPath, "error", err)
	}
	return logger
}

// newTaxService wires the production adapters for projectPath.
func newTaxService(cmd *cobra.Command, flags *rootFlags, projectPath string, metrics domain.ProcessMetrics) *application.TaxService {
	loader := config.New()
	return application.NewTaxService(
		loader,
		history.New(),
		gitinfo.New(),
		metrics,
		application.WithLogger(projectLogger(cmd, flags, loader, projectPath)),
	)
}

func absProjectPath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absPath, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/petal-labs/sous/chat"
	"github.com/petal-labs/sous/cli/config"
	"github.com/petal-labs/sous/cli/keystore"
	"github.com/petal-labs/sous/cookbook"
	"github.com/petal-labs/sous/core"
	"github.com/petal-labs/sous/tools"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ProviderFactory creates a provider using CLI config context.
type ProviderFactory func(providerID, apiKey string, cfg *config.Config) (core.Provider, error)

// KeystoreFactory creates a keystore instance.
type KeystoreFactory func() (keystore.Keystore, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig     ConfigLoader
	createProvider ProviderFactory
	newKeystore    KeystoreFactory
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer
	cfgFile        string
	provider       string
	model          string
	jsonOutput     bool
	verbose        bool
	cfg            *config.Config

	serveAddr  string
	chatPrompt string
	chatSystem string
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithProviderFactory injects a provider factory dependency.
func WithProviderFactory(factory ProviderFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createProvider = factory
		}
	}
}

// WithKeystoreFactory injects a keystore factory dependency.
func WithKeystoreFactory(factory KeystoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newKeystore = factory
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies. Provider
// registration happens here, during wiring, never as an import side effect.
func NewApp(opts ...AppOption) *App {
	registerBuiltinProviders()

	a := &App{
		loadConfig:     config.LoadConfig,
		createProvider: defaultProviderFactory(),
		newKeystore:    keystore.NewKeystore,
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sous",
		Short: "Sous - cooking-assistant chat backend",
		Long: `Sous is the backend for a recipe and cooking assistant.

Use sous to run the chat server, send one-shot chat turns, and manage
provider API keys.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.sous/config.yaml)")
	root.PersistentFlags().StringVar(&a.provider, "provider", "", "provider ID (e.g. openai)")
	root.PersistentFlags().StringVar(&a.model, "model", "", "model ID (e.g. gpt-4o)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.newServeCommand())
	root.AddCommand(a.newChatCommand())
	root.AddCommand(a.newKeysCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command-line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
	a.root.SetOut(a.stdout)
	a.root.SetErr(a.stderr)
}

// Execute runs a freshly wired app.
func Execute() error {
	return NewApp().Execute()
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Flags override config.
	if a.provider == "" {
		a.provider = cfg.Provider
	}
	if a.model == "" {
		a.model = cfg.Model
	}

	return nil
}

func (a *App) logger() *log.Logger {
	return log.New(a.stderr, "sous: ", log.LstdFlags)
}

// resolveAPIKey looks up the provider's API key: keystore first, then the
// configured environment variable. A missing key is a configuration error.
func (a *App) resolveAPIKey(providerID string) (string, error) {
	ks, err := a.newKeystore()
	if err != nil {
		return "", fmt.Errorf("failed to open keystore: %w", err)
	}

	apiKey, err := ks.Get(providerID)
	if err == nil {
		return apiKey, nil
	}
	if _, ok := err.(*keystore.ErrKeyNotFound); !ok {
		return "", fmt.Errorf("failed to read keystore: %w", err)
	}

	envVar := apiKeyEnvVar(a.cfg, providerID)
	if apiKey := os.Getenv(envVar); apiKey != "" {
		return apiKey, nil
	}

	return "", fmt.Errorf("no API key for %s: run 'sous keys set %s' or set %s",
		providerID, providerID, envVar)
}

func apiKeyEnvVar(cfg *config.Config, providerID string) string {
	if cfg != nil {
		if pc := cfg.GetProvider(providerID); pc != nil && pc.APIKeyEnv != "" {
			return pc.APIKeyEnv
		}
	}
	return "OPENAI_API_KEY"
}

// toolMiddlewares assembles the middleware chain every cookbook tool gets at
// startup: schema validation, the configured per-call timeout, and call
// logging when verbose.
func (a *App) toolMiddlewares(logger *log.Logger) []tools.Middleware {
	middlewares := []tools.Middleware{tools.WithValidation(tools.NewJSONSchemaValidator())}
	if a.cfg != nil && a.cfg.ToolTimeout() > 0 {
		middlewares = append(middlewares, tools.WithTimeout(a.cfg.ToolTimeout()))
	}
	if a.verbose {
		middlewares = append(middlewares, tools.WithLogging(logger))
	}
	return middlewares
}

// buildRegistry constructs the tool registry from the cookbook toolset,
// wrapping each tool with the startup middleware chain. A duplicate tool
// name aborts startup.
func (a *App) buildRegistry(logger *log.Logger) (*tools.Registry, error) {
	middlewares := a.toolMiddlewares(logger)

	registry := tools.NewRegistry()
	for _, construct := range cookbook.Constructors() {
		tool := tools.ApplyMiddleware(construct(), middlewares...)
		if err := registry.Register(tool); err != nil {
			return nil, fmt.Errorf("tool registration: %w", err)
		}
	}

	return registry, nil
}

// buildOrchestrator wires the full turn pipeline: provider, client, tool
// registry, executor, orchestrator.
func (a *App) buildOrchestrator(logger *log.Logger) (*chat.Orchestrator, error) {
	apiKey, err := a.resolveAPIKey(a.provider)
	if err != nil {
		return nil, err
	}

	provider, err := a.createProvider(a.provider, apiKey, a.cfg)
	if err != nil {
		return nil, err
	}

	registry, err := a.buildRegistry(logger)
	if err != nil {
		return nil, err
	}

	executorOpts := []chat.ExecutorOption{chat.WithToolTimeout(a.cfg.ToolTimeout())}
	if a.cfg.MaxParallelTools > 0 {
		executorOpts = append(executorOpts, chat.WithMaxParallel(a.cfg.MaxParallelTools))
	}
	executor := chat.NewExecutor(registry, executorOpts...)

	orchestratorOpts := []chat.OrchestratorOption{
		chat.WithCompletionTimeout(a.cfg.CompletionTimeout()),
	}
	if len(a.cfg.ExposedTools) > 0 {
		orchestratorOpts = append(orchestratorOpts, chat.WithExposedTools(a.cfg.ExposedTools))
	}
	if a.verbose {
		orchestratorOpts = append(orchestratorOpts, chat.WithLogger(logger))
	}

	return chat.NewOrchestrator(
		core.NewClient(provider),
		registry,
		executor,
		core.ModelID(a.model),
		orchestratorOpts...,
	), nil
}

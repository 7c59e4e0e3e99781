package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/troikatech/chat-probe/pkg/chat"
	"github.com/troikatech/chat-probe/pkg/env"
	"github.com/troikatech/chat-probe/pkg/logger"
	"github.com/troikatech/chat-probe/pkg/utils"
)

// Console lines printed by Run
const (
	MsgAPIKeyValue   = "🔍 DEBUG: OPENAI_API_KEY value:"
	MsgAPIKeyMissing = "❌ ERROR: OpenAI key not configured. Add your key to the .env file"
	MsgAPIKeyLoaded  = "✅ OpenAI key loaded successfully!"
	MsgResponse      = "📤 OpenAI response:"
)

// Invoker sends the chat request once
type Invoker interface {
	Invoke(ctx context.Context) (*chat.Response, error)
}

// Runner reports the credential status, performs the call and prints the result
type Runner struct {
	cfg     *env.Config
	invoker Invoker
	out     io.Writer
	logger  *zap.Logger
}

func NewRunner(cfg *env.Config, invoker Invoker, out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		invoker: invoker,
		out:     out,
		logger:  logger,
	}
}

// Run executes the probe. A missing credential is reported but does not stop
// the request; any request failure is returned to the caller unretried.
func (r *Runner) Run(ctx context.Context) error {
	log := r.logger.With(zap.String("run_id", uuid.NewString()))

	fmt.Fprintln(r.out, MsgAPIKeyValue, r.displayKey())

	if !r.cfg.HasAPIKey() {
		fmt.Fprintln(r.out, MsgAPIKeyMissing)
		log.Warn("OPENAI_API_KEY is not set, sending request without credential")
	} else {
		fmt.Fprintln(r.out, MsgAPIKeyLoaded)
		log.Info("OPENAI_API_KEY loaded", logger.MaskSecret("api_key", r.cfg.OpenAIApiKey))
	}

	resp, err := r.invoker.Invoke(ctx)
	if err != nil {
		log.Error("Chat completion request failed", zap.Error(err))
		return fmt.Errorf("chat completion: %w", err)
	}

	log.Info("Chat completion response received", zap.Int("status", resp.StatusCode))

	pretty, err := json.MarshalIndent(resp.Body, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(r.out, MsgResponse, string(pretty))

	return nil
}

// displayKey returns the credential as shown in the diagnostic line. Echoing
// the raw value is opt-in through DEBUG_ECHO_API_KEY.
func (r *Runner) displayKey() string {
	if !r.cfg.HasAPIKey() {
		return "<unset>"
	}
	if r.cfg.EchoAPIKey {
		return r.cfg.OpenAIApiKey
	}
	return utils.MaskSecret(r.cfg.OpenAIApiKey)
}

// Package digest exposes cryptographic digest computation as a tool
// provider.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/providers/common"
	"github.com/unitbox/unitbox/internal/shared/types"
	"github.com/unitbox/unitbox/internal/tools/digest"
)

// Provider implements digest tools
type Provider struct {
	sessions *session.Manager
}

// NewProvider creates a digest provider
func NewProvider(sessions *session.Manager) *Provider {
	return &Provider{sessions: sessions}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "digest",
		Name:        "Hash Digest",
		Description: "Computes fixed-length digests (MD5 through SHA-3 and BLAKE2b) over text",
		Category:    types.CategoryCrypto,
		Capabilities: []string{
			"md5",
			"sha1",
			"sha2",
			"sha3",
			"blake2b",
		},
		Tools: []types.Tool{
			{
				ID:          "digest.hash",
				Name:        "Hash Text",
				Description: "Digest of the UTF-8 bytes of text, as lower-case hex",
				Parameters: []types.Parameter{
					{Name: "algorithm", Type: "string", Description: "Digest algorithm", Required: true},
					{Name: "text", Type: "string", Description: "Input text (empty is valid)", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "digest.algorithms",
				Name:        "List Algorithms",
				Description: "Supported digest algorithms",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute routes tool calls
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "digest.hash":
		return p.hash(params, appCtx)
	case "digest.algorithms":
		return p.algorithms()
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) hash(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, ok := common.GetString(params, "algorithm")
	if !ok {
		return common.Failure("algorithm parameter required")
	}
	text, ok := common.GetString(params, "text")
	if !ok {
		return common.Failure("text parameter required")
	}

	alg, err := digest.ParseAlgorithm(name)
	if err != nil {
		return common.Failure(err.Error())
	}

	sum, err := digest.Sum(alg, text)
	if err != nil {
		return common.Failure(err.Error())
	}

	if p.sessions != nil && appCtx != nil {
		if log := p.sessions.Log(appCtx.SessionID); log != nil {
			log.Append(history.Record{
				Timestamp:  time.Now().UTC(),
				Category:   "digest",
				SourceUnit: "text",
				TargetUnit: string(alg),
				Input:      text,
				Output:     sum,
			})
		}
	}

	return common.Success(map[string]interface{}{
		"algorithm": string(alg),
		"digest":    sum,
	})
}

func (p *Provider) algorithms() (*types.Result, error) {
	algs := digest.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = string(a)
	}
	return common.Success(map[string]interface{}{
		"algorithms": names,
	})
}

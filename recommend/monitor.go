package recommend

import (
	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/core"
)

// RecommendMonitor provides hooks to observe the recommendation process.
// Implement this interface to track intermediate steps during a request,
// including degraded embedding fallback use, which is deliberately not an
// error.
type RecommendMonitor interface {
	Start(query string)
	QueryPrepared(prepared string)
	BalancingDecision(balanced bool, it core.Intent)
	EmbeddingServed(result ai.EmbedResult)
	Ranked(catalogSize int)
	Finish(results []core.ScoredAssessment)
}

// noopMonitor is a no-op implementation of RecommendMonitor
type noopMonitor struct{}

var _ RecommendMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                           {}
func (n *noopMonitor) QueryPrepared(_ string)                   {}
func (n *noopMonitor) BalancingDecision(_ bool, _ core.Intent)  {}
func (n *noopMonitor) EmbeddingServed(_ ai.EmbedResult)         {}
func (n *noopMonitor) Ranked(_ int)                             {}
func (n *noopMonitor) Finish(_ []core.ScoredAssessment)         {}

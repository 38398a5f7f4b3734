package substrate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

// Compiler validates component layouts against the substrate's fixed
// storage schema and produces deployable artifacts. A failure here halts
// deployment; it is never retryable.
type Compiler struct {
	logger *zap.SugaredLogger
}

func NewCompiler(logger *zap.SugaredLogger) *Compiler {
	return &Compiler{
		logger: logger,
	}
}

func (c *Compiler) Compile(layout domain.ComponentLayout) (*domain.CompiledComponent, error) {
	if layout.Name == "" {
		return nil, &domain.CompilationError{Reason: "component name is empty"}
	}

	if len(layout.Slots) != domain.ComponentSlots {
		return nil, &domain.CompilationError{
			Reason: fmt.Sprintf("component %q declares %d storage slots, substrate requires %d", layout.Name, len(layout.Slots), domain.ComponentSlots),
		}
	}

	seen := make(map[string]bool, len(layout.Slots))
	for i, slot := range layout.Slots {
		if slot.Index != i {
			return nil, &domain.CompilationError{
				Reason: fmt.Sprintf("component %q slot %q has index %d, want %d", layout.Name, slot.Name, slot.Index, i),
			}
		}
		if slot.Name == "" {
			return nil, &domain.CompilationError{
				Reason: fmt.Sprintf("component %q slot %d has no name", layout.Name, i),
			}
		}
		if seen[slot.Name] {
			return nil, &domain.CompilationError{
				Reason: fmt.Sprintf("component %q has duplicate slot name %q", layout.Name, slot.Name),
			}
		}
		seen[slot.Name] = true
	}

	if len(layout.Procedures) == 0 {
		return nil, &domain.CompilationError{
			Reason: fmt.Sprintf("component %q exports no procedures", layout.Name),
		}
	}

	compiled := &domain.CompiledComponent{
		Name:     layout.Name,
		Checksum: checksum(layout),
	}

	c.logger.Infow("component compiled", "component", layout.Name, "checksum", compiled.Checksum)

	return compiled, nil
}

// checksum is a content hash over the canonical layout so redeployments of
// an unchanged component are detectable.
func checksum(layout domain.ComponentLayout) string {
	var b strings.Builder
	b.WriteString(layout.Name)
	for _, slot := range layout.Slots {
		fmt.Fprintf(&b, "|%d:%s", slot.Index, slot.Name)
	}
	for _, proc := range layout.Procedures {
		b.WriteString("|" + proc)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

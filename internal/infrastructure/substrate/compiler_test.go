package substrate

import (
	"errors"
	"strings"
	"testing"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

func TestCompiler_Compile(t *testing.T) {
	compiler := NewCompiler(zap.NewNop().Sugar())

	t.Run("all account components compile", func(t *testing.T) {
		layouts := []domain.ComponentLayout{
			domain.KycComponentLayout(),
			domain.AmlComponentLayout(),
			domain.SanctionsComponentLayout(),
		}

		for _, layout := range layouts {
			compiled, err := compiler.Compile(layout)
			if err != nil {
				t.Fatalf("Compile(%s) error = %v", layout.Name, err)
			}
			if compiled.Checksum == "" {
				t.Errorf("Compile(%s) produced empty checksum", layout.Name)
			}
		}
	})

	t.Run("checksum is stable and layout-sensitive", func(t *testing.T) {
		a, err := compiler.Compile(domain.KycComponentLayout())
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		b, err := compiler.Compile(domain.KycComponentLayout())
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		if a.Checksum != b.Checksum {
			t.Error("checksum differs across identical compilations")
		}

		other, err := compiler.Compile(domain.AmlComponentLayout())
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		if other.Checksum == a.Checksum {
			t.Error("different layouts produced the same checksum")
		}
	})

	tests := []struct {
		name   string
		mutate func(*domain.ComponentLayout)
		reason string
	}{
		{
			name:   "wrong slot count",
			mutate: func(l *domain.ComponentLayout) { l.Slots = l.Slots[:5] },
			reason: "storage slots",
		},
		{
			name:   "misindexed slot",
			mutate: func(l *domain.ComponentLayout) { l.Slots[3].Index = 9 },
			reason: "index",
		},
		{
			name:   "duplicate slot name",
			mutate: func(l *domain.ComponentLayout) { l.Slots[1].Name = l.Slots[0].Name },
			reason: "duplicate",
		},
		{
			name:   "no procedures",
			mutate: func(l *domain.ComponentLayout) { l.Procedures = nil },
			reason: "procedures",
		},
		{
			name:   "empty name",
			mutate: func(l *domain.ComponentLayout) { l.Name = "" },
			reason: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := domain.KycComponentLayout()
			tt.mutate(&layout)

			_, err := compiler.Compile(layout)

			var cerr *domain.CompilationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Compile() error = %v, want CompilationError", err)
			}
			if !strings.Contains(cerr.Reason, tt.reason) {
				t.Errorf("Reason = %q, want mention of %q", cerr.Reason, tt.reason)
			}
		})
	}
}

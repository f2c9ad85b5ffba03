package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/jsondoc"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/markdown"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	content := services.NewContentService(memory.NewTableStore(map[int]domain.LunarMansionRecord{
		24: {Name: "Sa'd al-Su'ud", Spirit: "Abrine"},
	}, nil))
	registry := services.NewRendererRegistry(markdown.NewRenderer(), jsondoc.NewRenderer())
	report := services.NewReportService(content, registry, memory.NewArtifactStore(), domain.DefaultSettings())

	server, err := NewServer(&Ports{Report: report, Content: content})
	require.NoError(t, err)
	return server
}

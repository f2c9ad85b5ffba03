package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Aurora resources.
	uriScheme = "aurora://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "phases",
		Name:        "phases",
		Description: "Descriptions and correspondences of the four lunar phases",
		MIMEType:    "application/json",
	}, s.handlePhasesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "mansions/{number}",
		Name:        "lunar-mansion",
		Description: "Record of one of the 28 lunar mansions",
		MIMEType:    "application/json",
	}, s.handleMansionResource)
}

// phaseInfo is one entry of the phases resource.
type phaseInfo struct {
	Phase           string                      `json:"phase"`
	Description     string                      `json:"description"`
	Correspondences domain.PhaseCorrespondences `json:"correspondences"`
}

// handlePhasesResource returns every phase with its description.
func (s *Server) handlePhasesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Content == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	phases := domain.Phases()
	infos := make([]phaseInfo, len(phases))
	for i, p := range phases {
		infos[i] = phaseInfo{
			Phase:           p.String(),
			Description:     s.ports.Content.PhaseDescription(p),
			Correspondences: s.ports.Content.PhaseCorrespondences(p),
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleMansionResource returns the record of one mansion.
func (s *Server) handleMansionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Content == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	number := extractMansionNumber(req.Params.URI)
	if number == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, s.ports.Content.MansionData(number))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMansionNumber extracts N from aurora://mansions/{N}.
// Returns 0 unless N is in [1, domain.MansionCount].
func extractMansionNumber(uri string) int {
	const prefix = uriScheme + "mansions/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || n < 1 || n > domain.MansionCount {
		return 0
	}
	return n
}

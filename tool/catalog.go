package tool

import (
	"encoding/json"
	"fmt"

	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/treeshell/bridge"
)

// Name identifies a tool exposed by the server
type Name string

const (
	// RunConversationShell is the only tool exposed by the server
	RunConversationShell Name = "run_conversation_shell"

	commandProperty = "command"

	userCommandDescription  = `TreeShell command: 'nav' to see tree, 'jump <id>' to navigate, '<id>.exec {"arg": "value"}' to execute`
	agentCommandDescription = "TreeShell command to execute"
)

const description = `GNOSYS MCP Router - Manage and execute MCP server actions via TreeShell navigation.

Actions (coordinate | name):

0.0.1 | discover_server_actions - **PREFERRED STARTING POINT**: Discover available actions from servers.
  Args: user_query (str), server_names (List[str], optional)

0.0.2 | execute_action - Execute a specific action with provided parameters.
  Args: server_name (str), action_name (str), path_params (JSON), query_params (JSON), body_schema (JSON)

0.0.3 | get_action_details - Get detailed information about a specific action.
  Args: server_name (str), action_name (str)

0.0.4 | handle_auth_failure - Handle authentication failures.
  Args: server_name (str), intention ('get_auth_url'|'save_auth_data'), auth_data (dict, optional)

0.0.5 | manage_servers - Manage MCP server connections and Sets.
  Args: list_configured_mcps, list_sets, connect, connect_set, disconnect, disconnect_all, etc.

0.0.6 | search_documentation - Search server action docs by keyword.
  Args: query (str), server_name (str), max_results (int)

0.0.7 | search_mcp_catalog - Search offline catalog for tools/Sets.
  Args: query (str), max_results (int)

Commands:
- 'nav' - Show tree structure
- 'jump <coordinate>' - Navigate to node (e.g., 'jump discover_server_actions')
- '<coordinate>.exec {"args": "values"}' - Jump and execute (e.g., 'discover_server_actions.exec {"user_query": "..."}')
- 'exec {"args"}' - Execute current node`

type (
	// Descriptor represents a static tool description
	Descriptor struct {
		Name        Name        `json:"name"`
		Description string      `json:"description"`
		InputSchema InputSchema `json:"inputSchema"`
	}

	// InputSchema represents a tool input JSON schema
	InputSchema struct {
		Type       string              `json:"type"`
		Properties map[string]Property `json:"properties"`
		Required   []string            `json:"required"`
	}

	// Property represents an input schema property
	Property struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
)

// Tool converts the descriptor to the MCP tool representation
func (d *Descriptor) Tool() (*schema.Tool, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	ret := &schema.Tool{}
	if err = json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to convert tool %v: %w", d.Name, err)
	}
	return ret, nil
}

// Catalog returns the descriptor advertised by the variant
func Catalog(variant bridge.Variant) *Descriptor {
	commandDescription := userCommandDescription
	if variant == bridge.VariantRaw {
		commandDescription = agentCommandDescription
	}
	return &Descriptor{
		Name:        RunConversationShell,
		Description: description,
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				commandProperty: {Type: "string", Description: commandDescription},
			},
			Required: []string{commandProperty},
		},
	}
}

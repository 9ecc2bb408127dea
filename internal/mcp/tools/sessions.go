package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SessionInput is the input for docmgmt_session.
type SessionInput struct{}

// SessionOutput is the output for docmgmt_session.
type SessionOutput struct {
	Authenticated bool   `json:"authenticated"`
	MobileNumber  string `json:"mobile_number,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	UserName      string `json:"user_name,omitempty"`
}

// LogoutInput is the input for docmgmt_logout.
type LogoutInput struct{}

// LogoutOutput is the output for docmgmt_logout.
type LogoutOutput struct {
	LoggedOut bool `json:"logged_out"`
}

// ToolSession reports the current authentication state.
func ToolSession(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SessionInput) (*sdkmcp.CallToolResult, SessionOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SessionInput) (*sdkmcp.CallToolResult, SessionOutput, error) {
		sess, ok := d.Sessions.Current()
		if !ok {
			return nil, SessionOutput{Authenticated: false}, nil
		}

		return nil, SessionOutput{
			Authenticated: true,
			MobileNumber:  sess.MobileNumber,
			UserID:        sess.UserID,
			UserName:      sess.UserName,
		}, nil
	}
}

// ToolLogout tears down the session and its persisted record.
func ToolLogout(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input LogoutInput) (*sdkmcp.CallToolResult, LogoutOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input LogoutInput) (*sdkmcp.CallToolResult, LogoutOutput, error) {
		if err := d.Sessions.Clear(); err != nil {
			return nil, LogoutOutput{}, WrapDocMgmtError(err)
		}
		return nil, LogoutOutput{LoggedOut: true}, nil
	}
}

package tools

import (
	"context"
	"regexp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docuvault/docmgmt-mcp/internal/session"
)

// mobileNumberPattern matches the 10-digit mobile numbers the OTP service
// accepts.
var mobileNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// SendOTPInput is the input for docmgmt_send_otp.
type SendOTPInput struct {
	MobileNumber string `json:"mobile_number" jsonschema:"10-digit mobile number to send the OTP to"`
}

// SendOTPOutput is the output for docmgmt_send_otp.
type SendOTPOutput struct {
	Sent bool   `json:"sent"`
	Hint string `json:"hint,omitempty"`
}

// VerifyOTPInput is the input for docmgmt_verify_otp.
type VerifyOTPInput struct {
	MobileNumber string `json:"mobile_number" jsonschema:"Mobile number the OTP was sent to"`
	OTP          string `json:"otp" jsonschema:"One-time password received on the mobile number"`
}

// VerifyOTPOutput is the output for docmgmt_verify_otp.
type VerifyOTPOutput struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name,omitempty"`
}

// ToolSendOTP requests an OTP for a mobile number.
func ToolSendOTP(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SendOTPInput) (*sdkmcp.CallToolResult, SendOTPOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SendOTPInput) (*sdkmcp.CallToolResult, SendOTPOutput, error) {
		if !mobileNumberPattern.MatchString(input.MobileNumber) {
			return nil, SendOTPOutput{}, ErrInvalidInput("mobile_number must be exactly 10 digits")
		}

		if err := d.Client.SendOTP(ctx, input.MobileNumber); err != nil {
			return nil, SendOTPOutput{}, WrapDocMgmtError(err)
		}

		return nil, SendOTPOutput{
			Sent: true,
			Hint: "call docmgmt_verify_otp with the received code to log in",
		}, nil
	}
}

// ToolVerifyOTP verifies an OTP and establishes the session.
func ToolVerifyOTP(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input VerifyOTPInput) (*sdkmcp.CallToolResult, VerifyOTPOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input VerifyOTPInput) (*sdkmcp.CallToolResult, VerifyOTPOutput, error) {
		if !mobileNumberPattern.MatchString(input.MobileNumber) {
			return nil, VerifyOTPOutput{}, ErrInvalidInput("mobile_number must be exactly 10 digits")
		}
		if input.OTP == "" {
			return nil, VerifyOTPOutput{}, ErrInvalidInput("otp is required")
		}

		identity, err := d.Client.VerifyOTP(ctx, input.MobileNumber, input.OTP)
		if err != nil {
			return nil, VerifyOTPOutput{}, WrapDocMgmtError(err)
		}

		err = d.Sessions.Set(session.Session{
			MobileNumber: input.MobileNumber,
			Token:        identity.Token,
			UserID:       identity.UserID,
			UserName:     identity.UserName,
		})
		if err != nil {
			return nil, VerifyOTPOutput{}, WrapDocMgmtError(err)
		}

		return nil, VerifyOTPOutput{
			UserID:   identity.UserID,
			UserName: identity.UserName,
		}, nil
	}
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// SendOTP requests a one-time code for the given mobile number.
// A nil error means the server accepted the number and dispatched a code.
func (c *Client) SendOTP(ctx context.Context, mobileNumber string) error {
	body := map[string]string{"mobile_number": mobileNumber}
	if _, err := c.post(ctx, "/generateOTP", nil, body); err != nil {
		return fmt.Errorf("sending OTP: %w", err)
	}
	return nil
}

// VerifyOTP validates a one-time code and returns the identity fields
// needed to establish a session.
func (c *Client) VerifyOTP(ctx context.Context, mobileNumber, otp string) (*Identity, error) {
	body := map[string]string{"mobile_number": mobileNumber, "otp": otp}
	data, err := c.post(ctx, "/validateOTP", nil, body)
	if err != nil {
		return nil, fmt.Errorf("verifying OTP: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("decoding identity: %w", err)
	}
	return &id, nil
}

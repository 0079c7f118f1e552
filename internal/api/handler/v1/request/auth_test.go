package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travelothai/travelothai-api/internal/api/handler/v1/request"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     request.SignupRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: request.SignupRequest{
				Username:        "somsak",
				Email:           "somsak@example.com",
				Password:        "secret-pass1",
				ConfirmPassword: "secret-pass1",
			},
		},
		{
			name: "password too short",
			req: request.SignupRequest{
				Username:        "somsak",
				Email:           "somsak@example.com",
				Password:        "abc1",
				ConfirmPassword: "abc1",
			},
			wantErr: true,
		},
		{
			name: "password without a digit",
			req: request.SignupRequest{
				Username:        "somsak",
				Email:           "somsak@example.com",
				Password:        "onlyletters",
				ConfirmPassword: "onlyletters",
			},
			wantErr: true,
		},
		{
			name: "password without a letter",
			req: request.SignupRequest{
				Username:        "somsak",
				Email:           "somsak@example.com",
				Password:        "12345678",
				ConfirmPassword: "12345678",
			},
			wantErr: true,
		},
		{
			name: "confirm password mismatch",
			req: request.SignupRequest{
				Username:        "somsak",
				Email:           "somsak@example.com",
				Password:        "secret-pass1",
				ConfirmPassword: "secret-pass2",
			},
			wantErr: true,
		},
		{
			name: "bad email",
			req: request.SignupRequest{
				Username:        "somsak",
				Email:           "not-an-email",
				Password:        "secret-pass1",
				ConfirmPassword: "secret-pass1",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
